package imaging

import (
	"image"
	"testing"
)

func TestFitDimensions(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		maxWidth   int
		maxHeight  int
		wantWidth  int
		wantHeight int
	}{
		{"already fits", 800, 600, 1920, 1080, 800, 600},
		{"exact fit", 1920, 1080, 1920, 1080, 1920, 1080},
		{"wide image limited by width", 3840, 1080, 1920, 1080, 1920, 540},
		{"tall image limited by height", 1000, 4000, 1920, 1080, 270, 1080},
		{"both over, width binds", 4000, 2000, 1920, 1080, 1920, 960},
		{"both over, height binds", 2000, 4000, 1920, 1080, 540, 1080},
		{"tiny target", 1920, 1080, 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotWidth, gotHeight := fitDimensions(tt.width, tt.height, tt.maxWidth, tt.maxHeight)
			if gotWidth != tt.wantWidth || gotHeight != tt.wantHeight {
				t.Errorf("fitDimensions(%d, %d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.width, tt.height, tt.maxWidth, tt.maxHeight,
					gotWidth, gotHeight, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestFitToKeepsSmallImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	got := FitTo(img, 1920, 1080)
	if got != image.Image(img) {
		t.Error("FitTo() returned a new image for one already inside the bounds")
	}
}

func TestFitToScalesDown(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3840, 2160))
	got := FitTo(img, 1920, 1080)

	bounds := got.Bounds()
	if bounds.Dx() != 1920 || bounds.Dy() != 1080 {
		t.Errorf("FitTo() bounds = %dx%d, want 1920x1080", bounds.Dx(), bounds.Dy())
	}
}
