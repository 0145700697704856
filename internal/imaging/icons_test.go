package imaging

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/writewhisker/tourkit/internal/catalog"
)

func TestRenderIcon(t *testing.T) {
	for _, size := range []int{72, 192, 512} {
		img, err := RenderIcon(size)
		if err != nil {
			t.Fatalf("RenderIcon(%d) error: %v", size, err)
		}

		bounds := img.Bounds()
		if bounds.Dx() != size || bounds.Dy() != size {
			t.Errorf("RenderIcon(%d) bounds = %dx%d, want %dx%d", size, bounds.Dx(), bounds.Dy(), size, size)
		}

		// Below the column slits the facade is white; above the roof the
		// field is museum blue.
		if got := img.At(size/2, size*4/5); !sameColor(got, color.White) {
			t.Errorf("RenderIcon(%d) facade pixel = %v, want white", size, got)
		}
		if got := img.At(size/2, size/10); !sameColor(got, rijksBlue) {
			t.Errorf("RenderIcon(%d) sky pixel = %v, want blue %v", size, got, rijksBlue)
		}
	}
}

func TestIconsRun(t *testing.T) {
	dir := t.TempDir()
	cat := catalog.Rijksmuseum()

	g := &Icons{Catalog: cat, Dir: dir, Out: &bytes.Buffer{}}
	tally, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if got, want := tally.Succeeded(), len(cat.IconSizes); got != want {
		t.Errorf("Succeeded() = %d, want %d", got, want)
	}

	for i, size := range cat.IconSizes {
		path := filepath.Join(dir, cat.IconFiles()[i])
		f, err := os.Open(path)
		if err != nil {
			t.Errorf("expected icon for size %d: %v", size, err)
			continue
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Errorf("icon-%d.png is not a decodable PNG: %v", size, err)
			continue
		}
		if cfg.Width != size || cfg.Height != size {
			t.Errorf("icon-%d.png is %dx%d, want %dx%d", size, cfg.Width, cfg.Height, size, size)
		}
	}
}
