package imaging

import (
	"bytes"
	"context"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/writewhisker/tourkit/internal/catalog"
)

func TestRenderPlaceholder(t *testing.T) {
	art := catalog.Artwork{
		Filename: "night_watch.jpg",
		Caption:  []string{"The Night Watch", "Rembrandt van Rijn", "1642"},
	}

	img, err := RenderPlaceholder(art)
	if err != nil {
		t.Fatalf("RenderPlaceholder() error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != TargetWidth || bounds.Dy() != TargetHeight {
		t.Errorf("bounds = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), TargetWidth, TargetHeight)
	}

	// Outside the frame the canvas is slate, on the frame it is gold.
	if got := img.At(5, 5); !sameColor(got, slate) {
		t.Errorf("corner pixel = %v, want slate %v", got, slate)
	}
	if got := img.At(25, 25); !sameColor(got, gold) {
		t.Errorf("border pixel = %v, want gold %v", got, gold)
	}
}

func TestPlaceholdersRun(t *testing.T) {
	dir := t.TempDir()
	cat := catalog.Rijksmuseum()

	g := &Placeholders{Catalog: cat, Dir: dir, Out: &bytes.Buffer{}}
	tally, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if got, want := tally.Succeeded(), len(cat.Artworks); got != want {
		t.Errorf("Succeeded() = %d, want %d", got, want)
	}

	for _, name := range cat.ImageFiles() {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			t.Errorf("expected placeholder %s: %v", name, err)
			continue
		}
		cfg, err := jpeg.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Errorf("%s is not a decodable JPEG: %v", name, err)
			continue
		}
		if cfg.Width != TargetWidth || cfg.Height != TargetHeight {
			t.Errorf("%s is %dx%d, want %dx%d", name, cfg.Width, cfg.Height, TargetWidth, TargetHeight)
		}
	}
}

func TestPlaceholdersRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &Placeholders{Catalog: catalog.Rijksmuseum(), Dir: t.TempDir(), Out: &bytes.Buffer{}}
	if _, err := g.Run(ctx); err == nil {
		t.Error("Run() with cancelled context succeeded, want error")
	}
}

// sameColor compares two colors in 16-bit channel space.
func sameColor(a, b interface{ RGBA() (uint32, uint32, uint32, uint32) }) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
