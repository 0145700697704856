package imaging

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/writewhisker/tourkit/internal/catalog"
	"github.com/writewhisker/tourkit/internal/report"
)

// Target bounds for tour-stop images. Placeholders are rendered exactly at
// this size; downloaded images are fitted inside it.
const (
	TargetWidth  = 1920
	TargetHeight = 1080
)

// JPEGQuality is the encoder quality for all tour-stop images.
const JPEGQuality = 85

// Museum palette.
var (
	slate      = color.RGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff}
	gold       = color.RGBA{R: 0xd4, G: 0xaf, B: 0x37, A: 0xff}
	cloudWhite = color.RGBA{R: 0xec, G: 0xf0, B: 0xf1, A: 0xff}
	alarmRed   = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	rijksBlue  = color.RGBA{R: 0x00, G: 0x43, B: 0x8d, A: 0xff}
)

const watermarkText = "PLACEHOLDER - Replace with Rijksmuseum Image"

const (
	placeholderBorder = 20
	captionFontSize   = 80
	watermarkFontSize = 50
	captionLineStep   = 80
)

// RenderPlaceholder draws the branded stand-in image for one artwork: slate
// background, gold frame, centered caption lines with a drop shadow, and a
// red watermark near the bottom edge.
func RenderPlaceholder(art catalog.Artwork) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, TargetWidth, TargetHeight))
	fillRect(img, img.Bounds(), slate)
	strokeRect(img, image.Rect(placeholderBorder, placeholderBorder,
		TargetWidth-placeholderBorder, TargetHeight-placeholderBorder), placeholderBorder, gold)

	captionFace, err := newFace(captionFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create caption face: %w", err)
	}
	defer captionFace.Close()

	watermarkFace, err := newFace(watermarkFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create watermark face: %w", err)
	}
	defer watermarkFace.Close()

	y := TargetHeight/2 - len(art.Caption)*60
	for _, line := range art.Caption {
		x := (TargetWidth - textWidth(captionFace, line)) / 2
		drawText(img, captionFace, line, x+3, y+3, color.Black)
		drawText(img, captionFace, line, x, y, cloudWhite)
		y += captionLineStep
	}

	wx := (TargetWidth - textWidth(watermarkFace, watermarkText)) / 2
	drawText(img, watermarkFace, watermarkText, wx, TargetHeight-100, alarmRed)

	return img, nil
}

// Placeholders writes the branded placeholder JPEG for every artwork in the
// catalog. Existing files are overwritten.
type Placeholders struct {
	Catalog *catalog.Catalog
	Dir     string
	Out     io.Writer
}

// Run renders all placeholders. Per-item failures are logged and counted;
// only an unusable output directory or a cancelled context aborts the run.
func (g *Placeholders) Run(ctx context.Context) (*report.Tally, error) {
	if err := os.MkdirAll(g.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	fmt.Fprintf(g.Out, "🖼️  Generating Placeholder Images for %s\n", g.Catalog.Name)
	fmt.Fprintln(g.Out, strings.Repeat("=", 70))
	fmt.Fprintln(g.Out, "⚠️  Note: These are PLACEHOLDERS - Replace with actual collection images")
	fmt.Fprintln(g.Out, strings.Repeat("=", 70))

	tally := report.NewTally("placeholder images", len(g.Catalog.Artworks))
	for _, art := range g.Catalog.Artworks {
		if err := ctx.Err(); err != nil {
			return tally, err
		}

		img, err := RenderPlaceholder(art)
		if err != nil {
			log.Error().Err(err).Str("file", art.Filename).Msg("Failed to render placeholder")
			fmt.Fprintf(g.Out, "❌ Failed: %s\n", art.Filename)
			tally.Fail(art.Filename)
			continue
		}

		path := filepath.Join(g.Dir, art.Filename)
		if err := writeJPEG(path, img); err != nil {
			log.Error().Err(err).Str("file", art.Filename).Msg("Failed to write placeholder")
			fmt.Fprintf(g.Out, "❌ Failed: %s\n", art.Filename)
			tally.Fail(art.Filename)
			continue
		}

		log.Debug().Str("file", art.Filename).Int("width", TargetWidth).Int("height", TargetHeight).Msg("Placeholder written")
		fmt.Fprintf(g.Out, "✅ Generated: %s\n", art.Filename)
		tally.Success()
	}

	fmt.Fprintln(g.Out, strings.Repeat("=", 70))
	fmt.Fprintf(g.Out, "✅ All %d placeholder images generated!\n", tally.Succeeded())
	fmt.Fprintf(g.Out, "📁 Location: %s/\n", g.Dir)
	tally.Log()
	return tally, nil
}

// writeJPEG encodes img to path as a quality-85 JPEG.
func writeJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return nil
}
