package imaging

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/writewhisker/tourkit/internal/catalog"
	"github.com/writewhisker/tourkit/internal/report"
)

// monogramMinSize is the smallest icon size that still fits the monogram
// legibly under the building.
const monogramMinSize = 192

// RenderIcon draws the square tour icon at the given pixel size: museum blue
// field, gold frame, a stylized facade with roof and columns, and the RM
// monogram on the larger sizes.
func RenderIcon(size int) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillRect(img, img.Bounds(), rijksBlue)

	borderW := size / 40
	if borderW < 2 {
		borderW = 2
	}
	strokeRect(img, image.Rect(borderW, borderW, size-borderW, size-borderW), borderW, gold)

	buildingW := size * 7 / 10
	buildingH := size / 2
	buildingX := (size - buildingW) / 2
	buildingY := size * 35 / 100

	building := image.Rect(buildingX, buildingY, buildingX+buildingW, buildingY+buildingH)
	fillRect(img, building, color.White)
	outlineW := size / 100
	if outlineW < 1 {
		outlineW = 1
	}
	strokeRect(img, building, outlineW, gold)

	// Roof overhangs the facade by half its height on each side.
	roofH := size * 15 / 100
	fillTriangle(img,
		image.Pt(buildingX-roofH/2, buildingY),
		image.Pt(buildingX+buildingW+roofH/2, buildingY),
		image.Pt(buildingX+buildingW/2, buildingY-roofH),
		gold)

	const numColumns = 3
	columnW := buildingW / (numColumns * 2)
	columnSpacing := buildingW / (numColumns + 1)
	columnY := buildingY + buildingH/5
	columnH := buildingH * 3 / 5
	for i := 0; i < numColumns; i++ {
		columnX := buildingX + columnSpacing*(i+1) - columnW/2
		fillRect(img, image.Rect(columnX, columnY, columnX+columnW, columnY+columnH), rijksBlue)
	}

	if size >= monogramMinSize {
		face, err := newFace(float64(size) / 10)
		if err != nil {
			return nil, fmt.Errorf("failed to create monogram face: %w", err)
		}
		defer face.Close()

		const monogram = "RM"
		x := (size - textWidth(face, monogram)) / 2
		y := buildingY + buildingH + size/20
		drawText(img, face, monogram, x, y, gold)
	}

	return img, nil
}

// Icons renders the icon set for the web app shell, one PNG per catalog size.
type Icons struct {
	Catalog *catalog.Catalog
	Dir     string
	Out     io.Writer
}

// Run renders all icon sizes. Per-item failures are logged and counted;
// only an unusable output directory or a cancelled context aborts the run.
func (g *Icons) Run(ctx context.Context) (*report.Tally, error) {
	if err := os.MkdirAll(g.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create icons directory: %w", err)
	}

	fmt.Fprintf(g.Out, "🎨 Generating PWA Icons for %s\n", g.Catalog.Name)
	fmt.Fprintln(g.Out, strings.Repeat("=", 70))
	fmt.Fprintln(g.Out, "⚠️  Note: These are PLACEHOLDERS - Replace with official museum logo")
	fmt.Fprintln(g.Out, strings.Repeat("=", 70))

	tally := report.NewTally("icons", len(g.Catalog.IconSizes))
	for _, size := range g.Catalog.IconSizes {
		if err := ctx.Err(); err != nil {
			return tally, err
		}

		name := catalog.IconFilename(size)
		icon, err := RenderIcon(size)
		if err != nil {
			log.Error().Err(err).Str("file", name).Msg("Failed to render icon")
			fmt.Fprintf(g.Out, "❌ Failed: %s\n", name)
			tally.Fail(name)
			continue
		}

		if err := writePNG(filepath.Join(g.Dir, name), icon); err != nil {
			log.Error().Err(err).Str("file", name).Msg("Failed to write icon")
			fmt.Fprintf(g.Out, "❌ Failed: %s\n", name)
			tally.Fail(name)
			continue
		}

		log.Debug().Str("file", name).Int("size", size).Msg("Icon written")
		fmt.Fprintf(g.Out, "✅ Generated: %s (%d×%dpx)\n", name, size, size)
		tally.Success()
	}

	fmt.Fprintln(g.Out, strings.Repeat("=", 70))
	fmt.Fprintf(g.Out, "✅ All %d PWA icons generated!\n", tally.Succeeded())
	fmt.Fprintf(g.Out, "📁 Location: %s/\n", g.Dir)
	tally.Log()
	return tally, nil
}

// writePNG encodes img to path as a PNG.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
