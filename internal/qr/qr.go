// Package qr renders the scannable tour-stop codes.
package qr

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/writewhisker/tourkit/internal/catalog"
	"github.com/writewhisker/tourkit/internal/report"
)

// ImageSize is the rendered edge length in pixels, print-ready at 5 cm.
const ImageSize = 410

// Codes writes one PNG per catalog QR code.
type Codes struct {
	Catalog *catalog.Catalog
	Dir     string
	Out     io.Writer
}

// Run renders every code. Per-item failures are logged and counted and
// the batch keeps going.
func (g *Codes) Run(ctx context.Context) (*report.Tally, error) {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create qr_codes directory: %w", err)
	}

	fmt.Fprintf(g.Out, "🔲 Generating QR Codes for %s\n", g.Catalog.Name)
	fmt.Fprintln(g.Out, strings.Repeat("=", 60))

	tally := report.NewTally("qr codes", len(g.Catalog.QRCodes))
	for _, code := range g.Catalog.QRCodes {
		if err := ctx.Err(); err != nil {
			return tally, err
		}

		path := filepath.Join(g.Dir, code.Filename())
		if err := writeCode(code.Code, path); err != nil {
			log.Error().Err(err).Str("code", code.Code).Msg("Failed to render QR code")
			fmt.Fprintf(g.Out, "❌ Failed: %s\n", code.Filename())
			tally.Fail(code.Filename())
			continue
		}

		log.Debug().Str("code", code.Code).Int("size", ImageSize).Msg("QR code written")
		fmt.Fprintf(g.Out, "✅ Generated: %s (%s)\n", code.Filename(), code.Description)
		tally.Success()
	}

	fmt.Fprintln(g.Out, strings.Repeat("=", 60))
	fmt.Fprintf(g.Out, "✅ All %d QR codes generated successfully!\n", tally.Succeeded())
	fmt.Fprintf(g.Out, "📁 Location: %s/\n", g.Dir)
	fmt.Fprintln(g.Out)
	fmt.Fprintln(g.Out, "Next steps:")
	fmt.Fprintln(g.Out, "1. Print QR codes at 5cm × 5cm for artwork labels")
	fmt.Fprintln(g.Out, "2. Print the welcome code at 10cm × 10cm for the entrance")
	fmt.Fprintln(g.Out, "3. Mount on museum-quality materials")
	fmt.Fprintln(g.Out, "4. Place at artwork locations")
	tally.Log()
	return tally, nil
}

// writeCode renders one payload at the highest error-correction level,
// black on white, so a partly obscured label still scans.
func writeCode(payload, path string) error {
	code, err := qrcode.New(payload, qrcode.Highest)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	if err := code.WriteFile(ImageSize, path); err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}
	return nil
}
