package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/writewhisker/tourkit/internal/catalog"
	"github.com/writewhisker/tourkit/internal/report"
)

// Placeholders writes stand-in narration files for every catalog entry
// and language.
type Placeholders struct {
	Catalog *catalog.Catalog
	// Dir is the audio root; files go to Dir/<lang>/<file>.
	Dir string
	Out io.Writer
	// Markers switches from silent MP3s to .txt marker files.
	Markers bool
}

// Run generates every placeholder. Per-item failures are logged and
// counted and the batch keeps going.
func (g *Placeholders) Run(ctx context.Context) (*report.Tally, error) {
	for _, lang := range g.Catalog.Languages {
		if err := os.MkdirAll(filepath.Join(g.Dir, lang.String()), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create audio directory: %w", err)
		}
	}

	fmt.Fprintf(g.Out, "🎧 Generating Placeholder Audio Files for %s\n", g.Catalog.Name)
	fmt.Fprintln(g.Out, strings.Repeat("=", 70))
	if g.Markers {
		fmt.Fprintln(g.Out, "⚠️  Writing text markers instead of silent MP3s")
	}
	fmt.Fprintln(g.Out)

	total := len(g.Catalog.Narrations) * len(g.Catalog.Languages)
	tally := report.NewTally("audio placeholders", total)
	totalSeconds := 0

	for _, narration := range g.Catalog.Narrations {
		for _, lang := range g.Catalog.Languages {
			if err := ctx.Err(); err != nil {
				return tally, err
			}

			if g.Markers {
				g.writeMarker(narration, lang, tally)
			} else {
				g.writeSilence(narration, lang, tally)
			}
		}
		totalSeconds += narration.Duration
	}

	fmt.Fprintln(g.Out)
	fmt.Fprintln(g.Out, strings.Repeat("=", 70))
	if g.Markers {
		fmt.Fprintf(g.Out, "⚠️  Created %d marker files (replace with actual recordings)\n", tally.Succeeded())
	} else {
		fmt.Fprintf(g.Out, "✅ All %d placeholder audio files generated! (%s)\n", tally.Succeeded(), g.perLanguage())
		fmt.Fprintf(g.Out, "⏱️  Total audio time: %s per language\n", FormatDuration(totalSeconds))
	}
	fmt.Fprintf(g.Out, "📁 Location: %s\n", g.locations())
	tally.Log()
	return tally, nil
}

func (g *Placeholders) writeSilence(narration catalog.Narration, lang language.Tag, tally *report.Tally) {
	rel := filepath.Join(lang.String(), narration.Filename)
	path := filepath.Join(g.Dir, rel)

	if err := os.WriteFile(path, SilentMP3(narration.Duration), 0o644); err != nil {
		log.Error().Err(err).Str("file", rel).Msg("Failed to write silent audio")
		fmt.Fprintf(g.Out, "❌ Failed: %s\n", rel)
		tally.Fail(rel)
		return
	}

	log.Debug().Str("file", rel).Int("seconds", narration.Duration).Msg("Silent placeholder written")
	fmt.Fprintf(g.Out, "✅ Generated: %s (%s silent)\n", rel, FormatDuration(narration.Duration))
	tally.Success()
}

func (g *Placeholders) writeMarker(narration catalog.Narration, lang language.Tag, tally *report.Tally) {
	rel := filepath.Join(lang.String(), catalog.MarkerFilename(narration.Filename))
	path := filepath.Join(g.Dir, rel)
	text := MarkerText(narration.Duration, catalog.LanguageName(lang))

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		log.Error().Err(err).Str("file", rel).Msg("Failed to write audio marker")
		fmt.Fprintf(g.Out, "❌ Failed: %s\n", rel)
		tally.Fail(rel)
		return
	}

	fmt.Fprintf(g.Out, "✅ Created marker: %s\n", rel)
	tally.Success()
}

// perLanguage renders the per-language breakdown, e.g. "12 en + 12 nl".
func (g *Placeholders) perLanguage() string {
	parts := make([]string, 0, len(g.Catalog.Languages))
	for _, lang := range g.Catalog.Languages {
		parts = append(parts, fmt.Sprintf("%d %s", len(g.Catalog.Narrations), lang))
	}
	return strings.Join(parts, " + ")
}

// locations renders the output directories, e.g.
// "assets/audio/en/ and assets/audio/nl/".
func (g *Placeholders) locations() string {
	dirs := make([]string, 0, len(g.Catalog.Languages))
	for _, lang := range g.Catalog.Languages {
		dirs = append(dirs, filepath.Join(g.Dir, lang.String())+"/")
	}
	return strings.Join(dirs, " and ")
}
