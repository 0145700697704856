package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/writewhisker/tourkit/internal/catalog"
	"github.com/writewhisker/tourkit/internal/report"
	"github.com/writewhisker/tourkit/internal/tts"
)

const (
	// skipSizeBytes is the size above which an existing file is assumed
	// to hold a real recording and is left alone. Placeholder markers
	// and truncated downloads fall below it.
	skipSizeBytes = 10000

	// DefaultSynthDelay spaces out synthesis requests.
	DefaultSynthDelay = 500 * time.Millisecond
)

// Synth fills the audio directories with spoken narrations.
type Synth struct {
	Catalog     *catalog.Catalog
	Dir         string
	Out         io.Writer
	Synthesizer tts.Synthesizer
	// Delay is the pause between synthesis requests. Zero means
	// DefaultSynthDelay; negative disables the pause.
	Delay time.Duration
}

// Run synthesizes every missing narration. Existing recordings are
// skipped, per-item failures are logged and the batch keeps going.
func (g *Synth) Run(ctx context.Context) (*report.Tally, error) {
	for _, lang := range g.Catalog.Languages {
		if err := os.MkdirAll(filepath.Join(g.Dir, lang.String()), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create audio directory: %w", err)
		}
	}

	fmt.Fprintf(g.Out, "🎧 Generating Narration Audio for %s\n", g.Catalog.Name)
	fmt.Fprintln(g.Out, strings.Repeat("=", 80))

	total := len(g.Catalog.Narrations) * len(g.Catalog.Languages)
	tally := report.NewTally("audio synthesis", total)

	for _, narration := range g.Catalog.Narrations {
		fmt.Fprintf(g.Out, "\n%s:\n", narration.Filename)

		for _, lang := range g.Catalog.Languages {
			if err := ctx.Err(); err != nil {
				return tally, err
			}
			if err := g.synthesizeOne(ctx, narration, lang, tally); err != nil {
				return tally, err
			}
		}
	}

	fmt.Fprintln(g.Out)
	fmt.Fprintln(g.Out, strings.Repeat("=", 80))
	fmt.Fprintf(g.Out, "✅ Generated: %d new files\n", tally.Succeeded())
	fmt.Fprintf(g.Out, "⏭️  Skipped: %d existing files\n", tally.Skipped())
	if tally.Failed() > 0 {
		fmt.Fprintf(g.Out, "❌ Errors: %d files\n", tally.Failed())
	}
	fmt.Fprintf(g.Out, "📁 Total: %d/%d audio files ready\n", tally.Done(), total)
	tally.Log()
	return tally, nil
}

// synthesizeOne handles a single narration/language pair. The returned
// error is only ever a cancelled context; synthesis failures end up in
// the tally instead.
func (g *Synth) synthesizeOne(ctx context.Context, narration catalog.Narration, lang language.Tag, tally *report.Tally) error {
	label := strings.ToUpper(lang.String())
	rel := filepath.Join(lang.String(), narration.Filename)
	path := filepath.Join(g.Dir, rel)

	if info, err := os.Stat(path); err == nil && info.Size() > skipSizeBytes {
		fmt.Fprintf(g.Out, "  ⏭️  %s: Already exists, skipping\n", label)
		tally.Skip()
		return nil
	}

	text, err := narration.Text(lang)
	if err != nil {
		log.Error().Err(err).Str("file", rel).Msg("No narration script")
		fmt.Fprintf(g.Out, "  ❌ %s: Error - %v\n", label, err)
		tally.Fail(rel)
		return nil
	}

	audio, err := g.Synthesizer.Synthesize(ctx, text, lang)
	if err != nil {
		log.Warn().Err(err).Str("file", rel).Msg("Synthesis failed")
		fmt.Fprintf(g.Out, "  ❌ %s: Error - %v\n", label, err)
		tally.Fail(rel)
		return nil
	}

	if err := os.WriteFile(path, audio.Data, 0o644); err != nil {
		log.Error().Err(err).Str("file", rel).Msg("Failed to write audio")
		fmt.Fprintf(g.Out, "  ❌ %s: Error - %v\n", label, err)
		tally.Fail(rel)
		return nil
	}

	log.Debug().Str("file", rel).Int("bytes", len(audio.Data)).Msg("Narration synthesized")
	fmt.Fprintf(g.Out, "  ✅ %s: Generated (%.0f KB)\n", label, float64(len(audio.Data))/1024)
	tally.Success()
	return politePause(ctx, g.delay())
}

func (g *Synth) delay() time.Duration {
	if g.Delay == 0 {
		return DefaultSynthDelay
	}
	return g.Delay
}

// politePause waits out the rate-limit delay unless the context is
// cancelled first.
func politePause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
