// Package tts converts narration scripts to spoken audio.
package tts

import (
	"context"

	"golang.org/x/text/language"
)

// Audio is raw synthesized voice.
type Audio struct {
	Data   []byte
	Format string // e.g. "mp3"
}

// Synthesizer converts text to Audio.
// Concrete implementations wrap Google, Azure, etc.
type Synthesizer interface {
	// Synthesize takes text and returns it spoken in the given language.
	Synthesize(ctx context.Context, text string, lang language.Tag) (*Audio, error)
}
