package tts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

const (
	// DefaultEndpoint is the public Google Translate speech endpoint.
	DefaultEndpoint = "https://translate.google.com/translate_tts"

	// maxChunkRunes is the longest text the endpoint accepts per request.
	maxChunkRunes = 200

	// The endpoint serves browser clients and rejects requests without a
	// browser user agent.
	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// GoogleTranslate synthesizes speech through the free Google Translate
// endpoint. Texts longer than one request are split on sentence
// boundaries and the MP3 response bodies concatenated; MPEG frames are
// self-delimiting, so players read the result as one stream.
type GoogleTranslate struct {
	// Endpoint overrides DefaultEndpoint, mainly for tests.
	Endpoint string
	// Client overrides http.DefaultClient.
	Client *http.Client
}

// Synthesize implements Synthesizer.
func (g *GoogleTranslate) Synthesize(ctx context.Context, text string, lang language.Tag) (*Audio, error) {
	chunks := splitChunks(text, maxChunkRunes)
	if len(chunks) == 0 {
		return nil, errors.New("no text to synthesize")
	}

	log.Debug().
		Stringer("lang", lang).
		Int("chars", utf8.RuneCountInString(text)).
		Int("chunks", len(chunks)).
		Msg("Synthesizing speech")

	var data []byte
	for i, chunk := range chunks {
		part, err := g.fetchChunk(ctx, chunk, lang, i, len(chunks))
		if err != nil {
			return nil, err
		}
		data = append(data, part...)
	}
	return &Audio{Data: data, Format: "mp3"}, nil
}

// fetchChunk requests one spoken chunk. The idx/total/textlen params
// mirror the protocol spoken by the endpoint's web client.
func (g *GoogleTranslate) fetchChunk(ctx context.Context, chunk string, lang language.Tag, idx, total int) ([]byte, error) {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", lang.String())
	params.Set("q", chunk)
	params.Set("idx", strconv.Itoa(idx))
	params.Set("total", strconv.Itoa(total))
	params.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint()+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build TTS request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call TTS endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TTS endpoint returned %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read TTS response: %w", err)
	}
	return data, nil
}

func (g *GoogleTranslate) endpoint() string {
	if g.Endpoint != "" {
		return g.Endpoint
	}
	return DefaultEndpoint
}

func (g *GoogleTranslate) client() *http.Client {
	if g.Client != nil {
		return g.Client
	}
	return http.DefaultClient
}

// splitChunks breaks text into pieces of at most max runes, cutting on
// sentence boundaries and falling back to word boundaries for run-on
// sentences.
func splitChunks(text string, max int) []string {
	var units []string
	for _, sentence := range splitSentences(text) {
		if utf8.RuneCountInString(sentence) > max {
			units = append(units, splitWords(sentence, max)...)
			continue
		}
		units = append(units, sentence)
	}

	var chunks []string
	current := ""
	for _, unit := range units {
		switch {
		case current == "":
			current = unit
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(unit) > max:
			chunks = append(chunks, current)
			current = unit
		default:
			current += " " + unit
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}

// splitSentences cuts text after terminal punctuation, normalizing all
// whitespace to single spaces on the way.
func splitSentences(text string) []string {
	var sentences []string
	var current []string
	for _, word := range strings.Fields(text) {
		current = append(current, word)
		if strings.HasSuffix(word, ".") || strings.HasSuffix(word, "!") || strings.HasSuffix(word, "?") {
			sentences = append(sentences, strings.Join(current, " "))
			current = nil
		}
	}
	if len(current) > 0 {
		sentences = append(sentences, strings.Join(current, " "))
	}
	return sentences
}

// splitWords splits one over-long sentence at word boundaries.
func splitWords(sentence string, max int) []string {
	var chunks []string
	current := ""
	for _, word := range strings.Fields(sentence) {
		switch {
		case current == "":
			current = word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) > max:
			chunks = append(chunks, current)
			current = word
		default:
			current += " " + word
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}
