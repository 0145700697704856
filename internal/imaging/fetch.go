package imaging

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/writewhisker/tourkit/internal/catalog"
	"github.com/writewhisker/tourkit/internal/report"
)

// DefaultAPIBase is the Rijksmuseum collection API endpoint. The object
// number is appended as the final path element.
const DefaultAPIBase = "https://www.rijksmuseum.nl/api/en/collection"

// DefaultFetchTimeout bounds a single image download.
const DefaultFetchTimeout = 30 * time.Second

// DefaultPoliteDelay is the pause between consecutive requests to the same
// host.
const DefaultPoliteDelay = 500 * time.Millisecond

// Fetcher downloads collection images, fits them inside the target bounds,
// and re-encodes them as JPEG. Artworks whose download fails keep whatever
// file is already on disk.
type Fetcher struct {
	Catalog *catalog.Catalog
	Dir     string
	Out     io.Writer
	// APIKey authenticates collection API lookups. Without it only artworks
	// with a direct URL can be fetched.
	APIKey string
	// APIBase overrides DefaultAPIBase, for tests.
	APIBase string
	// Client overrides the default 30-second-timeout HTTP client.
	Client *http.Client
	// Delay overrides DefaultPoliteDelay. Negative disables the pause.
	Delay time.Duration
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return &http.Client{Timeout: DefaultFetchTimeout}
}

func (f *Fetcher) apiBase() string {
	if f.APIBase != "" {
		return f.APIBase
	}
	return DefaultAPIBase
}

func (f *Fetcher) delay() time.Duration {
	if f.Delay != 0 {
		return f.Delay
	}
	return DefaultPoliteDelay
}

// Run downloads every artwork in the catalog. Per-item failures are logged
// and the loop continues; an artwork with an existing file on disk counts
// as processed even when its download fails.
func (f *Fetcher) Run(ctx context.Context) (*report.Tally, error) {
	if err := os.MkdirAll(f.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	fmt.Fprintf(f.Out, "🖼️  Downloading Collection Images for %s\n", f.Catalog.Name)
	fmt.Fprintln(f.Out, strings.Repeat("=", 80))
	if f.APIKey == "" {
		fmt.Fprintln(f.Out, "Note: no API key configured; only direct image URLs will be tried")
	}

	tally := report.NewTally("image fetch", len(f.Catalog.Artworks))
	for _, art := range f.Catalog.Artworks {
		if err := ctx.Err(); err != nil {
			return tally, err
		}

		fmt.Fprintf(f.Out, "\n%s:\n", art.Filename)
		path := filepath.Join(f.Dir, art.Filename)

		if f.fetchArtwork(ctx, art, path) {
			tally.Success()
			if err := politePause(ctx, f.delay()); err != nil {
				return tally, err
			}
			continue
		}

		// Keep whatever is already there so the tour stays usable.
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintln(f.Out, "  ⚠️  Using existing placeholder")
			tally.Skip()
		} else {
			fmt.Fprintln(f.Out, "  ❌ Could not download - no placeholder on disk")
			tally.Fail(art.Filename)
		}
	}

	fmt.Fprintln(f.Out)
	fmt.Fprintln(f.Out, strings.Repeat("=", 80))
	fmt.Fprintf(f.Out, "✅ Successfully processed: %d/%d\n", tally.Done(), tally.Total())
	if tally.Failed() > 0 {
		fmt.Fprintf(f.Out, "⚠️  Missing: %d/%d\n", tally.Failed(), tally.Total())
	}
	tally.Log()
	return tally, nil
}

// fetchArtwork tries each known source for one artwork and reports whether
// an image was written.
func (f *Fetcher) fetchArtwork(ctx context.Context, art catalog.Artwork, path string) bool {
	if art.DirectURL != "" {
		if err := f.download(ctx, art.DirectURL, path); err != nil {
			log.Warn().Err(err).Str("file", art.Filename).Msg("Direct URL download failed")
		} else {
			return true
		}
	}

	if f.APIKey == "" {
		return false
	}

	for _, objectNumber := range []string{art.ObjectNumber, art.FallbackNumber} {
		if objectNumber == "" {
			continue
		}
		imageURL, err := f.lookupImageURL(ctx, objectNumber)
		if err != nil {
			log.Warn().Err(err).Str("objectNumber", objectNumber).Str("file", art.Filename).Msg("Collection API lookup failed")
			continue
		}
		if err := f.download(ctx, imageURL, path); err != nil {
			log.Warn().Err(err).Str("objectNumber", objectNumber).Str("file", art.Filename).Msg("Collection image download failed")
			continue
		}
		return true
	}
	return false
}

// collectionResponse is the subset of the collection API response we use.
type collectionResponse struct {
	ArtObject struct {
		WebImage struct {
			URL string `json:"url"`
		} `json:"webImage"`
	} `json:"artObject"`
}

// lookupImageURL resolves an object number to its web image URL via the
// collection API.
func (f *Fetcher) lookupImageURL(ctx context.Context, objectNumber string) (string, error) {
	q := url.Values{}
	q.Set("key", f.APIKey)
	q.Set("format", "json")
	endpoint := fmt.Sprintf("%s/%s?%s", f.apiBase(), url.PathEscape(objectNumber), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build API request: %w", err)
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var cr collectionResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("failed to decode API response: %w", err)
	}
	if cr.ArtObject.WebImage.URL == "" {
		return "", fmt.Errorf("no web image for %s", objectNumber)
	}
	return cr.ArtObject.WebImage.URL, nil
}

// download fetches one image, fits it inside the target bounds, and writes
// it as JPEG.
func (f *Fetcher) download(ctx context.Context, imageURL, path string) error {
	display := imageURL
	if len(display) > 80 {
		display = display[:80] + "..."
	}
	fmt.Fprintf(f.Out, "  Downloading from: %s\n", display)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	img, format, err := image.Decode(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	fitted := FitTo(img, TargetWidth, TargetHeight)
	if err := writeJPEG(path, fitted); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat written image: %w", err)
	}

	log.Info().
		Str("file", filepath.Base(path)).
		Str("format", format).
		Int("width", fitted.Bounds().Dx()).
		Int("height", fitted.Bounds().Dy()).
		Int64("bytes", info.Size()).
		Msg("Image downloaded and optimized")
	fmt.Fprintf(f.Out, "  ✅ Saved: %s (%.1f KB)\n", filepath.Base(path), float64(info.Size())/1024)
	return nil
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
