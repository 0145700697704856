package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"

	"github.com/writewhisker/tourkit/internal/catalog"
)

// encodeTestJPEG renders a solid image of the given size as JPEG bytes.
func encodeTestJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, img.Bounds(), color.RGBA{R: 0x80, G: 0x20, B: 0x20, A: 0xff})

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		t.Fatalf("encoding fixture image: %v", err)
	}
	return buf.Bytes()
}

func testCatalog(artworks ...catalog.Artwork) *catalog.Catalog {
	return &catalog.Catalog{
		Name:      "Test Tour",
		Languages: []language.Tag{language.English},
		Artworks:  artworks,
	}
}

func newFetcher(cat *catalog.Catalog, dir string, srv *httptest.Server) *Fetcher {
	return &Fetcher{
		Catalog: cat,
		Dir:     dir,
		Out:     io.Discard,
		APIBase: srv.URL + "/api/en/collection",
		Client:  srv.Client(),
		Delay:   -1,
	}
}

func TestFetcherDirectURL(t *testing.T) {
	imageData := encodeTestJPEG(t, 2400, 1200)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/direct.jpg" {
			w.Write(imageData)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	cat := testCatalog(catalog.Artwork{Filename: "one.jpg", DirectURL: srv.URL + "/direct.jpg"})

	tally, err := newFetcher(cat, dir, srv).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if tally.Succeeded() != 1 {
		t.Fatalf("Succeeded() = %d, want 1", tally.Succeeded())
	}

	f, err := os.Open(filepath.Join(dir, "one.jpg"))
	if err != nil {
		t.Fatalf("expected downloaded image: %v", err)
	}
	defer f.Close()
	cfg, err := jpeg.DecodeConfig(f)
	if err != nil {
		t.Fatalf("downloaded file is not a JPEG: %v", err)
	}
	if cfg.Width != 1920 || cfg.Height != 960 {
		t.Errorf("downloaded image is %dx%d, want fitted 1920x960", cfg.Width, cfg.Height)
	}
}

func TestFetcherCollectionAPI(t *testing.T) {
	imageData := encodeTestJPEG(t, 400, 300)
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/en/collection/SK-C-5":
			if r.URL.Query().Get("key") != "test-key" || r.URL.Query().Get("format") != "json" {
				http.Error(w, "bad query", http.StatusBadRequest)
				return
			}
			fmt.Fprintf(w, `{"artObject":{"webImage":{"url":"%s/web.jpg"}}}`, srv.URL)
		case "/web.jpg":
			w.Write(imageData)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	cat := testCatalog(catalog.Artwork{Filename: "night_watch.jpg", ObjectNumber: "SK-C-5"})

	fetcher := newFetcher(cat, dir, srv)
	fetcher.APIKey = "test-key"

	tally, err := fetcher.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if tally.Succeeded() != 1 {
		t.Errorf("Succeeded() = %d, want 1", tally.Succeeded())
	}
	if _, err := os.Stat(filepath.Join(dir, "night_watch.jpg")); err != nil {
		t.Errorf("expected downloaded image: %v", err)
	}
}

func TestFetcherKeepsExistingOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	dir := t.TempDir()
	placeholder := []byte("placeholder bytes")
	if err := os.WriteFile(filepath.Join(dir, "one.jpg"), placeholder, 0644); err != nil {
		t.Fatal(err)
	}

	cat := testCatalog(catalog.Artwork{Filename: "one.jpg", DirectURL: srv.URL + "/direct.jpg"})
	tally, err := newFetcher(cat, dir, srv).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if tally.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1 (existing placeholder kept)", tally.Skipped())
	}
	data, err := os.ReadFile(filepath.Join(dir, "one.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, placeholder) {
		t.Error("existing placeholder was overwritten by a failed download")
	}
}

func TestFetcherContinuesAfterFailure(t *testing.T) {
	imageData := encodeTestJPEG(t, 100, 100)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/good.jpg" {
			w.Write(imageData)
			return
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	dir := t.TempDir()
	cat := testCatalog(
		catalog.Artwork{Filename: "bad.jpg", DirectURL: srv.URL + "/bad.jpg"},
		catalog.Artwork{Filename: "good.jpg", DirectURL: srv.URL + "/good.jpg"},
	)

	tally, err := newFetcher(cat, dir, srv).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if tally.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", tally.Failed())
	}
	if tally.Succeeded() != 1 {
		t.Errorf("Succeeded() = %d, want 1", tally.Succeeded())
	}
	if _, err := os.Stat(filepath.Join(dir, "good.jpg")); err != nil {
		t.Error("second artwork was not downloaded after the first failed")
	}
}

func TestFetcherNoSourcesNoFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer srv.Close()

	cat := testCatalog(catalog.Artwork{Filename: "none.jpg"})
	tally, err := newFetcher(cat, t.TempDir(), srv).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if tally.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", tally.Failed())
	}
}
