package verify

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/writewhisker/tourkit/internal/catalog"
)

const testStoryJSON = `{
  "format": "Whisker",
  "formatVersion": "1.0",
  "metadata": {"title": "Test Museum Tour"},
  "passages": [
    {"name": "Welcome", "text": "Scan a code to begin."},
    {"name": "Stop 1", "text": "The first artwork."}
  ]
}`

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Name:      "Test Museum Tour",
		Story:     "tour.whisker",
		Languages: []language.Tag{language.English, language.Dutch},
		Artworks: []catalog.Artwork{
			{Filename: "first.jpg"},
			{Filename: "second.jpg"},
		},
		Narrations: []catalog.Narration{
			{Filename: "first.mp3", Duration: 150},
		},
		QRCodes: []catalog.QRCode{
			{Code: "TEST-WELCOME", Description: "Welcome"},
			{Code: "TEST-STOP-001", Description: "Stop 1"},
		},
		IconSizes: []int{72, 192},
	}
}

// writeBytes creates path (and its parents) holding size filler bytes.
func writeBytes(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte{'x'}, size), 0o644); err != nil {
		t.Fatal(err)
	}
}

// completeTree lays out a fixture where every slot is filled: real and
// placeholder images, a real English narration, a Dutch marker, and a
// valid story file. Returns the configured Check.
func completeTree(t *testing.T) *Check {
	t.Helper()
	root := t.TempDir()
	assets := filepath.Join(root, "assets")
	icons := filepath.Join(root, "web", "icons")

	writeBytes(t, filepath.Join(assets, "qr_codes", "TEST-WELCOME.png"), 1024)
	writeBytes(t, filepath.Join(assets, "qr_codes", "TEST-STOP-001.png"), 2048)
	writeBytes(t, filepath.Join(assets, "images", "first.jpg"), 614400)
	writeBytes(t, filepath.Join(assets, "images", "second.jpg"), 122880)
	writeBytes(t, filepath.Join(assets, "audio", "en", "first.mp3"), 102400)
	writeBytes(t, filepath.Join(assets, "audio", "nl", "first.mp3.txt"), 50)
	writeBytes(t, filepath.Join(icons, "icon-72.png"), 3072)
	writeBytes(t, filepath.Join(icons, "icon-192.png"), 10240)

	storyPath := filepath.Join(root, "tour.whisker")
	padded := testStoryJSON + strings.Repeat(" ", 1024-len(testStoryJSON))
	if err := os.WriteFile(storyPath, []byte(padded), 0o644); err != nil {
		t.Fatal(err)
	}

	return &Check{
		Catalog:   testCatalog(),
		AssetsDir: assets,
		IconsDir:  icons,
		StoryPath: storyPath,
	}
}

func category(t *testing.T, r *Report, key string) Category {
	t.Helper()
	for _, cat := range r.Categories {
		if cat.Key == key {
			return cat
		}
	}
	t.Fatalf("report has no %q category", key)
	return Category{}
}

func TestCheckRunComplete(t *testing.T) {
	r := completeTree(t).Run()

	if !r.Complete {
		t.Error("Complete = false for a fully populated tree")
	}
	if r.Found != 8 || r.Required != 8 {
		t.Errorf("Found/Required = %d/%d, want 8/8", r.Found, r.Required)
	}
	if r.TotalSize != 856064 {
		t.Errorf("TotalSize = %d, want 856064", r.TotalSize)
	}

	images := category(t, r, "images")
	if images.Files[0].Status != StatusActual {
		t.Errorf("first.jpg status = %q, want %q", images.Files[0].Status, StatusActual)
	}
	if images.Files[1].Status != StatusPlaceholder {
		t.Errorf("second.jpg status = %q, want %q", images.Files[1].Status, StatusPlaceholder)
	}

	nl := category(t, r, "audio_nl")
	if nl.Found != 1 {
		t.Errorf("audio_nl Found = %d, want 1 (marker counts)", nl.Found)
	}
	if nl.Files[0].Status != StatusMarkerOnly {
		t.Errorf("nl/first.mp3 status = %q, want %q", nl.Files[0].Status, StatusMarkerOnly)
	}
	if nl.TotalSize != 0 {
		t.Errorf("audio_nl TotalSize = %d, want 0 (markers add no size)", nl.TotalSize)
	}

	if !r.Story.ValidJSON {
		t.Error("story not reported as valid JSON")
	}
	if r.Story.Passages != 2 {
		t.Errorf("story Passages = %d, want 2", r.Story.Passages)
	}
	if r.Story.Title != "Test Museum Tour" {
		t.Errorf("story Title = %q", r.Story.Title)
	}
}

func TestCheckRunEmptyTree(t *testing.T) {
	root := t.TempDir()
	check := &Check{
		Catalog:   testCatalog(),
		AssetsDir: filepath.Join(root, "assets"),
		IconsDir:  filepath.Join(root, "web", "icons"),
		StoryPath: filepath.Join(root, "tour.whisker"),
	}

	r := check.Run()
	if r.Complete {
		t.Error("Complete = true for an empty tree")
	}
	if r.Found != 0 || r.Required != 8 {
		t.Errorf("Found/Required = %d/%d, want 0/8", r.Found, r.Required)
	}
	if r.Story.Found {
		t.Error("story reported as found in an empty tree")
	}
}

func TestCheckRunBadStoryJSON(t *testing.T) {
	check := completeTree(t)
	if err := os.WriteFile(check.StoryPath, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := check.Run()
	if !r.Story.Found {
		t.Error("story file not reported as present")
	}
	if r.Story.ValidJSON {
		t.Error("broken story reported as valid JSON")
	}
	if r.Story.Error == "" {
		t.Error("story parse error not captured")
	}
	// A broken story never blocks the asset counts.
	if !r.Complete {
		t.Error("Complete = false, want true with all asset slots filled")
	}
}

func TestCheckRunLanguageLabels(t *testing.T) {
	r := completeTree(t).Run()

	en := category(t, r, "audio_en")
	if en.Label != "Audio EN" {
		t.Errorf("Label = %q, want %q", en.Label, "Audio EN")
	}
	if en.Language != "English" {
		t.Errorf("Language = %q, want English", en.Language)
	}
	if !strings.Contains(en.Header, "AUDIO - ENGLISH") {
		t.Errorf("Header = %q", en.Header)
	}
}
