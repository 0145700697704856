package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writewhisker/tourkit/internal/verify"
)

const testCatalogYAML = `name: Test Museum Tour
story: tour.whisker
languages: [en, nl]
artworks:
  - filename: first.jpg
    caption:
      - '"First Artwork"'
      - Test Painter
      - "1650"
narrations:
  - filename: first.mp3
    duration: 2
    texts:
      en: Welcome to the first stop.
      nl: Welkom bij de eerste stop.
qr_codes:
  - code: TEST-WELCOME
    description: Welcome to Test Museum
icon_sizes: [72]
`

func writeTestCatalog(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogYAML), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestQRCodesCommand(t *testing.T) {
	dir := t.TempDir()
	catPath := writeTestCatalog(t, dir)
	assets := filepath.Join(dir, "assets")

	out, err := runCommand(t, "qrcodes", "--catalog", catPath, "--assets-dir", assets)
	require.NoError(t, err)
	assert.Contains(t, out, "TEST-WELCOME.png")

	_, statErr := os.Stat(filepath.Join(assets, "qr_codes", "TEST-WELCOME.png"))
	require.NoError(t, statErr)
}

func TestIconsCommand(t *testing.T) {
	dir := t.TempDir()
	catPath := writeTestCatalog(t, dir)
	icons := filepath.Join(dir, "icons")

	out, err := runCommand(t, "icons", "--catalog", catPath, "--icons-dir", icons)
	require.NoError(t, err)
	assert.Contains(t, out, "icon-72.png")

	_, statErr := os.Stat(filepath.Join(icons, "icon-72.png"))
	require.NoError(t, statErr)
}

func TestImagesPlaceholdersCommand(t *testing.T) {
	dir := t.TempDir()
	catPath := writeTestCatalog(t, dir)
	assets := filepath.Join(dir, "assets")

	out, err := runCommand(t, "images", "placeholders", "--catalog", catPath, "--assets-dir", assets)
	require.NoError(t, err)
	assert.Contains(t, out, "first.jpg")

	_, statErr := os.Stat(filepath.Join(assets, "images", "first.jpg"))
	require.NoError(t, statErr)
}

func TestAudioPlaceholdersCommandMarkers(t *testing.T) {
	dir := t.TempDir()
	catPath := writeTestCatalog(t, dir)
	assets := filepath.Join(dir, "assets")

	_, err := runCommand(t, "audio", "placeholders", "--markers", "--catalog", catPath, "--assets-dir", assets)
	require.NoError(t, err)

	marker, readErr := os.ReadFile(filepath.Join(assets, "audio", "en", "first.mp3.txt"))
	require.NoError(t, readErr)
	assert.Contains(t, string(marker), "PLACEHOLDER: Replace with actual 0:02 English narration")

	_, statErr := os.Stat(filepath.Join(assets, "audio", "nl", "first.mp3.txt"))
	require.NoError(t, statErr)
}

func TestVerifyCommandJSON(t *testing.T) {
	dir := t.TempDir()
	catPath := writeTestCatalog(t, dir)

	out, err := runCommand(t, "verify", "--json",
		"--catalog", catPath,
		"--assets-dir", filepath.Join(dir, "assets"),
		"--icons-dir", filepath.Join(dir, "icons"),
		"--story", filepath.Join(dir, "tour.whisker"))
	require.NoError(t, err)

	var rep verify.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.False(t, rep.Complete)
	assert.Equal(t, 0, rep.Found)
	assert.Equal(t, 5, rep.Required)
	assert.Equal(t, "Test Museum Tour", rep.Tour)
}

func TestVerifyCommandAfterGeneration(t *testing.T) {
	dir := t.TempDir()
	catPath := writeTestCatalog(t, dir)
	assets := filepath.Join(dir, "assets")
	icons := filepath.Join(dir, "icons")

	for _, args := range [][]string{
		{"qrcodes", "--catalog", catPath, "--assets-dir", assets},
		{"icons", "--catalog", catPath, "--icons-dir", icons},
		{"audio", "placeholders", "--catalog", catPath, "--assets-dir", assets},
	} {
		_, err := runCommand(t, args...)
		require.NoError(t, err)
	}

	out, err := runCommand(t, "verify",
		"--catalog", catPath,
		"--assets-dir", assets,
		"--icons-dir", icons,
		"--story", filepath.Join(dir, "tour.whisker"))
	require.NoError(t, err)

	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "STATUS: PARTIAL")
	assert.Contains(t, out, "QR Codes      1/1  (100.0%)")
	assert.Contains(t, out, "Images        0/1  (  0.0%)")
}

func TestCatalogFlagMissingFile(t *testing.T) {
	_, err := runCommand(t, "qrcodes", "--catalog", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog file")
}

func TestPublishRequiresBucket(t *testing.T) {
	t.Setenv("TOURKIT_BUCKET", "")
	_, err := runCommand(t, "publish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOURKIT_BUCKET")
}
