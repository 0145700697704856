package verify

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/writewhisker/tourkit/internal/catalog"
	"github.com/writewhisker/tourkit/internal/story"
)

// Check scans an asset tree for the files the catalog requires.
type Check struct {
	Catalog   *catalog.Catalog
	AssetsDir string
	IconsDir  string
	StoryPath string
}

// Run stats every required file and builds the report. Missing and
// unreadable files are reporting outcomes, not errors, so Run always
// returns a complete report.
func (c *Check) Run() *Report {
	r := &Report{Tour: c.Catalog.Name}

	r.Categories = append(r.Categories, c.checkQRCodes())
	r.Categories = append(r.Categories, c.checkImages())
	for _, lang := range c.Catalog.Languages {
		r.Categories = append(r.Categories, c.checkAudio(lang))
	}
	r.Categories = append(r.Categories, c.checkIcons())
	r.Story = c.checkStory()

	for _, cat := range r.Categories {
		r.Found += cat.Found
		r.Required += cat.Required
		r.TotalSize += cat.TotalSize
	}
	r.Complete = r.Found == r.Required

	log.Debug().
		Int("found", r.Found).
		Int("required", r.Required).
		Int64("bytes", r.TotalSize).
		Msg("Asset tree checked")
	return r
}

func (c *Check) checkQRCodes() Category {
	cat := Category{Key: "qr_codes", Label: "QR Codes", Header: "📋 QR CODES"}
	dir := filepath.Join(c.AssetsDir, "qr_codes")
	for _, name := range c.Catalog.QRFiles() {
		size, ok := statFile(filepath.Join(dir, name))
		cat.add(File{Name: name, Found: ok, SizeBytes: size})
	}
	return cat
}

func (c *Check) checkImages() Category {
	cat := Category{Key: "images", Label: "Images", Header: "🖼️  IMAGES"}
	dir := filepath.Join(c.AssetsDir, "images")
	for _, name := range c.Catalog.ImageFiles() {
		size, ok := statFile(filepath.Join(dir, name))
		f := File{Name: name, Found: ok, SizeBytes: size}
		if ok {
			f.Status = StatusActual
			if size < PlaceholderMaxBytes {
				f.Status = StatusPlaceholder
			}
		}
		cat.add(f)
	}
	return cat
}

func (c *Check) checkAudio(lang language.Tag) Category {
	code := lang.String()
	name := catalog.LanguageName(lang)
	cat := Category{
		Key:      "audio_" + code,
		Label:    "Audio " + strings.ToUpper(code),
		Header:   "🎧 AUDIO - " + strings.ToUpper(name),
		Language: name,
	}
	dir := filepath.Join(c.AssetsDir, "audio", code)
	for _, name := range c.Catalog.AudioFiles() {
		size, ok := statFile(filepath.Join(dir, name))
		f := File{Name: name, Found: ok, SizeBytes: size}
		if ok {
			f.Status = StatusActual
		} else if _, markerOK := statFile(filepath.Join(dir, catalog.MarkerFilename(name))); markerOK {
			f.Found = true
			f.Status = StatusMarkerOnly
		}
		cat.add(f)
	}
	return cat
}

func (c *Check) checkIcons() Category {
	cat := Category{Key: "pwa_icons", Label: "PWA Icons", Header: "🎨 PWA ICONS"}
	for _, pixels := range c.Catalog.IconSizes {
		name := catalog.IconFilename(pixels)
		size, ok := statFile(filepath.Join(c.IconsDir, name))
		cat.add(File{Name: name, Found: ok, SizeBytes: size, Pixels: pixels})
	}
	return cat
}

func (c *Check) checkStory() StoryCheck {
	sc := StoryCheck{Path: c.StoryPath}

	size, ok := statFile(c.StoryPath)
	if !ok {
		return sc
	}
	sc.Found = true
	sc.SizeBytes = size

	s, err := story.Load(c.StoryPath)
	if err != nil {
		sc.Error = err.Error()
		return sc
	}
	sc.ValidJSON = true
	sc.Format = s.Format
	sc.FormatVersion = s.FormatVersion
	sc.Passages = len(s.Passages)
	sc.Title = s.Metadata.Title
	return sc
}

// statFile returns the size of a regular file, or false when it does
// not exist or cannot be statted.
func statFile(path string) (int64, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return 0, false
	}
	return info.Size(), true
}
