package catalog

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// fileCatalog mirrors Catalog for YAML decoding, with language codes as
// plain strings and narration scripts inline.
type fileCatalog struct {
	Name       string          `yaml:"name"`
	Story      string          `yaml:"story"`
	Languages  []string        `yaml:"languages"`
	Artworks   []fileArtwork   `yaml:"artworks"`
	Narrations []fileNarration `yaml:"narrations"`
	QRCodes    []fileQRCode    `yaml:"qr_codes"`
	IconSizes  []int           `yaml:"icon_sizes"`
}

type fileArtwork struct {
	Filename       string   `yaml:"filename"`
	Caption        []string `yaml:"caption"`
	ObjectNumber   string   `yaml:"object_number"`
	FallbackNumber string   `yaml:"fallback_number"`
	DirectURL      string   `yaml:"direct_url"`
}

type fileNarration struct {
	Filename string            `yaml:"filename"`
	Duration int               `yaml:"duration"`
	Texts    map[string]string `yaml:"texts"`
}

type fileQRCode struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
}

// Load reads a tour catalog from a YAML file, for driving the generators
// against a tour other than the built-in one.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return fc.toCatalog()
}

func (fc *fileCatalog) toCatalog() (*Catalog, error) {
	if fc.Name == "" {
		return nil, fmt.Errorf("catalog is missing a name")
	}
	if len(fc.Languages) == 0 {
		return nil, fmt.Errorf("catalog %q declares no languages", fc.Name)
	}

	c := &Catalog{
		Name:      fc.Name,
		Story:     fc.Story,
		IconSizes: fc.IconSizes,
	}

	for _, code := range fc.Languages {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("invalid language %q: %w", code, err)
		}
		c.Languages = append(c.Languages, tag)
	}

	for _, a := range fc.Artworks {
		if a.Filename == "" {
			return nil, fmt.Errorf("artwork entry is missing a filename")
		}
		c.Artworks = append(c.Artworks, Artwork{
			Filename:       a.Filename,
			Caption:        a.Caption,
			ObjectNumber:   a.ObjectNumber,
			FallbackNumber: a.FallbackNumber,
			DirectURL:      a.DirectURL,
		})
	}

	for _, n := range fc.Narrations {
		if n.Filename == "" {
			return nil, fmt.Errorf("narration entry is missing a filename")
		}
		if n.Duration <= 0 {
			return nil, fmt.Errorf("narration %s has no duration", n.Filename)
		}
		for _, tag := range c.Languages {
			if n.Texts[tag.String()] == "" {
				return nil, fmt.Errorf("narration %s has no %s script", n.Filename, tag)
			}
		}
		c.Narrations = append(c.Narrations, Narration{
			Filename: n.Filename,
			Duration: n.Duration,
			Texts:    n.Texts,
		})
	}

	seen := make(map[string]bool)
	for _, q := range fc.QRCodes {
		if q.Code == "" {
			return nil, fmt.Errorf("qr code entry is missing a code")
		}
		if seen[q.Code] {
			return nil, fmt.Errorf("duplicate qr code %s", q.Code)
		}
		seen[q.Code] = true
		c.QRCodes = append(c.QRCodes, QRCode{Code: q.Code, Description: q.Description})
	}

	return c, nil
}
