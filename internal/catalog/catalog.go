// Package catalog defines the asset inventory for a museum tour: the artworks,
// narration scripts, QR codes, and icon sizes that the generators produce and
// the verifier checks. The Rijksmuseum Gallery of Honour tour is built in;
// alternative tours can be loaded from YAML.
package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Artwork describes one tour-stop image.
type Artwork struct {
	// Filename is the target file under assets/images, e.g. "night_watch.jpg".
	Filename string
	// Caption holds the placeholder caption lines (title, artist, year).
	Caption []string
	// ObjectNumber is the museum collection identifier. Empty when the work
	// has no direct collection record (e.g. a gallery interior shot).
	ObjectNumber string
	// FallbackNumber is tried when ObjectNumber is empty or yields no image.
	FallbackNumber string
	// DirectURL is a known public-domain image URL, preferred over the
	// collection API when present.
	DirectURL string
}

// Narration describes one audio guide entry, produced once per language.
type Narration struct {
	// Filename is the target file under assets/audio/<lang>, e.g. "night_watch.mp3".
	Filename string
	// Duration is the expected narration length in seconds.
	Duration int
	// Texts maps a BCP-47 language code to the narration script.
	Texts map[string]string
}

// Text returns the narration script for the given language.
func (n Narration) Text(lang language.Tag) (string, error) {
	text, ok := n.Texts[lang.String()]
	if !ok || text == "" {
		return "", fmt.Errorf("no %s script for %s", lang, n.Filename)
	}
	return text, nil
}

// QRCode describes one scannable tour-stop code.
type QRCode struct {
	// Code is the payload encoded in the QR image and its base filename.
	Code string
	// Description is the human-readable label shown in logs and reports.
	Description string
}

// Filename returns the target file under assets/qr_codes.
func (q QRCode) Filename() string {
	return q.Code + ".png"
}

// Catalog is the complete asset inventory for one tour.
type Catalog struct {
	// Name identifies the tour, e.g. "Rijksmuseum Gallery of Honour".
	Name string
	// Story is the tour definition filename, e.g. "rijksmuseum_tour.whisker".
	Story string
	// Languages lists the narration languages in output-directory order.
	Languages  []language.Tag
	Artworks   []Artwork
	Narrations []Narration
	QRCodes    []QRCode
	// IconSizes lists the square icon edge lengths in pixels.
	IconSizes []int
}

// ImageFiles returns the required image filenames in catalog order.
func (c *Catalog) ImageFiles() []string {
	files := make([]string, 0, len(c.Artworks))
	for _, a := range c.Artworks {
		files = append(files, a.Filename)
	}
	return files
}

// AudioFiles returns the required audio filenames in catalog order.
// The same set is required for every language.
func (c *Catalog) AudioFiles() []string {
	files := make([]string, 0, len(c.Narrations))
	for _, n := range c.Narrations {
		files = append(files, n.Filename)
	}
	return files
}

// QRFiles returns the required QR code filenames in catalog order.
func (c *Catalog) QRFiles() []string {
	files := make([]string, 0, len(c.QRCodes))
	for _, q := range c.QRCodes {
		files = append(files, q.Filename())
	}
	return files
}

// IconFiles returns the required icon filenames in size order.
func (c *Catalog) IconFiles() []string {
	files := make([]string, 0, len(c.IconSizes))
	for _, size := range c.IconSizes {
		files = append(files, IconFilename(size))
	}
	return files
}

// IconFilename returns the icon filename for a given pixel size.
func IconFilename(size int) string {
	return fmt.Sprintf("icon-%d.png", size)
}

// LanguageName returns the English display name of a language tag,
// e.g. "English" for en and "Dutch" for nl. Falls back to the raw tag
// for languages the display tables don't cover.
func LanguageName(tag language.Tag) string {
	name := display.English.Languages().Name(tag)
	if name == "" {
		return tag.String()
	}
	return name
}

// AudioTextFilename maps an audio filename to its embedded script name,
// e.g. "night_watch.mp3" to "night_watch.txt".
func AudioTextFilename(audioFile string) string {
	return strings.TrimSuffix(audioFile, ".mp3") + ".txt"
}

// MarkerFilename returns the name of the text marker written in place of
// a missing audio file, e.g. "night_watch.mp3.txt".
func MarkerFilename(audioFile string) string {
	return audioFile + ".txt"
}
