package catalog

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/language"
)

// Narration scripts are stored as text files under narrations/<lang>/ and
// embedded at compile time, one file per audio entry.
//
//go:embed narrations
var narrationScripts embed.FS

// Rijksmuseum returns the built-in catalog for the Gallery of Honour tour:
// 13 artworks, 12 narrations in English and Dutch, 13 QR codes, and the
// 8 standard PWA icon sizes.
func Rijksmuseum() *Catalog {
	c := &Catalog{
		Name:      "Rijksmuseum Gallery of Honour",
		Story:     "rijksmuseum_tour.whisker",
		Languages: []language.Tag{language.English, language.Dutch},
		Artworks: []Artwork{
			{
				Filename: "gallery_of_honour.jpg",
				Caption:  []string{"Gallery of Honour", "Rijksmuseum"},
			},
			{
				Filename:     "night_watch.jpg",
				Caption:      []string{"The Night Watch", "Rembrandt van Rijn", "1642"},
				ObjectNumber: "SK-C-5",
				DirectURL:    "https://lh3.googleusercontent.com/J-mxAE7CPu-DXIOx4QKBtb0GC4ud37da1QK7CzbTIDswmvZHXhLm4Tv2-1H3iBXJWAW_bx5O8kIEbM0XMlE6FZ9gU=s0",
			},
			{
				Filename:     "milkmaid.jpg",
				Caption:      []string{"The Milkmaid", "Johannes Vermeer", "c. 1660"},
				ObjectNumber: "SK-A-2344",
				DirectURL:    "https://lh3.googleusercontent.com/zYX48j-dDlPLU6N8KH0-l0FTxvhNbmhKf17lGMHGjsm2kNdjzSzJHCO9_xLW6F8v0gHy_aPPl5HrGW8C9k5Q6T1H=s0",
			},
			{
				Filename:     "merry_drinker.jpg",
				Caption:      []string{"The Merry Drinker", "Frans Hals", "c. 1628"},
				ObjectNumber: "SK-A-133",
				DirectURL:    "https://lh3.googleusercontent.com/xGN9CmXb_3dE2R6Sq3SVKuNjfC9A7-KlcMJJqFjHT0kPpLJTKLQhUOpLbCiYX3_-g6lFHj8PJ1XLrr1A1RXe0Y9k=s0",
			},
			{
				Filename:     "self_portrait_paul.jpg",
				Caption:      []string{"Self-Portrait as Paul", "Rembrandt van Rijn", "1661"},
				ObjectNumber: "SK-A-4050",
			},
			{
				Filename:     "jewish_bride.jpg",
				Caption:      []string{"The Jewish Bride", "Rembrandt van Rijn", "c. 1665"},
				ObjectNumber: "SK-C-216",
				DirectURL:    "https://lh3.googleusercontent.com/AKxfBZpJUNZNMBAWHjfkl6gq4UCq63vUWKNtJkkmjPrTJ0u0cNOXfNcnJd2QP2yh7kWQ5qCPCv0zUQ=s0",
			},
			{
				Filename:     "still_life.jpg",
				Caption:      []string{"Still Life with Flowers", "Jan van Huysum", "c. 1715"},
				ObjectNumber: "SK-A-2069",
			},
			{
				Filename:     "threatened_swan.jpg",
				Caption:      []string{"The Threatened Swan", "Jan Asselijn", "c. 1650"},
				ObjectNumber: "SK-A-4",
			},
			{
				Filename:     "winter_landscape.jpg",
				Caption:      []string{"Winter Landscape", "Hendrick Avercamp", "c. 1608"},
				ObjectNumber: "SK-A-1718",
				DirectURL:    "https://lh3.googleusercontent.com/O7ES8hCeygPDvHSob5Yl4bPIRGA58EoCM-ouQYN6CYGn8RL4rYhjaKqfSzmosM3qpw5b0K7qe6AK1rNGY8RTMZDvsPw=s0",
			},
			{
				Filename:       "delftware.jpg",
				Caption:        []string{"Delftware Collection", "17th-18th Century"},
				FallbackNumber: "BK-NM-12400",
			},
			{
				Filename:     "battle_waterloo.jpg",
				Caption:      []string{"Battle of Waterloo", "Jan Willem Pieneman", "1824"},
				ObjectNumber: "SK-A-1115",
			},
			{
				Filename:       "warship_model.jpg",
				Caption:        []string{"Warship Amsterdam", "Model c. 1750"},
				FallbackNumber: "NG-MC-453",
			},
			{
				Filename:     "dutch_dollhouse.jpg",
				Caption:      []string{"Dutch Dollhouse", "Petronella Oortman", "c. 1686-1710"},
				ObjectNumber: "BK-NM-743",
			},
		},
		Narrations: []Narration{
			{Filename: "night_watch.mp3", Duration: 240},
			{Filename: "milkmaid.mp3", Duration: 180},
			{Filename: "merry_drinker.mp3", Duration: 150},
			{Filename: "self_portrait_paul.mp3", Duration: 180},
			{Filename: "jewish_bride.mp3", Duration: 180},
			{Filename: "still_life.mp3", Duration: 150},
			{Filename: "threatened_swan.mp3", Duration: 150},
			{Filename: "winter_landscape.mp3", Duration: 180},
			{Filename: "delftware.mp3", Duration: 150},
			{Filename: "battle_waterloo.mp3", Duration: 180},
			{Filename: "warship_model.mp3", Duration: 150},
			{Filename: "dutch_dollhouse.mp3", Duration: 180},
		},
		QRCodes: []QRCode{
			{Code: "RIJKS-WELCOME", Description: "Welcome to Rijksmuseum"},
			{Code: "RIJKS-NIGHTWATCH-001", Description: "The Night Watch"},
			{Code: "RIJKS-MILKMAID-002", Description: "The Milkmaid"},
			{Code: "RIJKS-DRINKER-003", Description: "The Merry Drinker"},
			{Code: "RIJKS-REMBRANDT-SELF-004", Description: "Self-Portrait as Paul"},
			{Code: "RIJKS-BRIDE-005", Description: "The Jewish Bride"},
			{Code: "RIJKS-STILLLIFE-006", Description: "Still Life with Flowers"},
			{Code: "RIJKS-SWAN-007", Description: "The Threatened Swan"},
			{Code: "RIJKS-WINTER-008", Description: "Winter Landscape"},
			{Code: "RIJKS-DELFTWARE-009", Description: "Delftware Collection"},
			{Code: "RIJKS-WATERLOO-010", Description: "Battle of Waterloo"},
			{Code: "RIJKS-WARSHIP-011", Description: "Warship Amsterdam Model"},
			{Code: "RIJKS-DOLLHOUSE-012", Description: "Dutch Dollhouse"},
		},
		IconSizes: []int{72, 96, 128, 144, 152, 192, 384, 512},
	}

	for i := range c.Narrations {
		c.Narrations[i].Texts = map[string]string{
			"en": mustScript("en", c.Narrations[i].Filename),
			"nl": mustScript("nl", c.Narrations[i].Filename),
		}
	}
	return c
}

// mustScript loads an embedded narration script. A missing script is a
// mismatch between the table above and the narrations/ directory, caught
// at first use rather than deep inside a generation run.
func mustScript(lang, audioFile string) string {
	name := path.Join("narrations", lang, AudioTextFilename(audioFile))
	data, err := narrationScripts.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("embedded narration script %s: %v", name, err))
	}
	return strings.TrimSpace(string(data))
}
