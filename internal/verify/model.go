// Package verify checks the generated asset tree against the catalog
// and reports what is present, what is still a placeholder, and what is
// missing.
package verify

// File statuses as shown in the report.
const (
	StatusActual      = "ACTUAL"
	StatusPlaceholder = "PLACEHOLDER"
	StatusMarkerOnly  = "MARKER FILE ONLY"
)

// PlaceholderMaxBytes is the size below which an image is assumed to be
// a generated placeholder rather than a real collection photograph.
const PlaceholderMaxBytes = 500000

// Report is the complete verification result for one asset tree.
type Report struct {
	Tour       string     `json:"tour"`
	Categories []Category `json:"categories"`
	Story      StoryCheck `json:"story"`
	Found      int        `json:"found"`
	Required   int        `json:"required"`
	TotalSize  int64      `json:"totalSizeBytes"`
	Complete   bool       `json:"complete"`
}

// Category is one checked asset group.
type Category struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Header string `json:"-"`
	// Language is the display name for audio categories, e.g. "English".
	Language  string `json:"language,omitempty"`
	Found     int    `json:"found"`
	Required  int    `json:"required"`
	TotalSize int64  `json:"totalSizeBytes"`
	Files     []File `json:"files"`
}

// countStatus counts files carrying the given status.
func (c Category) countStatus(status string) int {
	n := 0
	for _, f := range c.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// Percent is the category completion percentage.
func (c Category) Percent() float64 {
	if c.Required == 0 {
		return 0
	}
	return float64(c.Found) / float64(c.Required) * 100
}

// add records one checked file. A file whose slot is filled by a marker
// counts as found without contributing size.
func (c *Category) add(f File) {
	c.Required++
	if f.Found {
		c.Found++
		c.TotalSize += f.SizeBytes
	}
	c.Files = append(c.Files, f)
}

// File is one checked asset. Found means the slot is filled, whether by
// the real file or by a marker.
type File struct {
	Name      string `json:"name"`
	Found     bool   `json:"found"`
	SizeBytes int64  `json:"sizeBytes,omitempty"`
	Status    string `json:"status,omitempty"`
	// Pixels is the square edge length for icon files, zero otherwise.
	Pixels int `json:"pixels,omitempty"`
}

// StoryCheck is the tour definition verification result.
type StoryCheck struct {
	Path          string `json:"path"`
	Found         bool   `json:"found"`
	SizeBytes     int64  `json:"sizeBytes,omitempty"`
	ValidJSON     bool   `json:"validJSON"`
	Error         string `json:"error,omitempty"`
	Format        string `json:"format,omitempty"`
	FormatVersion string `json:"formatVersion,omitempty"`
	Passages      int    `json:"passages"`
	Title         string `json:"title,omitempty"`
}
