// Package story reads the tour definition file that ties the generated
// assets together.
package story

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// FormatName is the format identifier a tour definition must declare.
const FormatName = "Whisker"

// Story is the subset of the tour definition the toolkit reads. Passage
// content is left raw; only the count matters here.
type Story struct {
	Format        string            `json:"format"`
	FormatVersion string            `json:"formatVersion"`
	Metadata      Metadata          `json:"metadata"`
	Passages      []json.RawMessage `json:"passages"`
}

// Metadata holds the story header fields.
type Metadata struct {
	Title string `json:"title"`
}

// Load reads and parses the story file. Structural problems beyond JSON
// syntax are left to Validate so callers can still report partial
// contents.
func Load(path string) (*Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read story: %w", err)
	}

	var s Story
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse story JSON: %w", err)
	}
	return &s, nil
}

// Validate checks the fields every playable tour needs.
func (s *Story) Validate() error {
	if s.Format != FormatName {
		return fmt.Errorf("unexpected story format %q", s.Format)
	}
	if s.FormatVersion == "" {
		return errors.New("story has no formatVersion")
	}
	if len(s.Passages) == 0 {
		return errors.New("story has no passages")
	}
	if s.Metadata.Title == "" {
		return errors.New("story has no title")
	}
	return nil
}
