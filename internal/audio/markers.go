package audio

import "fmt"

// MarkerText is the content of the note written in place of a narration
// MP3 when no audio can be produced. The verifier counts a marker as a
// filled slot so the tour package stays trackable.
func MarkerText(durationSeconds int, languageName string) string {
	return fmt.Sprintf("PLACEHOLDER: Replace with actual %s %s narration\n", FormatDuration(durationSeconds), languageName) +
		fmt.Sprintf("Duration: %d seconds\n", durationSeconds) +
		"Format: MP3, 128kbps, mono, 44.1kHz\n"
}
