package audio

import "fmt"

// FormatDuration renders a length in seconds as M:SS, or H:MM:SS past
// the hour.
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := seconds % 3600 / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
