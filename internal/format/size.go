// Package format renders sizes, durations and file names for display.
package format

import "fmt"

const (
	kb uint64 = 1024
	mb        = kb * 1024
	gb        = mb * 1024
)

// FileSize renders a byte count using base-1024 units with two decimals.
// Counts below 1 KB are shown as whole bytes.
func FileSize(bytes uint64) string {
	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(gb))
	case bytes >= mb:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}

// Duration renders seconds as HH:MM:SS, or MM:SS when under an hour.
func Duration(seconds uint64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
