package ui

import (
	"fmt"
	"time"
)

// FormatETA formats the time left as HH:MM:SS, prefixed with the number of
// days when there is at least one ("2d:03:04:05"). Partial seconds count as
// a whole second so the display only reads 00:00:00 once the wait is over.
func FormatETA(d time.Duration) string {
	if d <= 0 {
		return "00:00:00"
	}

	secs := int64(d / time.Second)
	if d%time.Second != 0 {
		secs++
	}

	days := secs / 86400
	hours := secs / 3600 % 24
	minutes := secs / 60 % 60
	seconds := secs % 60

	if days > 0 {
		return fmt.Sprintf("%dd:%02d:%02d:%02d", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
