// Package timeutil provides helpers for rendering durations in log and console output.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration in a compact human-readable form
// (e.g. "850ms", "1.2s", "3.5m", "2.0h").
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%.1fm", d.Minutes())
	default:
		return fmt.Sprintf("%.1fh", d.Hours())
	}
}
