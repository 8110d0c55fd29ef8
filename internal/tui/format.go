package tui

import (
	"fmt"
	"time"
)

// FormatTimeRemaining renders remaining time as mm:ss, rounding up so the
// display reaches 00:00 exactly at the phase boundary rather than a tick
// early.
func FormatTimeRemaining(remaining time.Duration) string {
	if remaining <= 0 {
		return "00:00"
	}
	total := int((remaining + time.Second - 1) / time.Second)
	mins := total / 60
	secs := total % 60
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// FormatDuration formats a configured duration compactly (e.g. "45s",
// "1m30s", "2m").
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	mins := total / 60
	secs := total % 60
	switch {
	case mins == 0:
		return fmt.Sprintf("%ds", secs)
	case secs == 0:
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dm%02ds", mins, secs)
}

// FormatPosition renders the round/set position, omitting sets when the
// workout has only one.
func FormatPosition(round, totalRounds, set, totalSets int) string {
	if totalSets <= 1 {
		return fmt.Sprintf("Round %d/%d", round, totalRounds)
	}
	return fmt.Sprintf("Round %d/%d  Set %d/%d", round, totalRounds, set, totalSets)
}
