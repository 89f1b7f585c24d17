package page

import (
	"fmt"

	"hackpulse/internal/core/countdown"
)

const placeholderUnit = "--"

// unitLabels are shown under the countdown boxes, largest unit first.
var unitLabels = [4]string{"DAYS", "HOURS", "MINUTES", "SECONDS"}

func formatUnit(value int) string {
	if value < 0 {
		value = 0
	}
	return fmt.Sprintf("%02d", value)
}

func unitValues(remaining countdown.Remaining) [4]string {
	return [4]string{
		formatUnit(remaining.Days),
		formatUnit(remaining.Hours),
		formatUnit(remaining.Minutes),
		formatUnit(remaining.Seconds),
	}
}

// StatusText summarizes a countdown snapshot for the tray menu.
func StatusText(snapshot countdown.Snapshot) string {
	if snapshot.Complete {
		return "Hackathon is live"
	}
	remaining := snapshot.Remaining
	if remaining.Days > 0 {
		return fmt.Sprintf("Starts in %dd %02dh %02dm", remaining.Days, remaining.Hours, remaining.Minutes)
	}
	return fmt.Sprintf("Starts in %02dh %02dm %02ds", remaining.Hours, remaining.Minutes, remaining.Seconds)
}
