package format

import (
	"fmt"
	"strings"
	"time"
)

// FormatETA renders an estimated time to completion in a compact form.
// Zero and negative estimates mean the rate is not yet known and display as
// "calculating...". Sub-second estimates display as "< 1s". Longer estimates
// omit zero-valued trailing components, so exactly one hour renders as "1h"
// rather than "1h0m".
//
// Parameters:
//   - eta: The estimated remaining duration.
//
// Returns:
//   - string: The formatted estimate, for example "45s", "2m30s" or "1h15m".
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}

	total := int(eta.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	case minutes > 0 && seconds > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// ProgressBar renders a fixed-width bar of filled and empty block characters.
// Progress outside the [0, 1] range is clamped.
func ProgressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	} else if progress < 0 {
		progress = 0
	}
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA combines a progress bar, a percentage and an ETA
// into a single status line suitable for a spinner suffix or a monitor footer.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	if progress > 1.0 {
		progress = 1.0
	} else if progress < 0 {
		progress = 0
	}
	return fmt.Sprintf("[%s] %.1f%% | ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}
