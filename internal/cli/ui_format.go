// Number formatting utilities for CLI output.

package cli

import (
	"time"

	"github.com/agbru/repbench/internal/format"
)

// FormatCount delegates to format.FormatCount.
func FormatCount(n uint64) string {
	return format.FormatCount(n)
}

// FormatExecutionDuration delegates to format.FormatExecutionDuration.
func FormatExecutionDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}
