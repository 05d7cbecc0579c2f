package report

import (
	"fmt"
	"strings"

	"github.com/agbru/repbench/internal/repeat"
)

// LineWidth is the exact byte length of every statistics record. Fixing the
// width lets the sink overwrite records in place without the file ever
// changing size.
const LineWidth = 100

// FormatStatsLine renders a statistics snapshot as a record of exactly
// LineWidth bytes. The count is left-aligned in a fifteen-column field, and
// elapsed seconds and speed carry two decimals. A rendered line shorter than
// LineWidth is padded with trailing spaces; a longer one is truncated at
// LineWidth bytes. Padding and truncation are the single mechanism that keeps
// every record the same size regardless of how large the numbers grow.
//
// Parameters:
//   - stats: The snapshot to render.
//
// Returns:
//   - string: The fixed-width record, without a trailing newline.
func FormatStatsLine(stats repeat.Stats) string {
	line := fmt.Sprintf("Processed: %-15d | Elapsed: %.2fs | Speed: %.2f/s",
		stats.Ops, stats.Elapsed.Seconds(), stats.Speed)
	if len(line) > LineWidth {
		return line[:LineWidth]
	}
	return line + strings.Repeat(" ", LineWidth-len(line))
}
