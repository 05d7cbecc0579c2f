package report

import (
	"strings"
	"testing"
	"time"

	"github.com/agbru/repbench/internal/repeat"
)

// TestFormatStatsLine verifies the rendered content of typical records.
func TestFormatStatsLine(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		stats   repeat.Stats
		trimmed string
	}{
		{
			name:    "Zero snapshot",
			stats:   repeat.Stats{},
			trimmed: "Processed: 0" + strings.Repeat(" ", 14) + " | Elapsed: 0.00s | Speed: 0.00/s",
		},
		{
			name: "Counter narrower than its column",
			stats: repeat.Stats{
				Ops:     3,
				Elapsed: 10 * time.Millisecond,
				Speed:   300,
			},
			trimmed: "Processed: 3" + strings.Repeat(" ", 14) + " | Elapsed: 0.01s | Speed: 300.00/s",
		},
		{
			name: "Typical snapshot",
			stats: repeat.Stats{
				Ops:     12345,
				Elapsed: 2500 * time.Millisecond,
				Speed:   4938,
			},
			trimmed: "Processed: 12345" + strings.Repeat(" ", 10) + " | Elapsed: 2.50s | Speed: 4938.00/s",
		},
		{
			name: "Counter wider than its column",
			stats: repeat.Stats{
				Ops:     18446744073709551615,
				Elapsed: time.Second,
				Speed:   1,
			},
			trimmed: "Processed: 18446744073709551615 | Elapsed: 1.00s | Speed: 1.00/s",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FormatStatsLine(tc.stats)
			if len(got) != LineWidth {
				t.Fatalf("len = %d, want %d", len(got), LineWidth)
			}
			if trimmed := strings.TrimRight(got, " "); trimmed != tc.trimmed {
				t.Errorf("record = %q, want %q (ignoring padding)", trimmed, tc.trimmed)
			}
		})
	}
}

// TestFormatStatsLineTruncates verifies that values too wide for the record
// are cut at the width limit instead of growing the record.
func TestFormatStatsLineTruncates(t *testing.T) {
	t.Parallel()
	stats := repeat.Stats{
		Ops:     18446744073709551615,
		Elapsed: 365 * 24 * time.Hour,
		Speed:   1e300,
	}
	got := FormatStatsLine(stats)
	if len(got) != LineWidth {
		t.Fatalf("len = %d, want %d", len(got), LineWidth)
	}
	if !strings.HasPrefix(got, "Processed: 18446744073709551615") {
		t.Errorf("record should keep its prefix when truncated, got %q", got)
	}
	if strings.HasSuffix(got, " ") {
		t.Errorf("a truncated record should end mid-content, got %q", got)
	}
}
