package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/repbench/internal/orchestration"
	"github.com/agbru/repbench/internal/repeat"
)

func TestPresentSummary(t *testing.T) {
	withPlainTheme(t)

	summary := orchestration.Summary{
		Payload: "abcd",
		Workers: 4,
		Ops:     1234567,
		Elapsed: 2 * time.Second,
		Speed:   617283.5,
		LogPath: "stats.log",
	}

	var buf bytes.Buffer
	CLISummaryPresenter{}.PresentSummary(summary, &buf)

	output := buf.String()
	want := []string{
		"--- Benchmark Finished ---",
		"Total repetitions processed: 1,234,567",
		"Total time elapsed: 2s",
		"Average speed: 617283.50 repetitions/s",
		"Log file saved to: stats.log",
	}
	for _, line := range want {
		if !strings.Contains(output, line) {
			t.Errorf("missing %q in summary:\n%s", line, output)
		}
	}
	if strings.Contains(output, "Latency Distribution") {
		t.Error("latency table should only render with recorded samples")
	}
	if strings.Contains(output, "Per-worker speed") {
		t.Error("indicators should require verbose mode")
	}
}

func TestPresentSummaryVerbose(t *testing.T) {
	withPlainTheme(t)

	summary := orchestration.Summary{
		Payload: "abcd",
		Workers: 4,
		Ops:     1000,
		Elapsed: time.Second,
		Speed:   1000,
		LogPath: "stats.log",
	}

	var buf bytes.Buffer
	CLISummaryPresenter{Verbose: true}.PresentSummary(summary, &buf)

	output := buf.String()
	if !strings.Contains(output, "Per-worker speed: 250.00 repetitions/s") {
		t.Errorf("missing per-worker speed in verbose summary:\n%s", output)
	}
	if !strings.Contains(output, "Data duplicated: 3.9 KB (3.9 KB/s)") {
		t.Errorf("missing duplicated-data figures in verbose summary:\n%s", output)
	}
}

func TestPresentSummaryWithLatencies(t *testing.T) {
	withPlainTheme(t)

	summary := orchestration.Summary{
		Payload: "x",
		Workers: 1,
		Ops:     200,
		Elapsed: time.Second,
		Speed:   200,
		LogPath: "stats.log",
		Latency: repeat.LatencySummary{
			Count: 200,
			Mean:  1500 * time.Microsecond,
			P50:   time.Millisecond,
			P90:   2 * time.Millisecond,
			P99:   2 * time.Millisecond,
			P999:  2 * time.Millisecond,
			Max:   2 * time.Millisecond,
		},
	}

	var buf bytes.Buffer
	CLISummaryPresenter{}.PresentSummary(summary, &buf)

	output := buf.String()
	if !strings.Contains(output, "--- Latency Distribution ---") {
		t.Fatalf("missing latency table:\n%s", output)
	}
	for _, s := range []string{"mean", "p50", "p90", "p99", "p99.9", "max", "samples", "1ms", "2ms", "200"} {
		if !strings.Contains(output, s) {
			t.Errorf("missing %q in latency table:\n%s", s, output)
		}
	}
}
