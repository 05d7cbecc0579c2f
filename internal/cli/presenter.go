package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/agbru/repbench/internal/format"
	"github.com/agbru/repbench/internal/metrics"
	"github.com/agbru/repbench/internal/orchestration"
	"github.com/agbru/repbench/internal/repeat"
	"github.com/agbru/repbench/internal/ui"
)

// CLISummaryPresenter implements orchestration.SummaryPresenter for console
// output. It renders the final figures with the active theme and, when
// latency recording ran, the percentile table.
type CLISummaryPresenter struct {
	// Verbose adds derived throughput indicators to the summary.
	Verbose bool
}

// Verify that CLISummaryPresenter implements orchestration.SummaryPresenter.
var _ orchestration.SummaryPresenter = CLISummaryPresenter{}

// PresentSummary displays the outcome of a finished run.
func (p CLISummaryPresenter) PresentSummary(summary orchestration.Summary, out io.Writer) {
	fmt.Fprintf(out, "\n%s--- Benchmark Finished ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Total repetitions processed: %s%s%s\n",
		ui.ColorGreen(), FormatCount(summary.Ops), ui.ColorReset())
	fmt.Fprintf(out, "Total time elapsed: %s%s%s\n",
		ui.ColorYellow(), FormatExecutionDuration(summary.Elapsed), ui.ColorReset())
	fmt.Fprintf(out, "Average speed: %s%.2f repetitions/s%s\n",
		ui.ColorYellow(), summary.Speed, ui.ColorReset())
	fmt.Fprintf(out, "Log file saved to: %s%s%s\n",
		ui.ColorCyan(), summary.LogPath, ui.ColorReset())

	if p.Verbose {
		presentIndicators(summary, out)
	}
	if summary.Latency.Count > 0 {
		PresentLatencyTable(summary.Latency, out)
	}
}

// presentIndicators renders throughput figures derived from the summary.
func presentIndicators(summary orchestration.Summary, out io.Writer) {
	ind := metrics.ComputeIndicators(repeat.Stats{
		Ops:     summary.Ops,
		Elapsed: summary.Elapsed,
		Speed:   summary.Speed,
	}, summary.Workers, len(summary.Payload))
	fmt.Fprintf(out, "Per-worker speed: %s%.2f repetitions/s%s\n",
		ui.ColorYellow(), ind.OpsPerWorker, ui.ColorReset())
	fmt.Fprintf(out, "Data duplicated: %s%s%s (%s)\n",
		ui.ColorGreen(), format.FormatBytes(ind.BytesProcessed), ui.ColorReset(),
		metrics.FormatBytesPerSecond(ind.BytesPerSecond))
}

// PresentLatencyTable renders the merged per-operation latency distribution
// as a single row of percentiles.
//
// Parameters:
//   - lat: The merged distribution.
//   - out: The writer for the table.
func PresentLatencyTable(lat repeat.LatencySummary, out io.Writer) {
	fmt.Fprintf(out, "\n--- Latency Distribution ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %smean%s\t%sp50%s\t%sp90%s\t%sp99%s\t%sp99.9%s\t%smax%s\t│ %ssamples%s\n",
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s%s%s\t%s\t%s\t%s\t%s\t%s%s%s\t│ %s\n",
		ui.ColorYellow(), FormatExecutionDuration(lat.Mean), ui.ColorReset(),
		FormatExecutionDuration(lat.P50),
		FormatExecutionDuration(lat.P90),
		FormatExecutionDuration(lat.P99),
		FormatExecutionDuration(lat.P999),
		ui.ColorRed(), FormatExecutionDuration(lat.Max), ui.ColorReset(),
		FormatCount(uint64(lat.Count)))
	tw.Flush()
}
