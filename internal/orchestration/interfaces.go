package orchestration

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"io"
	"time"

	"github.com/agbru/repbench/internal/repeat"
)

// Summary encapsulates the outcome of a finished benchmark run. It is the
// shared domain type between orchestration and presentation layers.
type Summary struct {
	// Payload is the string the workers duplicated.
	Payload string
	// Workers is the number of worker goroutines that ran.
	Workers int
	// Ops is the final operation count.
	Ops uint64
	// Elapsed is the total run time.
	Elapsed time.Duration
	// Speed is the average throughput, Ops divided by Elapsed, in
	// operations per second.
	Speed float64
	// Latency is the merged latency distribution. Its Count is zero when
	// latency recording was disabled.
	Latency repeat.LatencySummary
	// LogPath is the location of the statistics log file.
	LogPath string
}

// SummaryPresenter defines the interface for presenting the final summary.
// This interface decouples the orchestration layer from the presentation
// layer; the run logic does not know whether the summary lands on a plain
// console, a themed one, or nowhere because a dashboard renders it later.
type SummaryPresenter interface {
	// PresentSummary displays the outcome of a graceful run.
	//
	// Parameters:
	//   - summary: The run outcome to display.
	//   - out: The writer for the summary output.
	PresentSummary(summary Summary, out io.Writer)
}

// SummaryPresenterFunc is a function adapter that implements
// SummaryPresenter. This allows passing a function directly where a
// SummaryPresenter is expected.
type SummaryPresenterFunc func(summary Summary, out io.Writer)

// PresentSummary calls the underlying function.
func (f SummaryPresenterFunc) PresentSummary(summary Summary, out io.Writer) {
	f(summary, out)
}

// NullSummaryPresenter is a no-op implementation of SummaryPresenter, used
// when the caller renders the summary itself.
type NullSummaryPresenter struct{}

// PresentSummary does nothing.
func (NullSummaryPresenter) PresentSummary(Summary, io.Writer) {}

// Compile-time interface checks.
var (
	_ SummaryPresenter = SummaryPresenterFunc(nil)
	_ SummaryPresenter = NullSummaryPresenter{}
)
