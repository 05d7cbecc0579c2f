//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/repbench/internal/format"
	"github.com/agbru/repbench/internal/repeat"
	"github.com/agbru/repbench/internal/report"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	// Optimized to 200ms to reduce updates and improve performance.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the progress display from a specific
// spinner implementation, facilitating easier testing and maintenance.
// It defines the essential controls for a spinner: starting, stopping, and
// updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface. This adapter allows the `spinner` library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
//
// Parameters:
//   - suffix: The string to display.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// SpinnerProgress drives a terminal spinner from reporter snapshots. It backs
// quiet mode, where the per-interval statistics lines are suppressed and the
// spinner suffix carries the live figures instead.
type SpinnerProgress struct {
	sp    Spinner
	total time.Duration
}

// Verify that SpinnerProgress implements report.StatsObserver.
var _ report.StatsObserver = (*SpinnerProgress)(nil)

// NewSpinnerProgress creates a spinner-backed statistics observer.
//
// Parameters:
//   - out: The writer the spinner animates on (normally stderr, keeping
//     stdout clean for scripted consumers).
//   - total: The planned run duration; zero means open-ended.
//
// Returns:
//   - *SpinnerProgress: The observer, not yet started.
func NewSpinnerProgress(out io.Writer, total time.Duration) *SpinnerProgress {
	return &SpinnerProgress{
		sp:    newSpinner(spinner.WithWriter(out)),
		total: total,
	}
}

// Start begins the spinner animation.
func (p *SpinnerProgress) Start() {
	p.sp.Start()
}

// Stop halts the spinner animation.
func (p *SpinnerProgress) Stop() {
	p.sp.Stop()
}

// Observe updates the spinner suffix with the latest snapshot. Open-ended
// runs show the running count and speed; bounded runs show a progress bar
// with the remaining time.
func (p *SpinnerProgress) Observe(stats repeat.Stats) {
	if p.total > 0 {
		progress := float64(stats.Elapsed) / float64(p.total)
		eta := p.total - stats.Elapsed
		p.sp.UpdateSuffix(fmt.Sprintf(" %s | %s repetitions",
			format.FormatProgressBarWithETA(progress, eta, ProgressBarWidth),
			FormatCount(stats.Ops)))
		return
	}
	p.sp.UpdateSuffix(fmt.Sprintf(" %s repetitions (%.2f/s)",
		FormatCount(stats.Ops), stats.Speed))
}
