package report

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/repbench/internal/logging"
	"github.com/agbru/repbench/internal/repeat"
)

// PollInterval is how often the reporter checks the run flag and the report
// clock. Polling an order of magnitude faster than the smallest reporting
// interval keeps shutdown latency low without the reporter itself showing up
// in the profile.
const PollInterval = 100 * time.Millisecond

// Reporter periodically snapshots the shared run state, notifies its
// observer, persists the record through the sink and echoes it to the
// console. It runs on its own goroutine and returns when the run flag drops.
type Reporter struct {
	state    *repeat.State
	sink     *FileSink
	observer StatsObserver
	interval time.Duration
	out      io.Writer
	logger   logging.Logger
}

// ReporterOption configures a Reporter during construction.
type ReporterOption func(*Reporter)

// WithObserver sets the observer notified on every report tick.
func WithObserver(o StatsObserver) ReporterOption {
	return func(r *Reporter) { r.observer = o }
}

// NewReporter builds a reporter for one run.
//
// Parameters:
//   - state: The shared run state to snapshot.
//   - sink: The log sink receiving each record.
//   - interval: The reporting interval.
//   - out: The console destination for records and lifecycle notices.
//   - logger: The logger for non-fatal sink failures.
//   - opts: Optional configuration.
//
// Returns:
//   - *Reporter: The configured reporter.
func NewReporter(state *repeat.State, sink *FileSink, interval time.Duration, out io.Writer, logger logging.Logger, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		state:    state,
		sink:     sink,
		observer: NullStatsObserver{},
		interval: interval,
		out:      out,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the reporting loop until the run flag drops. The loop wakes
// every PollInterval and reports once the configured interval has elapsed
// since the previous report, so a stop request is honored within one poll
// tick rather than one reporting interval.
func (r *Reporter) Run() {
	fmt.Fprintf(r.out, "Reporter started. Updating %s every %s.\n", r.sink.Path(), r.interval)

	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	lastReport := time.Now()
	for r.state.Running() {
		<-ticker.C
		if time.Since(lastReport) < r.interval {
			continue
		}
		lastReport = time.Now()
		r.report()
	}

	fmt.Fprintln(r.out, "Reporter stopping.")
}

// report performs one reporting tick. A sink failure is logged and the
// console echo skipped; the next tick tries again.
func (r *Reporter) report() {
	stats := r.state.Snapshot()
	r.observer.Observe(stats)

	record := FormatStatsLine(stats)
	if err := r.sink.WriteRecord(record); err != nil {
		r.logger.Error("stats write failed, skipping report tick", err)
		return
	}
	fmt.Fprintln(r.out, record)
}
