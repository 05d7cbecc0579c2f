package orchestration

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/repbench/internal/config"
	apperrors "github.com/agbru/repbench/internal/errors"
	"github.com/agbru/repbench/internal/logging"
	"github.com/agbru/repbench/internal/repeat"
	"github.com/agbru/repbench/internal/report"
)

// tracerName identifies this package's spans; by convention it is the import
// path.
const tracerName = "github.com/agbru/repbench/internal/orchestration"

// runWorker executes one worker's hot loop. It is a variable so tests can
// inject failing workers.
var runWorker = func(w *repeat.Worker) { w.Run() }

// Benchmark bundles everything one run needs. The zero value is not usable;
// Config, Payload, Sink and Logger must be set. Observer and Presenter are
// optional and default to their null implementations.
type Benchmark struct {
	// Config supplies the worker count, the reporting interval and the
	// latency recording switch.
	Config config.AppConfig
	// Payload is the non-empty string the workers will duplicate.
	Payload string
	// Sink receives the periodic statistics records.
	Sink *report.FileSink
	// Logger records non-fatal incidents.
	Logger logging.Logger
	// Observer, when set, receives every reported snapshot.
	Observer report.StatsObserver
	// Presenter, when set, renders the final summary of a graceful run.
	Presenter SummaryPresenter
}

// Run executes the benchmark until the context is done, then joins every
// goroutine and returns the final summary.
//
// The context is the only way a run ends: cancellation (interrupt) and
// deadline expiry (-duration) both lower the shared run flag, which the
// workers and the reporter poll. A panic in a worker or in the reporter is
// converted into a PanicError, stops the run, and is returned after the
// join; the summary is still populated so callers can report partial
// progress.
//
// Parameters:
//   - ctx: The run context; cancellation triggers graceful shutdown.
//   - out: The writer for shutdown notices and the summary.
//
// Returns:
//   - Summary: The aggregated outcome of the run.
//   - error: A PanicError if any goroutine panicked, nil otherwise.
func (b *Benchmark) Run(ctx context.Context, out io.Writer) (Summary, error) {
	observer := b.Observer
	if observer == nil {
		observer = report.NullStatsObserver{}
	}
	presenter := b.Presenter
	if presenter == nil {
		presenter = NullSummaryPresenter{}
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "benchmark.run")
	defer span.End()
	span.SetAttributes(
		attribute.Int("workers", b.Config.Workers),
		attribute.Int("payload.bytes", len(b.Payload)),
	)

	state := repeat.NewState()
	g, ctx := errgroup.WithContext(ctx)

	// The watcher converts context termination into the stop flag exactly
	// once. watcherDone releases it when the run ends through the panic
	// path instead.
	watcherDone := make(chan struct{})
	defer close(watcherDone)
	go func() {
		select {
		case <-ctx.Done():
			if context.Cause(ctx) == context.Canceled {
				fmt.Fprintln(out, "\nInterrupt received. Shutting down gracefully...")
			}
			state.Stop()
		case <-watcherDone:
		}
	}()

	reporter := report.NewReporter(state, b.Sink, b.Config.Interval, out, b.Logger,
		report.WithObserver(observer))
	var reportWg sync.WaitGroup
	var reporterErr error
	reportWg.Add(1)
	go func() {
		defer reportWg.Done()
		defer func() {
			if r := recover(); r != nil {
				reporterErr = apperrors.PanicError{Origin: "reporter", Value: r}
				state.Stop()
			}
		}()
		reporter.Run()
	}()

	workers, recorders := b.buildWorkers(state)
	for _, w := range workers {
		worker := w
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = apperrors.PanicError{
						Origin: fmt.Sprintf("worker %d", worker.ID()),
						Value:  r,
					}
					state.Stop()
				}
			}()
			runWorker(worker)
			return nil
		})
	}

	err := g.Wait()
	reportWg.Wait()
	if err == nil {
		err = reporterErr
	}

	summary := b.summarize(state, recorders)
	span.SetAttributes(attribute.Int64("ops", int64(summary.Ops)))

	if err != nil {
		return summary, err
	}
	presenter.PresentSummary(summary, out)
	return summary, nil
}

// buildWorkers constructs one worker per configured slot, with a private
// latency recorder each when recording is enabled.
func (b *Benchmark) buildWorkers(state *repeat.State) ([]*repeat.Worker, []*repeat.LatencyRecorder) {
	workers := make([]*repeat.Worker, b.Config.Workers)
	var recorders []*repeat.LatencyRecorder
	if b.Config.Latencies {
		recorders = make([]*repeat.LatencyRecorder, b.Config.Workers)
	}
	for i := range workers {
		if b.Config.Latencies {
			recorders[i] = repeat.NewLatencyRecorder()
			workers[i] = repeat.NewRecordedWorker(i, b.Payload, state, recorders[i])
		} else {
			workers[i] = repeat.NewWorker(i, b.Payload, state)
		}
	}
	return workers, recorders
}

// summarize captures the final snapshot and merges latency recorders.
func (b *Benchmark) summarize(state *repeat.State, recorders []*repeat.LatencyRecorder) Summary {
	snap := state.Snapshot()
	summary := Summary{
		Payload: b.Payload,
		Workers: b.Config.Workers,
		Ops:     snap.Ops,
		Elapsed: snap.Elapsed,
		Speed:   snap.Speed,
		LogPath: b.Sink.Path(),
	}
	if len(recorders) > 0 {
		summary.Latency = repeat.MergeLatencies(recorders)
	}
	return summary
}
