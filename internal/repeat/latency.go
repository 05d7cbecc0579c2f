package repeat

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram bounds for per-operation latencies. One nanosecond to one second
// covers any plausible string duplication; slower samples are clamped to the
// upper bound rather than dropped.
const (
	histMin    = int64(1)
	histMax    = int64(time.Second)
	histSigFig = 3
)

// LatencyRecorder accumulates per-operation latencies for a single worker.
// Each worker owns a private recorder so the hot loop never contends on a
// shared histogram; recorders are merged once the workers have stopped.
type LatencyRecorder struct {
	hist *hdrhistogram.Histogram
}

// NewLatencyRecorder returns an empty recorder.
func NewLatencyRecorder() *LatencyRecorder {
	return &LatencyRecorder{hist: hdrhistogram.New(histMin, histMax, histSigFig)}
}

// Record adds one latency sample, clamping it into the histogram bounds.
func (r *LatencyRecorder) Record(d time.Duration) {
	ns := d.Nanoseconds()
	if ns < histMin {
		ns = histMin
	} else if ns > histMax {
		ns = histMax
	}
	r.hist.RecordValue(ns)
}

// Count returns the number of samples recorded so far.
func (r *LatencyRecorder) Count() int64 {
	return r.hist.TotalCount()
}

// LatencySummary aggregates the latency distribution of a finished run.
type LatencySummary struct {
	// Count is the total number of recorded samples.
	Count int64
	// Mean is the arithmetic mean latency.
	Mean time.Duration
	// P50, P90, P99 and P999 are the 50th, 90th, 99th and 99.9th
	// percentile latencies.
	P50  time.Duration
	P90  time.Duration
	P99  time.Duration
	P999 time.Duration
	// Max is the largest recorded sample.
	Max time.Duration
}

// MergeLatencies combines per-worker recorders into a single summary. Nil
// recorders are skipped, so the slice may be sparse when recording was only
// enabled for some workers.
func MergeLatencies(recorders []*LatencyRecorder) LatencySummary {
	merged := hdrhistogram.New(histMin, histMax, histSigFig)
	for _, r := range recorders {
		if r != nil {
			merged.Merge(r.hist)
		}
	}
	return LatencySummary{
		Count: merged.TotalCount(),
		Mean:  time.Duration(merged.Mean()),
		P50:   time.Duration(merged.ValueAtQuantile(50)),
		P90:   time.Duration(merged.ValueAtQuantile(90)),
		P99:   time.Duration(merged.ValueAtQuantile(99)),
		P999:  time.Duration(merged.ValueAtQuantile(99.9)),
		Max:   time.Duration(merged.Max()),
	}
}
