package report

import "github.com/agbru/repbench/internal/repeat"

// StatsObserver receives every statistics snapshot as it is reported. The
// reporter notifies the observer before touching the sink, so observers see
// each tick even when the log write fails.
type StatsObserver interface {
	// Observe is called once per reporting interval with the snapshot
	// being reported. It runs on the reporter goroutine and must not
	// block.
	Observe(stats repeat.Stats)
}

// StatsObserverFunc adapts a function to the StatsObserver interface.
type StatsObserverFunc func(stats repeat.Stats)

// Observe calls the function itself.
func (f StatsObserverFunc) Observe(stats repeat.Stats) {
	f(stats)
}

// NullStatsObserver is a no-op observer used when no consumer is interested
// in intermediate snapshots.
type NullStatsObserver struct{}

// Observe does nothing.
func (NullStatsObserver) Observe(repeat.Stats) {}

// MultiStatsObserver fans each snapshot out to all given observers in order.
// It lets a progress indicator and the stats server watch the same run.
func MultiStatsObserver(observers ...StatsObserver) StatsObserver {
	return StatsObserverFunc(func(stats repeat.Stats) {
		for _, o := range observers {
			o.Observe(stats)
		}
	})
}

// Compile-time interface checks.
var (
	_ StatsObserver = StatsObserverFunc(nil)
	_ StatsObserver = NullStatsObserver{}
)
