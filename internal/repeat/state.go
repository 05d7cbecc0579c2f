package repeat

import (
	"sync/atomic"
	"time"
)

// State is the shared execution state of a single benchmark run: the global
// operation counter and the run flag observed by every worker. One State is
// created per run and handed explicitly to workers, the reporter and the
// shutdown paths.
type State struct {
	ops   atomic.Uint64
	run   atomic.Bool
	start time.Time
}

// NewState returns a State with the run flag raised and the start instant set
// to now.
func NewState() *State {
	s := &State{start: time.Now()}
	s.run.Store(true)
	return s
}

// Record adds one completed operation to the global counter.
func (s *State) Record() {
	s.ops.Add(1)
}

// Ops returns the number of operations completed so far. The counter only
// ever grows; successive reads are monotonically non-decreasing.
func (s *State) Ops() uint64 {
	return s.ops.Load()
}

// Running reports whether workers should keep processing.
func (s *State) Running() bool {
	return s.run.Load()
}

// Stop lowers the run flag. Stop is idempotent, so the signal watcher, the
// duration limit and the dashboard quit path may all call it without
// coordination.
func (s *State) Stop() {
	s.run.Store(false)
}

// Start returns the instant the run began.
func (s *State) Start() time.Time {
	return s.start
}

// Elapsed returns the time since the run began.
func (s *State) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Stats is a point-in-time view of a run, consumed by reporters, presenters
// and the metrics endpoint.
type Stats struct {
	// Ops is the operation count at the time of the snapshot.
	Ops uint64
	// Elapsed is the time since the run began.
	Elapsed time.Duration
	// Speed is the average throughput over the whole run, in operations
	// per second. Thus Speed always equals Ops divided by Elapsed, not an
	// instantaneous rate.
	Speed float64
}

// Snapshot captures the counter and the elapsed time in one view. The two
// reads are not a single atomic operation; the counter may advance between
// them, which for a statistics display is acceptable.
func (s *State) Snapshot() Stats {
	ops := s.ops.Load()
	elapsed := time.Since(s.start)
	var speed float64
	if secs := elapsed.Seconds(); secs > 0 {
		speed = float64(ops) / secs
	}
	return Stats{Ops: ops, Elapsed: elapsed, Speed: speed}
}
