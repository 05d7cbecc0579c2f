package repeat

import (
	"strings"
	"time"
)

// Worker duplicates the payload string in a tight loop until the shared run
// flag drops. The loop never blocks and never sleeps; the run flag check is
// the only stop condition, keeping the hot path free of channels and locks.
type Worker struct {
	id      int
	payload string
	state   *State
	rec     *LatencyRecorder

	// sink keeps each duplicated string reachable so the copy in the hot
	// loop cannot be elided.
	sink string
}

// NewWorker returns a worker bound to the shared state.
//
// Parameters:
//   - id: The worker's index, used in logs and panic reports.
//   - payload: The string to duplicate on every operation.
//   - state: The shared run state.
//
// Returns:
//   - *Worker: The configured worker.
func NewWorker(id int, payload string, state *State) *Worker {
	return &Worker{id: id, payload: payload, state: state}
}

// NewRecordedWorker returns a worker that additionally records every
// operation's latency into its own private recorder.
func NewRecordedWorker(id int, payload string, state *State, rec *LatencyRecorder) *Worker {
	return &Worker{id: id, payload: payload, state: state, rec: rec}
}

// ID returns the worker's index.
func (w *Worker) ID() int {
	return w.id
}

// Run executes the hot loop until the run flag drops. Each iteration performs
// exactly one payload duplication followed by one counter increment, so the
// global counter equals the number of completed duplications.
func (w *Worker) Run() {
	if w.rec != nil {
		w.runRecorded()
		return
	}
	for w.state.Running() {
		w.sink = strings.Clone(w.payload)
		w.state.Record()
	}
}

// runRecorded is the latency-recording variant of the hot loop. Timing adds
// two clock reads per iteration, so it is a separate loop rather than a
// branch inside the common path.
func (w *Worker) runRecorded() {
	for w.state.Running() {
		begin := time.Now()
		w.sink = strings.Clone(w.payload)
		w.state.Record()
		w.rec.Record(time.Since(begin))
	}
}
