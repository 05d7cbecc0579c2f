// Package repeat implements the core of the benchmark: the shared execution
// state and the worker hot loop.
//
// A run is a set of workers busy-looping a single operation, duplicating a
// payload string, against a shared State. The State carries the two pieces of
// cross-goroutine truth the benchmark needs: a monotonic operation counter
// and a run flag. Both are atomics, so the hot loop performs no locking and
// never blocks; stopping a run is a single idempotent store observed by every
// worker on its next iteration.
//
// The State is created by the orchestrator and passed explicitly to workers,
// reporters and signal watchers. Nothing in this package is a package-level
// variable, which keeps ownership visible at every call site.
//
// Optional per-operation latency recording uses one private histogram per
// worker, merged only after the workers have stopped, so the recording
// variant of the loop adds clock reads but no shared-state contention.
package repeat
