// Package orchestration coordinates a benchmark run: it spawns the worker
// goroutines and the reporter, converts context cancellation into the shared
// stop flag, and aggregates the final summary. Presentation is decoupled via
// the SummaryPresenter interface.
package orchestration
