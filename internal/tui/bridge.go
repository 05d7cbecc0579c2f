package tui

import (
	"context"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/repbench/internal/orchestration"
	"github.com/agbru/repbench/internal/repeat"
	"github.com/agbru/repbench/internal/report"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIStatsObserver implements report.StatsObserver.
// It forwards each reporter snapshot to the dashboard as a bubbletea message.
type TUIStatsObserver struct {
	ref *programRef
}

// Verify interface compliance.
var _ report.StatsObserver = (*TUIStatsObserver)(nil)

// Observe sends one snapshot to the TUI.
func (t *TUIStatsObserver) Observe(stats repeat.Stats) {
	t.ref.Send(StatsMsg{Stats: stats})
}

// benchHandle tracks a benchmark running in its own goroutine.
type benchHandle struct {
	done    chan struct{}
	summary orchestration.Summary
	err     error
}

// startBench launches the benchmark and returns a handle the dashboard
// waits on. The reporter's console stream goes to io.Discard; the dashboard
// renders the snapshots itself via the stats observer.
func startBench(ctx context.Context, bench *orchestration.Benchmark) *benchHandle {
	h := &benchHandle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		h.summary, h.err = bench.Run(ctx, io.Discard)
	}()
	return h
}

// watchBenchCmd waits for the benchmark goroutine and delivers its outcome.
func watchBenchCmd(h *benchHandle) tea.Cmd {
	return func() tea.Msg {
		<-h.done
		return BenchDoneMsg{Summary: h.summary, Err: h.err}
	}
}
