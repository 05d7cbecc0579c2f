package tui

import (
	"context"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/agbru/repbench/internal/config"
	"github.com/agbru/repbench/internal/logging"
	"github.com/agbru/repbench/internal/orchestration"
	"github.com/agbru/repbench/internal/repeat"
	"github.com/agbru/repbench/internal/report"
)

func TestProgramRef_Send_NilProgram(t *testing.T) {
	ref := &programRef{} // program is nil
	// Should not panic
	ref.Send(StatsMsg{Stats: repeat.Stats{Ops: 1}})
}

func TestProgramRef_Send_Concurrent(t *testing.T) {
	ref := &programRef{} // nil program - Send is a no-op

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ref.Send(StatsMsg{Stats: repeat.Stats{Ops: uint64(i)}})
		}(i)
	}
	wg.Wait()
	// If we reach here without panic/race, the test passes
}

func TestTUIStatsObserver_NilProgram(t *testing.T) {
	obs := &TUIStatsObserver{ref: &programRef{}}
	// Should not panic
	obs.Observe(repeat.Stats{Ops: 42, Elapsed: time.Second, Speed: 42})
}

// newBridgeBenchmark builds a short-interval benchmark against a sink in a
// temp directory.
func newBridgeBenchmark(t *testing.T) *orchestration.Benchmark {
	t.Helper()
	sink, err := report.NewFileSink(filepath.Join(t.TempDir(), "stats.log"))
	if err != nil {
		t.Fatalf("NewFileSink() error = %v", err)
	}
	t.Cleanup(func() { sink.Close() })
	return &orchestration.Benchmark{
		Config:  config.AppConfig{Workers: 1, Interval: 50 * time.Millisecond},
		Payload: "payload",
		Sink:    sink,
		Logger:  logging.NewLogger(io.Discard, "test"),
	}
}

func TestStartBench_GracefulStop(t *testing.T) {
	bench := newBridgeBenchmark(t)

	ctx, cancel := context.WithCancel(context.Background())
	h := startBench(ctx, bench)

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-h.done:
	case <-time.After(2 * time.Second):
		t.Fatal("benchmark did not stop after cancellation")
	}

	if h.err != nil {
		t.Fatalf("benchmark error = %v", h.err)
	}
	if h.summary.Ops == 0 {
		t.Error("expected progress before cancellation")
	}
}

func TestWatchBenchCmd_DeliversOutcome(t *testing.T) {
	bench := newBridgeBenchmark(t)

	ctx, cancel := context.WithCancel(context.Background())
	h := startBench(ctx, bench)

	time.Sleep(100 * time.Millisecond)
	cancel()

	msg := watchBenchCmd(h)()
	done, ok := msg.(BenchDoneMsg)
	if !ok {
		t.Fatalf("expected BenchDoneMsg, got %T", msg)
	}
	if done.Err != nil {
		t.Fatalf("BenchDoneMsg.Err = %v", done.Err)
	}
	if done.Summary != h.summary {
		t.Error("expected message summary to match the handle")
	}
}
