package orchestration_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/agbru/repbench/internal/config"
	"github.com/agbru/repbench/internal/logging"
	"github.com/agbru/repbench/internal/orchestration"
	"github.com/agbru/repbench/internal/orchestration/mocks"
	"github.com/agbru/repbench/internal/report"
)

func newSink(t *testing.T) *report.FileSink {
	t.Helper()
	sink, err := report.NewFileSink(filepath.Join(t.TempDir(), "stats.log"))
	if err != nil {
		t.Fatalf("NewFileSink() error = %v", err)
	}
	t.Cleanup(func() { sink.Close() })
	return sink
}

// TestBenchmarkRunNoDeadlock verifies the worker and reporter join completes
// even when the context is dead before the run starts.
func TestBenchmarkRunNoDeadlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	presenter := mocks.NewMockSummaryPresenter(ctrl)
	presenter.EXPECT().PresentSummary(gomock.Any(), gomock.Any()).Times(1)

	b := &orchestration.Benchmark{
		Config:    config.AppConfig{Workers: 4, Interval: 200 * time.Millisecond},
		Payload:   "x",
		Sink:      newSink(t),
		Logger:    logging.NewLogger(io.Discard, "test"),
		Presenter: presenter,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := b.Run(ctx, io.Discard); err != nil {
			t.Errorf("Run() error = %v", err)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("benchmark did not shut down; possible goroutine deadlock")
	}
}

// TestBenchmarkPresenterReceivesFinalSummary verifies the presenter is handed
// the same summary Run returns to the caller.
func TestBenchmarkPresenterReceivesFinalSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var presented orchestration.Summary
	presenter := mocks.NewMockSummaryPresenter(ctrl)
	presenter.EXPECT().
		PresentSummary(gomock.Any(), gomock.Any()).
		Do(func(s orchestration.Summary, _ io.Writer) { presented = s }).
		Times(1)

	b := &orchestration.Benchmark{
		Config:    config.AppConfig{Workers: 2, Interval: 150 * time.Millisecond},
		Payload:   "abc",
		Sink:      newSink(t),
		Logger:    logging.NewLogger(io.Discard, "test"),
		Presenter: presenter,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(250 * time.Millisecond)
		cancel()
	}()

	summary, err := b.Run(ctx, io.Discard)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if presented != summary {
		t.Errorf("presented summary %+v differs from returned summary %+v", presented, summary)
	}
	if presented.Payload != "abc" {
		t.Errorf("Payload = %q, want %q", presented.Payload, "abc")
	}
}
