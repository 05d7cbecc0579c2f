package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/repbench/internal/errors"
	"github.com/agbru/repbench/internal/orchestration"
	"github.com/agbru/repbench/internal/repeat"
)

// newTestModel builds a model without starting a benchmark, so Update paths
// can be exercised in isolation.
func newTestModel() Model {
	return Model{
		header:  NewHeaderModel("dev"),
		logs:    NewLogsModel(),
		metrics: NewMetricsModel(2, 5),
		chart:   NewChartModel(0),
		footer:  NewFooterModel(),
		keymap:  DefaultKeyMap(),
		ExecutionState: ExecutionState{
			exitCode: apperrors.ExitSuccess,
		},
		ref: &programRef{},
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m2 := updated.(Model)

	if m2.width != 100 || m2.height != 30 {
		t.Errorf("expected 100x30, got %dx%d", m2.width, m2.height)
	}
	if m2.logs.width != m2.logsWidth() {
		t.Errorf("expected logs width %d, got %d", m2.logsWidth(), m2.logs.width)
	}
	if m2.chart.width != m2.rightWidth() {
		t.Errorf("expected chart width %d, got %d", m2.rightWidth(), m2.chart.width)
	}
}

func TestModel_Update_StatsMsg(t *testing.T) {
	m := newTestModel()

	stats := repeat.Stats{Ops: 100, Elapsed: time.Second, Speed: 100}
	updated, _ := m.Update(StatsMsg{Stats: stats})
	m2 := updated.(Model)

	if len(m2.logs.entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(m2.logs.entries))
	}
	if m2.chart.speedHistory.Len() != 1 {
		t.Errorf("expected 1 speed sample, got %d", m2.chart.speedHistory.Len())
	}
	if m2.metrics.indicators.Ops != 100 {
		t.Errorf("expected indicators from the snapshot, got %+v", m2.metrics.indicators)
	}
}

func TestModel_Update_StatsMsg_Paused(t *testing.T) {
	m := newTestModel()
	m.paused = true

	updated, _ := m.Update(StatsMsg{Stats: repeat.Stats{Ops: 100}})
	m2 := updated.(Model)

	if len(m2.logs.entries) != 0 {
		t.Errorf("expected no log entries while paused, got %d", len(m2.logs.entries))
	}
}

func TestModel_Update_BenchDone_Success(t *testing.T) {
	m := newTestModel()

	summary := orchestration.Summary{Ops: 500, Elapsed: time.Second, Speed: 500, LogPath: "s.log"}
	updated, _ := m.Update(BenchDoneMsg{Summary: summary})
	m2 := updated.(Model)

	if !m2.done || !m2.finished {
		t.Error("expected run to be marked finished")
	}
	if m2.exitCode != apperrors.ExitSuccess {
		t.Errorf("expected exit code %d, got %d", apperrors.ExitSuccess, m2.exitCode)
	}
	if m2.summary != summary {
		t.Error("expected summary to be stored")
	}
	if !strings.Contains(joinEntryTexts(m2.logs), "Benchmark finished") {
		t.Error("expected summary entries in the run log")
	}
}

func TestModel_Update_BenchDone_Error(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(BenchDoneMsg{Err: errFake})
	m2 := updated.(Model)

	if !m2.done {
		t.Error("expected run to be marked done")
	}
	if m2.finished {
		t.Error("expected finished to stay false on error")
	}
	if m2.exitCode != apperrors.ExitErrorGeneric {
		t.Errorf("expected exit code %d, got %d", apperrors.ExitErrorGeneric, m2.exitCode)
	}
}

func TestModel_Update_ContextCancelled_DeadlineStaysUp(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(ContextCancelledMsg{Cause: context.DeadlineExceeded})
	if cmd != nil {
		t.Error("expected the dashboard to stay up on deadline expiry")
	}
}

func TestModel_Update_ContextCancelled_CanceledQuits(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(ContextCancelledMsg{Cause: context.Canceled})
	if cmd == nil {
		t.Fatal("expected a quit command on cancellation")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModel_Update_Tick(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("expected sampling commands while running")
	}

	m.done = true
	_, cmd = m.Update(TickMsg(time.Now()))
	if cmd != nil {
		t.Error("expected no further ticks once done")
	}
}

func TestModel_HandleKey_PauseToggle(t *testing.T) {
	m := newTestModel()

	pauseKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}

	updated, _ := m.Update(pauseKey)
	m2 := updated.(Model)
	if !m2.paused {
		t.Error("expected paused after first toggle")
	}

	updated, _ = m2.Update(pauseKey)
	m3 := updated.(Model)
	if m3.paused {
		t.Error("expected unpaused after second toggle")
	}
}

func TestModel_HandleKey_QuitCancelsRun(t *testing.T) {
	m := newTestModel()
	cancelled := false
	m.ExecutionState.cancel = func() { cancelled = true }

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if !cancelled {
		t.Error("expected the run context to be cancelled")
	}
	if _, ok := updated.(Model); !ok {
		t.Error("expected a Model back")
	}
}

func TestModel_View_Initializing(t *testing.T) {
	m := newTestModel()
	if got := m.View(); got != "Initializing..." {
		t.Errorf("expected placeholder before the first resize, got %q", got)
	}
}

func TestModel_View_RendersPanels(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m2 := updated.(Model)

	view := m2.View()
	for _, want := range []string{"repbench monitor", "Run Log", "Throughput Chart", "RUNNING"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
