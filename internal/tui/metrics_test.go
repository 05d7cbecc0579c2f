package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/agbru/repbench/internal/metrics"
	"github.com/agbru/repbench/internal/repeat"
)

func TestMetricsModel_UpdateMemStats(t *testing.T) {
	m := NewMetricsModel(4, 11)

	msg := MemStatsMsg{
		Snapshot: metrics.MemorySnapshot{
			HeapAlloc:    1024 * 1024 * 50,
			HeapSys:      1024 * 1024 * 80,
			NumGC:        10,
			PauseTotalNs: 2_000_000,
		},
		NumGoroutine: 8,
	}
	m.UpdateMemStats(msg)

	if m.snapshot != msg.Snapshot {
		t.Errorf("expected snapshot %+v, got %+v", msg.Snapshot, m.snapshot)
	}
	if m.numGoroutine != 8 {
		t.Errorf("expected numGoroutine 8, got %d", m.numGoroutine)
	}
}

func TestMetricsModel_UpdateStats(t *testing.T) {
	m := NewMetricsModel(4, 11)

	m.UpdateStats(repeat.Stats{Ops: 5000, Elapsed: 2 * time.Second, Speed: 2500})

	if m.indicators.Ops != 5000 {
		t.Errorf("expected Ops 5000, got %d", m.indicators.Ops)
	}
	if m.indicators.Speed != 2500 {
		t.Errorf("expected Speed 2500, got %f", m.indicators.Speed)
	}
	if m.indicators.OpsPerWorker != 625 {
		t.Errorf("expected OpsPerWorker 625, got %f", m.indicators.OpsPerWorker)
	}
	if m.indicators.BytesPerSecond != 2500*11 {
		t.Errorf("expected BytesPerSecond %f, got %f", float64(2500*11), m.indicators.BytesPerSecond)
	}
}

func TestMetricsModel_View(t *testing.T) {
	m := NewMetricsModel(4, 11)
	m.SetSize(60, 9)

	m.UpdateMemStats(MemStatsMsg{
		Snapshot: metrics.MemorySnapshot{
			HeapAlloc: 1024 * 1024 * 50,
			HeapSys:   1024 * 1024 * 80,
			NumGC:     10,
		},
		NumGoroutine: 8,
	})
	m.UpdateStats(repeat.Stats{Ops: 5000, Elapsed: 2 * time.Second, Speed: 2500})

	view := m.View()
	for _, want := range []string{
		"Heap:", "GC:",
		"Repetitions:", "Speed:", "Data rate:",
		"Goroutines:", "Per worker:", "Payload:",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
	if !strings.Contains(view, "5,000") {
		t.Error("expected view to contain the grouped repetition count")
	}
}

func TestMetricsModel_SetSize(t *testing.T) {
	m := NewMetricsModel(1, 1)
	m.SetSize(50, 20)

	if m.width != 50 {
		t.Errorf("expected width 50, got %d", m.width)
	}
	if m.height != 20 {
		t.Errorf("expected height 20, got %d", m.height)
	}
}

func TestFormatMetricCol(t *testing.T) {
	col := formatMetricCol("Speed:", "2500 ops/s", 30)
	if !strings.Contains(col, "Speed") {
		t.Error("expected column to contain label")
	}
	if !strings.Contains(col, "2500 ops/s") {
		t.Error("expected column to contain value")
	}
}
