package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/repbench/internal/format"
	"github.com/agbru/repbench/internal/metrics"
	"github.com/agbru/repbench/internal/repeat"
)

// MetricsModel displays runtime memory and throughput metrics.
type MetricsModel struct {
	snapshot     metrics.MemorySnapshot
	numGoroutine int
	indicators   metrics.Indicators
	workers      int
	payloadLen   int
	width        int
	height       int
}

// NewMetricsModel creates a new metrics panel.
func NewMetricsModel(workers, payloadLen int) MetricsModel {
	return MetricsModel{
		workers:    workers,
		payloadLen: payloadLen,
	}
}

// SetSize updates dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// UpdateMemStats updates memory statistics.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.snapshot = msg.Snapshot
	m.numGoroutine = msg.NumGoroutine
}

// UpdateStats derives throughput indicators from a reporter snapshot.
func (m *MetricsModel) UpdateStats(stats repeat.Stats) {
	m.indicators = metrics.ComputeIndicators(stats, m.workers, m.payloadLen)
}

// View renders the metrics panel.
func (m MetricsModel) View() string {
	var rows strings.Builder

	// Compact top line: Heap: X / Y | GC: N (Xms)
	heapStr := metricValueStyle.Render(
		format.FormatBytes(m.snapshot.HeapAlloc) + " / " + format.FormatBytes(m.snapshot.HeapSys))
	gcPauseStr := metricValueStyle.Render(
		fmt.Sprintf("%d (%.1fms)", m.snapshot.NumGC, float64(m.snapshot.PauseTotalNs)/1e6))
	pipe := metricLabelStyle.Render(" | ")
	topLine := fmt.Sprintf("  %s %s%s%s %s",
		metricLabelStyle.Render("Heap:"), heapStr,
		pipe,
		metricLabelStyle.Render("GC:"), gcPauseStr)
	rows.WriteString(topLine)

	colWidth := (m.width - 6) / 2

	leftCol := []string{
		formatMetricCol("Repetitions:", format.FormatCount(m.indicators.Ops), colWidth),
		formatMetricCol("Speed:", fmt.Sprintf("%.0f ops/s", m.indicators.Speed), colWidth),
		formatMetricCol("Data rate:", metrics.FormatBytesPerSecond(m.indicators.BytesPerSecond), colWidth),
	}
	rightCol := []string{
		formatMetricCol("Goroutines:", fmt.Sprintf("%d", m.numGoroutine), colWidth),
		formatMetricCol("Per worker:", fmt.Sprintf("%.0f ops/s", m.indicators.OpsPerWorker), colWidth),
		formatMetricCol("Payload:", format.FormatBytes(uint64(m.payloadLen)), colWidth),
	}

	for i := range leftCol {
		rows.WriteString("\n")
		rows.WriteString(leftCol[i])
		rows.WriteString(rightCol[i])
	}

	return panelStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(rows.String())
}

func formatMetricCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", label)),
		metricValueStyle.Render(value))
	// Pad to fixed column width using lipgloss-aware width
	visible := lipgloss.Width(cell)
	if visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}
