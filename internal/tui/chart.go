package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/repbench/internal/format"
	"github.com/agbru/repbench/internal/repeat"
)

// sparklineGutter is the number of columns reserved beside each sparkline
// for its label and current value.
const sparklineGutter = 17

// ChartModel displays the throughput history as a braille chart, plus a
// progress bar for duration-bounded runs and CPU/MEM sparklines when the
// panel is tall enough.
type ChartModel struct {
	speedHistory *RingBuffer
	cpuHistory   *RingBuffer
	memHistory   *RingBuffer

	// total is the run duration limit; 0 means the run is open-ended.
	total    time.Duration
	progress float64
	eta      time.Duration

	currentSpeed float64
	lastOps      uint64
	lastElapsed  time.Duration
	elapsed      time.Duration
	done         bool

	width  int
	height int
}

// NewChartModel creates a chart panel for a run with the given duration
// limit (0 for open-ended).
func NewChartModel(total time.Duration) ChartModel {
	return ChartModel{
		speedHistory: NewRingBuffer(120),
		cpuHistory:   NewRingBuffer(60),
		memHistory:   NewRingBuffer(60),
		total:        total,
	}
}

// SetSize updates dimensions and resizes the history buffers to match.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	histWidth := w - sparklineGutter
	if histWidth < 4 {
		histWidth = 4
	}
	c.cpuHistory.Resize(histWidth)
	c.memHistory.Resize(histWidth)
	// Braille packs two samples per character column.
	c.speedHistory.Resize(histWidth * 2)
}

// AddStats folds a reporter snapshot into the throughput history. The
// instantaneous speed is smoothed with an exponential moving average so a
// single slow tick does not make the chart jump.
func (c *ChartModel) AddStats(stats repeat.Stats) {
	dt := (stats.Elapsed - c.lastElapsed).Seconds()
	if dt > 0 {
		instant := float64(stats.Ops-c.lastOps) / dt
		if c.currentSpeed > 0 {
			c.currentSpeed = 0.7*c.currentSpeed + 0.3*instant
		} else {
			c.currentSpeed = instant
		}
		c.speedHistory.Push(c.currentSpeed)
		c.lastOps = stats.Ops
		c.lastElapsed = stats.Elapsed
	}
	c.elapsed = stats.Elapsed
	if c.total > 0 {
		p := float64(stats.Elapsed) / float64(c.total)
		if p > 1 {
			p = 1
		}
		c.progress = p
		remaining := c.total - stats.Elapsed
		if remaining < 0 {
			remaining = 0
		}
		c.eta = remaining
	}
}

// UpdateSysStats records a host CPU/memory sample.
func (c *ChartModel) UpdateSysStats(cpuPercent, memPercent float64) {
	c.cpuHistory.Push(cpuPercent)
	c.memHistory.Push(memPercent)
}

// SetDone freezes the chart at the end of a run.
func (c *ChartModel) SetDone(elapsed time.Duration) {
	c.done = true
	c.elapsed = elapsed
	if c.total > 0 {
		c.progress = 1
		c.eta = 0
	}
}

// View renders the chart panel.
func (c ChartModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Throughput Chart"))
	b.WriteString("\n")

	showSparklines := c.height >= 10
	chartRows := c.height - 5 // borders, title, two status lines
	if showSparklines {
		chartRows -= 2
	}
	if chartRows < 1 {
		chartRows = 1
	}

	innerWidth := c.width - 4
	if innerWidth < 1 {
		innerWidth = 1
	}
	values := normalizeSpeeds(c.speedHistory.Slice(), c.speedHistory.Max())
	for _, row := range RenderBrailleChart(values, innerWidth, chartRows) {
		b.WriteString(" ")
		b.WriteString(speedChartStyle.Render(row))
		b.WriteString("\n")
	}

	if c.total > 0 {
		b.WriteString(c.renderProgressBar())
		b.WriteString("\n ")
		if c.done {
			b.WriteString(metricLabelStyle.Render("Elapsed:"))
			b.WriteString(" ")
			b.WriteString(metricValueStyle.Render(format.FormatExecutionDuration(c.elapsed)))
		} else {
			b.WriteString(metricLabelStyle.Render("ETA:"))
			b.WriteString(" ")
			b.WriteString(metricValueStyle.Render(format.FormatETA(c.eta)))
		}
	} else {
		b.WriteString(" ")
		b.WriteString(metricLabelStyle.Render("Speed:"))
		b.WriteString(" ")
		b.WriteString(metricValueStyle.Render(fmt.Sprintf("%.0f ops/s", c.currentSpeed)))
		b.WriteString("\n ")
		b.WriteString(metricLabelStyle.Render("Elapsed:"))
		b.WriteString(" ")
		b.WriteString(metricValueStyle.Render(format.FormatExecutionDuration(c.elapsed)))
	}

	if showSparklines {
		b.WriteString("\n ")
		b.WriteString(metricLabelStyle.Render("CPU"))
		b.WriteString(" ")
		b.WriteString(cpuSparklineStyle.Render(RenderSparkline(c.cpuHistory.Slice())))
		b.WriteString(" ")
		b.WriteString(metricValueStyle.Render(fmt.Sprintf("%5.1f%%", c.cpuHistory.Last())))
		b.WriteString("\n ")
		b.WriteString(metricLabelStyle.Render("MEM"))
		b.WriteString(" ")
		b.WriteString(memSparklineStyle.Render(RenderSparkline(c.memHistory.Slice())))
		b.WriteString(" ")
		b.WriteString(metricValueStyle.Render(fmt.Sprintf("%5.1f%%", c.memHistory.Last())))
	}

	return panelStyle.
		Width(c.width - 2).
		Height(c.height - 2).
		Render(b.String())
}

// renderProgressBar renders the completion bar for a duration-bounded run.
// It returns "" when the panel is too narrow to fit a useful bar.
func (c ChartModel) renderProgressBar() string {
	barWidth := c.width - 14
	if barWidth < 10 {
		return ""
	}
	filled := int(c.progress * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	bar := chartBarStyle.Render(strings.Repeat("█", filled)) +
		chartEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf(" %s %s", bar,
		metricValueStyle.Render(fmt.Sprintf("%5.1f%%", c.progress*100)))
}

// normalizeSpeeds scales raw throughput samples into the 0..100 range the
// chart renderers expect, using the largest sample as the ceiling.
func normalizeSpeeds(values []float64, max float64) []float64 {
	if max <= 0 {
		return values
	}
	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = v / max * 100
	}
	return scaled
}
