package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/repbench/internal/config"
	"github.com/agbru/repbench/internal/format"
	"github.com/agbru/repbench/internal/orchestration"
	"github.com/agbru/repbench/internal/repeat"
	"github.com/agbru/repbench/internal/report"
)

// entryKind selects the style of a run log entry.
type entryKind int

const (
	entryInfo entryKind = iota
	entryStats
	entrySuccess
	entryError
)

// logEntry is one line in the run log.
type logEntry struct {
	at   time.Time
	text string
	kind entryKind
}

// LogsModel is the scrolling run log panel. It shows the run configuration,
// one statistics record per reporting interval and the final summary.
type LogsModel struct {
	entries []logEntry
	// offset counts lines scrolled back from the tail; 0 follows new entries.
	offset int
	keymap KeyMap
	width  int
	height int
}

// NewLogsModel creates an empty run log.
func NewLogsModel() LogsModel {
	return LogsModel{keymap: DefaultKeyMap()}
}

// SetSize updates dimensions.
func (l *LogsModel) SetSize(w, h int) {
	l.width = w
	l.height = h
}

// AddRunConfig records the effective run configuration as the opening
// entries.
func (l *LogsModel) AddRunConfig(cfg config.AppConfig, payload string) {
	l.add(entryInfo, fmt.Sprintf("Repeating %q on %d workers", payload, cfg.Workers))
	l.add(entryInfo, fmt.Sprintf("Reporting every %s to %s", cfg.Interval, cfg.LogFile))
	if cfg.Duration > 0 {
		l.add(entryInfo, fmt.Sprintf("Duration limit %s", cfg.Duration))
	}
	if cfg.Latencies {
		l.add(entryInfo, "Latency recording enabled")
	}
}

// AddStats records one reporter snapshot.
func (l *LogsModel) AddStats(stats repeat.Stats) {
	l.add(entryStats, report.FormatStatsLine(stats))
}

// AddSummary records the final figures of a completed run.
func (l *LogsModel) AddSummary(summary orchestration.Summary) {
	l.add(entrySuccess, "Benchmark finished")
	l.add(entrySuccess, fmt.Sprintf("Total: %s repetitions in %s",
		format.FormatCount(summary.Ops), format.FormatExecutionDuration(summary.Elapsed)))
	l.add(entrySuccess, fmt.Sprintf("Average speed: %.2f repetitions/s", summary.Speed))
	l.add(entrySuccess, fmt.Sprintf("Log file: %s", summary.LogPath))
}

// AddError records a failed run.
func (l *LogsModel) AddError(err error) {
	l.add(entryError, fmt.Sprintf("Run failed: %v", err))
}

func (l *LogsModel) add(kind entryKind, text string) {
	l.entries = append(l.entries, logEntry{at: time.Now(), text: text, kind: kind})
}

// Update handles scroll keys.
func (l *LogsModel) Update(msg tea.KeyMsg) {
	page := l.contentLines()
	switch {
	case key.Matches(msg, l.keymap.Up):
		l.scrollBack(1)
	case key.Matches(msg, l.keymap.Down):
		l.scrollForward(1)
	case key.Matches(msg, l.keymap.PageUp):
		l.scrollBack(page)
	case key.Matches(msg, l.keymap.PageDown):
		l.scrollForward(page)
	}
}

func (l *LogsModel) scrollBack(n int) {
	l.offset += n
	if max := l.maxOffset(); l.offset > max {
		l.offset = max
	}
}

func (l *LogsModel) scrollForward(n int) {
	l.offset -= n
	if l.offset < 0 {
		l.offset = 0
	}
}

// contentLines returns how many entries fit below the panel title.
func (l LogsModel) contentLines() int {
	n := l.height - 3
	if n < 1 {
		n = 1
	}
	return n
}

func (l LogsModel) maxOffset() int {
	m := len(l.entries) - l.contentLines()
	if m < 0 {
		return 0
	}
	return m
}

// View renders the panel at its configured height.
func (l LogsModel) View() string {
	return l.renderToHeight(l.height)
}

// renderToHeight renders the panel at exactly the given total height, so
// the left column lines up with the right column regardless of rounding.
func (l LogsModel) renderToHeight(total int) string {
	content := l.contentLines()
	if total > 2 {
		content = total - 3
		if content < 1 {
			content = 1
		}
	}

	start := len(l.entries) - content - l.offset
	if start < 0 {
		start = 0
	}
	end := start + content
	if end > len(l.entries) {
		end = len(l.entries)
	}

	lines := make([]string, 0, content+1)
	lines = append(lines, titleStyle.Render(" Run Log"))
	for _, e := range l.entries[start:end] {
		lines = append(lines, l.renderEntry(e))
	}

	return panelStyle.
		Width(l.width - 2).
		Height(total - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (l LogsModel) renderEntry(e logEntry) string {
	maxText := l.width - 13
	if maxText < 4 {
		maxText = 4
	}
	return " " + logTimeStyle.Render(e.at.Format("15:04:05")) + " " +
		l.styleFor(e.kind).Render(truncateString(e.text, maxText))
}

func (l LogsModel) styleFor(kind entryKind) lipgloss.Style {
	switch kind {
	case entryStats:
		return logProgressStyle
	case entrySuccess:
		return logSuccessStyle
	case entryError:
		return logErrorStyle
	default:
		return logInfoStyle
	}
}

// truncateString truncates a string to maxLen characters, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
