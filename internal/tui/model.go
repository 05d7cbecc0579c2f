package tui

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/repbench/internal/config"
	apperrors "github.com/agbru/repbench/internal/errors"
	"github.com/agbru/repbench/internal/metrics"
	"github.com/agbru/repbench/internal/orchestration"
	"github.com/agbru/repbench/internal/repeat"
	"github.com/agbru/repbench/internal/report"
	"github.com/agbru/repbench/internal/sysmon"
)

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx      context.Context
	cancel   context.CancelFunc
	handle   *benchHandle
	done     bool
	finished bool
	exitCode int
	summary  orchestration.Summary
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// bodyHeight returns the available height for the main body panels.
func (l LayoutManager) bodyHeight() int {
	h := l.height - headerHeight - footerHeight
	if h < minBodyHeight {
		h = minBodyHeight
	}
	return h
}

// logsWidth returns the width allocated to the logs panel.
func (l LayoutManager) logsWidth() int {
	return l.width * LogsPanelWidthPercent / 100
}

// rightWidth returns the width allocated to the right column (metrics + chart).
func (l LayoutManager) rightWidth() int {
	return l.width - l.logsWidth()
}

// metricsHeight returns the height allocated to the metrics panel.
func (l LayoutManager) metricsHeight() int {
	body := l.bodyHeight()
	h := MetricsPanelHeight
	if h > body/2 {
		h = body / 2
	}
	return h
}

// chartHeight returns the height allocated to the chart panel.
func (l LayoutManager) chartHeight() int {
	return l.bodyHeight() - l.metricsHeight()
}

// Model is the root bubbletea model for the TUI dashboard.
type Model struct {
	header  HeaderModel
	logs    LogsModel
	metrics MetricsModel
	chart   ChartModel
	footer  FooterModel

	keymap KeyMap

	ExecutionState
	LayoutManager

	parentCtx context.Context
	config    config.AppConfig
	ref       *programRef
	paused    bool
}

// NewModel creates a new TUI model and starts the benchmark. The model
// takes over the benchmark's observer slot (composing with any observer
// already installed) and silences its presenter; the dashboard renders the
// snapshots and the summary itself.
func NewModel(parentCtx context.Context, bench *orchestration.Benchmark, cfg config.AppConfig, version string) Model {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if cfg.Duration > 0 {
		ctx, cancel = context.WithTimeout(parentCtx, cfg.Duration)
	} else {
		ctx, cancel = context.WithCancel(parentCtx)
	}

	ref := &programRef{}
	tuiObserver := &TUIStatsObserver{ref: ref}
	if bench.Observer != nil {
		bench.Observer = report.MultiStatsObserver(bench.Observer, tuiObserver)
	} else {
		bench.Observer = tuiObserver
	}
	bench.Presenter = orchestration.NullSummaryPresenter{}

	logs := NewLogsModel()
	logs.AddRunConfig(cfg, bench.Payload)

	return Model{
		header:  NewHeaderModel(version),
		logs:    logs,
		metrics: NewMetricsModel(cfg.Workers, len(bench.Payload)),
		chart:   NewChartModel(cfg.Duration),
		footer:  NewFooterModel(),
		keymap:  DefaultKeyMap(),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			handle:   startBench(ctx, bench),
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		config:    cfg,
		ref:       ref,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		watchBenchCmd(m.handle),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case StatsMsg:
		if !m.paused {
			m.logs.AddStats(msg.Stats)
			m.chart.AddStats(msg.Stats)
			m.metrics.UpdateStats(msg.Stats)
		}
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())
		}
		return m, tickCmd()

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.chart.UpdateSysStats(msg.CPUPercent, msg.MemPercent)
		return m, nil

	case BenchDoneMsg:
		m.done = true
		m.header.SetDone()
		m.footer.SetDone(true)
		if msg.Err != nil {
			m.logs.AddError(msg.Err)
			m.footer.SetError(true)
			m.exitCode = apperrors.ExitCodeForError(msg.Err)
			return m, nil
		}
		m.finished = true
		m.summary = msg.Summary
		m.logs.AddSummary(msg.Summary)
		m.chart.SetDone(msg.Summary.Elapsed)
		m.metrics.UpdateStats(repeat.Stats{
			Ops:     msg.Summary.Ops,
			Elapsed: msg.Summary.Elapsed,
			Speed:   msg.Summary.Speed,
		})
		return m, nil

	case ContextCancelledMsg:
		if m.done {
			return m, nil
		}
		if errors.Is(msg.Cause, context.DeadlineExceeded) {
			// Duration limit reached; the run is winding down and will
			// deliver its summary in a BenchDoneMsg shortly.
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		m.footer.SetPaused(m.paused)
		return m, nil

	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down),
		key.Matches(msg, m.keymap.PageUp), key.Matches(msg, m.keymap.PageDown):
		m.logs.Update(msg)
		return m, nil
	}

	return m, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.header.View()
	footer := m.footer.View()

	metricsPanel := m.metrics.View()
	chart := m.chart.View()

	// Right column: metrics on top, chart on bottom
	rightCol := lipgloss.JoinVertical(lipgloss.Left, metricsPanel, chart)

	// Render logs panel to match the right column's actual height
	logs := m.logs.renderToHeight(lipgloss.Height(rightCol))

	// Main body: logs on left, right column on right
	body := lipgloss.JoinHorizontal(lipgloss.Top, logs, rightCol)

	// Full layout: header + body + footer
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Layout constants for the TUI dashboard.
const (
	headerHeight          = 1
	footerHeight          = 1
	minBodyHeight         = 4
	LogsPanelWidthPercent = 60
	MetricsPanelHeight    = 7
)

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.logs.SetSize(m.logsWidth(), m.bodyHeight())
	m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
	m.chart.SetSize(m.rightWidth(), m.chartHeight())
}

// Run is the public entry point for the TUI mode. It runs the dashboard
// until the user quits or the run context ends, then waits for the
// benchmark goroutine so the sink is quiescent before the caller closes it.
//
// Returns the final summary, the process exit code, and the benchmark or
// terminal failure, if any. The summary is valid whenever the error is nil,
// even when the user quit before the run's own end.
func Run(ctx context.Context, bench *orchestration.Benchmark, cfg config.AppConfig, version string) (orchestration.Summary, int, error) {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, bench, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, uiErr := p.Run()

	// Stop the benchmark if it is still running and wait for it.
	model.cancel()
	<-model.handle.done

	if uiErr != nil {
		return orchestration.Summary{}, apperrors.ExitErrorGeneric, uiErr
	}
	if model.handle.err != nil {
		return model.handle.summary, apperrors.ExitCodeForError(model.handle.err), model.handle.err
	}

	exitCode := apperrors.ExitSuccess
	if m, ok := finalModel.(Model); ok {
		exitCode = m.exitCode
	}
	return model.handle.summary, exitCode, nil
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return MemStatsMsg{
			Snapshot:     metrics.NewMemoryCollector().Snapshot(),
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

// sampleSysStatsCmd reads system-wide CPU and memory stats and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
			Load1:      s.Load1,
		}
	}
}

// watchContextCmd waits for run context termination and reports its cause.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Cause: context.Cause(ctx)}
	}
}
