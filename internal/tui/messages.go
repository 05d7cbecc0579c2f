package tui

import (
	"time"

	"github.com/agbru/repbench/internal/metrics"
	"github.com/agbru/repbench/internal/orchestration"
	"github.com/agbru/repbench/internal/repeat"
)

// StatsMsg carries one reporter snapshot into the dashboard. It is sent by
// the TUIStatsObserver once per reporting interval.
type StatsMsg struct {
	Stats repeat.Stats
}

// BenchDoneMsg is sent when the benchmark run returns.
type BenchDoneMsg struct {
	Summary orchestration.Summary
	Err     error
}

// TickMsg drives the periodic refresh of the runtime and host panels.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample and the goroutine count.
type MemStatsMsg struct {
	Snapshot     metrics.MemorySnapshot
	NumGoroutine int
}

// SysStatsMsg carries a host-level sample from sysmon.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
	Load1      float64
}

// ContextCancelledMsg is sent when the run context ends. Cause tells the
// dashboard whether this is a duration limit expiring (stay up, the
// completion message follows) or an outside interrupt (quit).
type ContextCancelledMsg struct {
	Cause error
}
