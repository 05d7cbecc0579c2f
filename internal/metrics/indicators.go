package metrics

import (
	"fmt"

	"github.com/agbru/repbench/internal/format"
	"github.com/agbru/repbench/internal/repeat"
)

// Indicators holds throughput figures derived from a statistics snapshot.
// They are recomputed on every snapshot rather than accumulated, so a single
// struct serves both live dashboard panels and the final verbose summary.
type Indicators struct {
	// Ops is the operation count the figures derive from.
	Ops uint64
	// Speed is the overall throughput in operations per second.
	Speed float64
	// OpsPerWorker is the average throughput of a single worker.
	OpsPerWorker float64
	// BytesProcessed is the total payload volume duplicated.
	BytesProcessed uint64
	// BytesPerSecond is the payload volume duplicated per second.
	BytesPerSecond float64
}

// ComputeIndicators derives throughput indicators from a snapshot.
//
// Parameters:
//   - stats: The statistics snapshot to derive from.
//   - workers: The worker count; zero yields a zero OpsPerWorker.
//   - payloadLen: The payload size in bytes.
//
// Returns:
//   - Indicators: The derived figures.
func ComputeIndicators(stats repeat.Stats, workers, payloadLen int) Indicators {
	ind := Indicators{
		Ops:            stats.Ops,
		Speed:          stats.Speed,
		BytesProcessed: stats.Ops * uint64(payloadLen),
		BytesPerSecond: stats.Speed * float64(payloadLen),
	}
	if workers > 0 {
		ind.OpsPerWorker = stats.Speed / float64(workers)
	}
	return ind
}

// FormatBytesPerSecond renders a byte rate such as "12.5 MB/s".
func FormatBytesPerSecond(rate float64) string {
	if rate < 0 {
		rate = 0
	}
	return fmt.Sprintf("%s/s", format.FormatBytes(uint64(rate)))
}
