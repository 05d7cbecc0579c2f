// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Print* and Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [PrintRunConfig], [DisplayMemoryStats].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatCount], [FormatExecutionDuration].

package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/repbench/internal/config"
	"github.com/agbru/repbench/internal/format"
	"github.com/agbru/repbench/internal/metrics"
	"github.com/agbru/repbench/internal/sysmon"
	"github.com/agbru/repbench/internal/ui"
)

// PrintBanner announces the program start.
//
// Parameters:
//   - out: The writer for standard output.
func PrintBanner(out io.Writer) {
	fmt.Fprintf(out, "%sStarting high-speed string repeater benchmark...%s\n",
		ui.ColorBold(), ui.ColorReset())
}

// PrintRunConfig displays the run configuration before the workers start.
// It shows the payload, the worker count, and where statistics will land.
//
// Parameters:
//   - cfg: The application configuration.
//   - payload: The string the workers will duplicate.
//   - out: The writer for standard output.
func PrintRunConfig(cfg config.AppConfig, payload string, out io.Writer) {
	fmt.Fprintf(out, "Repeating the string: %s\"%s\"%s\n",
		ui.ColorCyan(), payload, ui.ColorReset())
	fmt.Fprintf(out, "Spawning %s%d%s worker threads.\n",
		ui.ColorCyan(), cfg.Workers, ui.ColorReset())
	if cfg.Verbose {
		fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, %s%s%s.\n",
			ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
			ui.ColorCyan(), runtime.Version(), ui.ColorReset(),
			ui.ColorCyan(), sysmon.KernelString(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Statistics logged to %s every %s.\n", cfg.LogFile, cfg.Interval)
	if cfg.Duration > 0 {
		fmt.Fprintf(out, "Running for %s%s%s. Press Ctrl+C to stop early.\n",
			ui.ColorYellow(), cfg.Duration, ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "Press Ctrl+C to stop.\n")
}

// DisplayMemoryStats shows process memory statistics after a run.
//
// Parameters:
//   - snap: The memory reading to display.
//   - out: The writer for standard output.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  From OS:         %s\n", format.FormatBytes(snap.Sys))
	fmt.Fprintf(out, "  Heap objects:    %s\n", FormatCount(snap.HeapObjects))
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	if snap.PauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(snap.PauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms (GC disabled)\n")
	}
}
