// Package config defines the application configuration and its resolution
// chain. Values are resolved with the following priority (highest first):
//
//  1. Command-line flags
//  2. Environment variables (REPBENCH_*)
//  3. TOML configuration file (-config or REPBENCH_CONFIG)
//  4. Adaptive hardware defaults (worker count)
//  5. Static defaults in this file
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/repbench/internal/errors"
)

// EnvPrefix is the prefix for all environment variables read by the
// application.
const EnvPrefix = "REPBENCH_"

// Static configuration defaults.
const (
	// DefaultInterval is the default statistics reporting interval.
	DefaultInterval = time.Second
	// DefaultLogFile is the default path of the statistics log file.
	DefaultLogFile = "stats.log"
	// DefaultTheme is the default color theme name.
	DefaultTheme = "dark"
	// MinReportInterval is the smallest accepted reporting interval. The
	// reporter samples more often than it reports, so intervals below the
	// sampling period cannot be honored.
	MinReportInterval = 100 * time.Millisecond
)

// AppConfig holds the complete runtime configuration of the application.
type AppConfig struct {
	// Workers is the number of repeater goroutines. Zero selects one
	// goroutine per logical CPU.
	Workers int
	// Duration bounds the benchmark run. Zero runs until interrupted.
	Duration time.Duration
	// Interval is the statistics reporting interval.
	Interval time.Duration
	// LogFile is the path of the fixed-size statistics log file.
	LogFile string
	// Payload is the string to repeat. Empty prompts the operator for one.
	Payload string
	// Quiet suppresses decorative console output.
	Quiet bool
	// TUI runs the interactive terminal dashboard instead of the plain CLI.
	TUI bool
	// Latencies enables per-operation latency recording and a percentile
	// table in the final summary.
	Latencies bool
	// MetricsAddr is the listen address of the Prometheus metrics server.
	// Empty disables the server.
	MetricsAddr string
	// Theme selects the color theme.
	Theme string
	// ConfigFile is the path of an optional TOML configuration file.
	ConfigFile string
	// Completion, when non-empty, names a shell to generate a completion
	// script for instead of running the benchmark.
	Completion string
	// Verbose enables debug-level logging.
	Verbose bool
}

// ParseConfig parses command-line arguments into an AppConfig and applies the
// configuration file and environment variable overrides. availableThemes is
// the list of valid -theme values used for validation and usage text.
//
// Parameters:
//   - programName: The name used in usage and error messages.
//   - args: The command-line arguments, without the program name.
//   - errWriter: The destination for usage and flag parsing errors.
//   - availableThemes: The accepted values for the -theme flag.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, a ConfigError for invalid
//     values, or a flag parsing error.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableThemes []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var cfg AppConfig
	fs.IntVar(&cfg.Workers, "workers", 0, "number of repeater goroutines (0 = one per CPU core)")
	fs.DurationVar(&cfg.Duration, "duration", 0, "benchmark duration (0 = run until interrupted)")
	fs.DurationVar(&cfg.Interval, "interval", DefaultInterval, "statistics reporting interval")
	fs.StringVar(&cfg.LogFile, "log-file", DefaultLogFile, "path of the statistics log file")
	fs.StringVar(&cfg.Payload, "string", "", "string to repeat (empty = prompt interactively)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress decorative console output")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.TUI, "tui", false, "run the interactive terminal dashboard")
	fs.BoolVar(&cfg.Latencies, "latencies", false, "record per-operation latencies and print percentiles in the summary")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "listen address for the Prometheus metrics server (empty = disabled)")
	fs.StringVar(&cfg.Theme, "theme", DefaultTheme, fmt.Sprintf("color theme (%s)", themeList(availableThemes)))
	fs.StringVar(&cfg.ConfigFile, "config", "", "path of a TOML configuration file")
	fs.StringVar(&cfg.Completion, "completion", "", "generate a shell completion script (bash, zsh, fish, powershell) and exit")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug-level logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")

	fs.Usage = func() { printUsage(fs, programName) }

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	if err := applyFileConfig(&cfg, fs); err != nil {
		return AppConfig{}, err
	}
	applyEnvOverrides(&cfg, fs)

	if err := ValidateConfig(cfg, availableThemes); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// ValidateConfig checks the resolved configuration for values the application
// cannot run with.
//
// Parameters:
//   - cfg: The configuration to validate.
//   - availableThemes: The accepted -theme values; empty skips the check.
//
// Returns:
//   - error: A ConfigError describing the first invalid value, or nil.
func ValidateConfig(cfg AppConfig, availableThemes []string) error {
	if cfg.Workers < 0 {
		return apperrors.NewConfigError("invalid worker count %d: must be positive, or 0 for one per CPU core", cfg.Workers)
	}
	if cfg.Duration < 0 {
		return apperrors.NewConfigError("invalid duration %v: must be positive, or 0 to run until interrupted", cfg.Duration)
	}
	if cfg.Interval < MinReportInterval {
		return apperrors.NewConfigError("invalid reporting interval %v: must be at least %v", cfg.Interval, MinReportInterval)
	}
	if cfg.LogFile == "" {
		return apperrors.NewConfigError("log file path cannot be empty")
	}
	if len(availableThemes) > 0 && !slices.Contains(availableThemes, cfg.Theme) {
		return apperrors.NewConfigError("unknown theme %q: available themes are %s", cfg.Theme, themeList(availableThemes))
	}
	return nil
}

// themeList joins theme names for usage and error text.
func themeList(themes []string) string {
	if len(themes) == 0 {
		return DefaultTheme
	}
	return strings.Join(themes, ", ")
}

// printUsage writes the full usage text, including environment variables and
// the resolution priority.
func printUsage(fs *flag.FlagSet, programName string) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: %s [options]\n\n", programName)
	fmt.Fprintf(w, "%s spawns worker goroutines that repeatedly duplicate a string at full\n", programName)
	fmt.Fprintf(w, "speed and reports the aggregate throughput to the console and to a\n")
	fmt.Fprintf(w, "fixed-size log file once per interval.\n\nOptions:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEnvironment variables (all prefixed with %s):\n", EnvPrefix)
	fmt.Fprintf(w, "  WORKERS, DURATION, INTERVAL, LOG_FILE, STRING, QUIET, TUI, LATENCIES,\n")
	fmt.Fprintf(w, "  METRICS_ADDR, THEME, CONFIG, VERBOSE\n")
	fmt.Fprintf(w, "\nPriority: command-line flags > environment variables > configuration file > defaults.\n")
}
