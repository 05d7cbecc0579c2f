// This file contains TOML configuration file loading and merging.

package config

import (
	"flag"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/agbru/repbench/internal/errors"
)

// duration wraps time.Duration so TOML values such as "500ms" or "2s" decode
// through the standard duration syntax.
type duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML string values.
func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// fileConfig mirrors the file-configurable subset of AppConfig with optional
// fields, so absent keys can be distinguished from explicit zero values when
// merging.
type fileConfig struct {
	Workers     *int      `toml:"workers"`
	Duration    *duration `toml:"duration"`
	Interval    *duration `toml:"interval"`
	LogFile     *string   `toml:"log_file"`
	Payload     *string   `toml:"string"`
	Quiet       *bool     `toml:"quiet"`
	TUI         *bool     `toml:"tui"`
	Latencies   *bool     `toml:"latencies"`
	MetricsAddr *string   `toml:"metrics_addr"`
	Theme       *string   `toml:"theme"`
	Verbose     *bool     `toml:"verbose"`
}

// applyFileConfig loads the TOML configuration file, if one is configured, and
// applies its values for flags not explicitly set on the command line. The
// file path comes from the -config flag or the REPBENCH_CONFIG environment
// variable; when neither is set no file is read.
func applyFileConfig(cfg *AppConfig, fs *flag.FlagSet) error {
	path := cfg.ConfigFile
	if path == "" {
		path = getEnvString("CONFIG", "")
	}
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.NewConfigError("reading configuration file %s: %v", path, err)
	}

	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return apperrors.NewConfigError("parsing configuration file %s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return apperrors.NewConfigError("unknown key %q in configuration file %s", undecoded[0].String(), path)
	}

	mergeFileConfig(cfg, fc, fs)
	return nil
}

// mergeFileConfig copies every value present in the file onto the
// configuration, skipping fields whose flags were set on the command line.
func mergeFileConfig(cfg *AppConfig, fc fileConfig, fs *flag.FlagSet) {
	if fc.Workers != nil && !isFlagSet(fs, "workers") {
		cfg.Workers = *fc.Workers
	}
	if fc.Duration != nil && !isFlagSet(fs, "duration") {
		cfg.Duration = fc.Duration.Duration
	}
	if fc.Interval != nil && !isFlagSet(fs, "interval") {
		cfg.Interval = fc.Interval.Duration
	}
	if fc.LogFile != nil && !isFlagSet(fs, "log-file") {
		cfg.LogFile = *fc.LogFile
	}
	if fc.Payload != nil && !isFlagSet(fs, "string") {
		cfg.Payload = *fc.Payload
	}
	if fc.Quiet != nil && !isFlagSetAny(fs, "quiet", "q") {
		cfg.Quiet = *fc.Quiet
	}
	if fc.TUI != nil && !isFlagSet(fs, "tui") {
		cfg.TUI = *fc.TUI
	}
	if fc.Latencies != nil && !isFlagSet(fs, "latencies") {
		cfg.Latencies = *fc.Latencies
	}
	if fc.MetricsAddr != nil && !isFlagSet(fs, "metrics-addr") {
		cfg.MetricsAddr = *fc.MetricsAddr
	}
	if fc.Theme != nil && !isFlagSet(fs, "theme") {
		cfg.Theme = *fc.Theme
	}
	if fc.Verbose != nil && !isFlagSetAny(fs, "v", "verbose") {
		cfg.Verbose = *fc.Verbose
	}
}
