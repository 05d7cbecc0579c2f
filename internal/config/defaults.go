package config

import "runtime"

// DefaultWorkers returns the default number of repeater goroutines, one per
// logical CPU. Saturating every core is the point of the benchmark, so the
// default tracks the hardware rather than a fixed constant.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// ApplyAdaptiveDefaults fills zero-valued fields with hardware-derived or
// static defaults. Only fields left at their zero value are modified,
// preserving any explicit overrides from flags, environment variables or the
// configuration file.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers()
	}
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	return cfg
}
