// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"

	"github.com/okian/mimic/internal/domain/align"
)

// Config contains process configuration for a comparison batch.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr optionally exposes Prometheus metrics while a batch
	// runs, e.g. ":9090". Empty disables the exposition server.
	MetricsAddr string `koanf:"metrics_addr"`

	// Mode selects the pairing strategy: "single" compares one trace
	// directory against itself, "double" compares two directories.
	Mode string `koanf:"mode"`

	// Threshold is the mean-distance cutoff below which a pair is flagged.
	Threshold float64 `koanf:"threshold"`

	// TracesDir holds the first (or only) collection of trace files.
	TracesDir string `koanf:"traces_dir"`

	// TracesDirB holds the second collection, required for double mode.
	TracesDirB string `koanf:"traces_dir_b"`

	// BreakThresholdMS is the smallest idle gap collapsed before
	// alignment. Zero disables break collapsing.
	BreakThresholdMS float64 `koanf:"break_threshold_ms"`

	// OutlierBound is the coordinate magnitude beyond which interpolated
	// values are rejected as artifacts.
	OutlierBound float64 `koanf:"outlier_bound"`

	// ResampleHz resamples both traces of every pair at a fixed frequency
	// before alignment. Zero keeps the original sampling.
	ResampleHz float64 `koanf:"resample_hz"`

	// StepInterpolation switches the aligner from linear interpolation to
	// step-before, for signals that must not be smoothed.
	StepInterpolation bool `koanf:"step_interpolation"`

	// WorkerCount sets the number of comparison workers. A value of at
	// most one runs the batch synchronously in enumeration order.
	WorkerCount int `koanf:"worker_count"`

	// Trust lists owner identifiers exempt from mutual comparison.
	Trust []string `koanf:"trust"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Mode:             "single",
		Threshold:        18,
		BreakThresholdMS: align.DefaultBreakThreshold,
		OutlierBound:     align.DefaultOutlierBound,
		WorkerCount:      runtime.NumCPU(),
	}
}
