package align

import "errors"

// Sentinel kinds for alignment errors. These allow errors.Is/As from callers.
var (
	// ErrTooFewSamples indicates a sequence too short to contain a
	// bracketing pair.
	ErrTooFewSamples = errors.New("at least two samples required")

	// ErrInvalidFrequency indicates a non-positive resampling frequency.
	ErrInvalidFrequency = errors.New("frequency must be positive")
)
