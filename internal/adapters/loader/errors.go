package loader

import "errors"

// Sentinel kinds for loader errors.
var (
	ErrNoTraces = errors.New("no trace files found")
)
