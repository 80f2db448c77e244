package tracegen

import "errors"

// Sentinel kinds for generation errors.
var (
	ErrNothingToGenerate = errors.New("trace count must be at least one")
)
