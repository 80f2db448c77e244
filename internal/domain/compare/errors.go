package compare

import "errors"

// Sentinel kinds for comparison errors.
var (
	ErrInvalidMode = errors.New("mode must be one of 'single' or 'double'")
)
