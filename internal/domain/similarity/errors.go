package similarity

import "errors"

// Sentinel kinds for scoring errors. Floating-point faults are fatal by
// policy; they are reported explicitly rather than coerced to NaN.
var (
	ErrNumericFault = errors.New("numeric fault during distance computation")
)
