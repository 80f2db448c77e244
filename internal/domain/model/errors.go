package model

import "errors"

// Sentinel kinds for trace errors. These allow errors.Is/As from callers.
var (
	ErrEmptyTrace = errors.New("trace has no events")
)
