package app

import "errors"

// Sentinel kinds for batch orchestration errors.
var (
	ErrQueueFull = errors.New("pair queue rejected enqueue")
)
