// Package repository defines the flagged-outcome store interface and errors.
//
// The store ranks flagged pairs by ascending mean distance, so the most
// suspicious pairs come first. It lives in memory for the duration of a
// batch; nothing is persisted.
package repository

import (
	"context"

	"github.com/okian/mimic/internal/domain/compare"
)

// Entry represents one ranked flagged pair.
type Entry struct {
	Rank         int
	OwnerA       string
	OwnerB       string
	MeanDistance float64
	StdDistance  float64
}

// Store provides read/write access to the batch's flagged outcomes.
type Store interface {
	// Record adds a flagged outcome to the ranking.
	Record(ctx context.Context, o compare.Outcome) error

	// TopN returns the n most similar pairs, ordered by mean distance
	// ascending. Returns ErrInvalidLimit for a negative n.
	TopN(ctx context.Context, n int) ([]Entry, error)

	// Count returns the number of flagged pairs recorded so far.
	Count(ctx context.Context) int
}
