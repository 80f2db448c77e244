package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/okian/mimic/internal/domain/compare"
)

// defaultInitialCapacity pre-sizes the ranking for a typical batch.
const defaultInitialCapacity = 64

// MemStore implements Store with a mutex-guarded sorted slice. Flagged
// pairs are rare relative to comparisons, so insertion cost is not a
// concern.
type MemStore struct {
	mu       sync.RWMutex
	outcomes []compare.Outcome
}

// NewMemStore creates an empty in-memory ranking with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		outcomes: make([]compare.Outcome, 0, defaultInitialCapacity),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Record inserts the outcome, keeping the ranking sorted by ascending
// mean distance.
func (s *MemStore) Record(_ context.Context, o compare.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := sort.Search(len(s.outcomes), func(i int) bool {
		return s.outcomes[i].MeanDistance > o.MeanDistance
	})
	s.outcomes = append(s.outcomes, compare.Outcome{})
	copy(s.outcomes[i+1:], s.outcomes[i:])
	s.outcomes[i] = o
	return nil
}

// TopN returns the n most similar flagged pairs.
func (s *MemStore) TopN(_ context.Context, n int) ([]Entry, error) {
	if n < 0 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.outcomes) {
		n = len(s.outcomes)
	}

	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		o := s.outcomes[i]
		entries[i] = Entry{
			Rank:         i + 1,
			OwnerA:       o.OwnerA,
			OwnerB:       o.OwnerB,
			MeanDistance: o.MeanDistance,
			StdDistance:  o.StdDistance,
		}
	}
	return entries, nil
}

// Count returns the number of flagged pairs recorded so far.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.outcomes)
}
