package repository

import "github.com/okian/mimic/internal/domain/compare"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithInitialCapacity pre-sizes the ranking storage.
func WithInitialCapacity(n int) Option {
	return func(s *MemStore) {
		if n > 0 {
			s.outcomes = make([]compare.Outcome, 0, n)
		}
	}
}
