package app

import (
	"github.com/okian/mimic/internal/adapters/repository"
	"github.com/okian/mimic/internal/domain/align"
	"github.com/okian/mimic/internal/domain/compare"
	"github.com/okian/mimic/internal/domain/trust"
	"github.com/okian/mimic/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithMode selects the pairing strategy.
func WithMode(m compare.Mode) Option {
	return func(s *Service) {
		s.mode = m
	}
}

// WithThreshold sets the mean-distance cutoff below which a pair is
// flagged.
func WithThreshold(t float64) Option {
	return func(s *Service) {
		if t > 0 {
			s.threshold = t
		}
	}
}

// WithWorkerCount sets the number of comparison workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithBreakCollapsing collapses idle gaps longer than threshold
// milliseconds before alignment. Zero leaves traces untouched.
func WithBreakCollapsing(threshold float64) Option {
	return func(s *Service) {
		if threshold > 0 {
			s.breakThreshold = threshold
		}
	}
}

// WithOutlierBound sets the coordinate magnitude beyond which
// interpolated values are rejected as artifacts.
func WithOutlierBound(bound float64) Option {
	return func(s *Service) {
		if bound > 0 {
			s.outlierBound = bound
		}
	}
}

// WithResampleFrequency resamples both traces of every pair at the given
// frequency, in hertz, before alignment. Zero keeps the original sampling.
func WithResampleFrequency(hz float64) Option {
	return func(s *Service) {
		if hz > 0 {
			s.resampleHz = hz
		}
	}
}

// WithInterpolation selects the aligner's interpolation strategy.
func WithInterpolation(ip align.Interpolation) Option {
	return func(s *Service) {
		s.interpolation = ip
	}
}

// WithTrust exempts pairs whose owners are both listed.
func WithTrust(owners ...string) Option {
	return func(s *Service) {
		if len(owners) > 0 {
			s.trusted = trust.NewSet(owners...)
		}
	}
}

// WithStore replaces the in-memory outcome store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
