package compare

import (
	"github.com/okian/mimic/internal/domain/align"
	"github.com/okian/mimic/internal/domain/trust"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithTrustSet exempts pairs whose owners are both in the set.
func WithTrustSet(set *trust.Set) Option {
	return func(e *Engine) {
		e.trusted = set
	}
}

// WithInterpolation selects the aligner's interpolation strategy.
func WithInterpolation(ip align.Interpolation) Option {
	return func(e *Engine) {
		e.aligner = align.NewAligner(align.WithInterpolation(ip))
	}
}

// WithAligner replaces the engine's aligner entirely.
func WithAligner(a *align.Aligner) Option {
	return func(e *Engine) {
		if a != nil {
			e.aligner = a
		}
	}
}

// WithBreakCollapsing collapses idle gaps longer than threshold
// milliseconds from both traces before alignment.
func WithBreakCollapsing(threshold float64) Option {
	return func(e *Engine) {
		if threshold > 0 {
			e.collapseBreaks = true
			e.breakThreshold = threshold
		}
	}
}

// WithResampling resamples both traces at the given frequency, in hertz,
// before alignment. Zero leaves the original sampling intact.
func WithResampling(frequency float64) Option {
	return func(e *Engine) {
		if frequency > 0 {
			e.resampleHz = frequency
		}
	}
}
