package align

// Option applies a configuration option to the Aligner.
type Option func(*Aligner)

// WithInterpolation selects the interpolation strategy.
func WithInterpolation(ip Interpolation) Option {
	return func(a *Aligner) {
		if ip == Linear || ip == StepBefore {
			a.interp = ip
		}
	}
}

// WithOutlierBound overrides the coordinate magnitude beyond which an
// interpolated value is discarded in favor of the reference sample.
func WithOutlierBound(bound float64) Option {
	return func(a *Aligner) {
		if bound > 0 {
			a.outlierBound = bound
		}
	}
}

// WithPreserveOrder makes Align return results in the caller's argument
// order regardless of which sequence ended up driving the output.
func WithPreserveOrder(preserve bool) Option {
	return func(a *Aligner) {
		a.preserveOrder = preserve
	}
}
