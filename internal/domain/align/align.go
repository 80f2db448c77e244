// Package align maps two irregularly-sampled cursor traces onto a common
// timeline so they can be compared sample by sample.
//
// The aligner keeps the shorter sequence's own samples (the reference) and
// interpolates the other sequence (the source) onto the reference
// timestamps. Helpers for collapsing idle breaks and resampling a trace at
// a fixed frequency live alongside it.
package align

import (
	"math"

	"github.com/okian/mimic/internal/domain/model"
)

// Default alignment configuration constants.
const (
	// DefaultOutlierBound is the coordinate magnitude beyond which an
	// interpolated value is treated as an extrapolation artifact. The
	// playfield is bounded well inside this value, so nothing legitimate
	// ever reaches it.
	DefaultOutlierBound = 600

	// DefaultBreakThreshold is the smallest gap between events, in
	// milliseconds, recognized as an idle break.
	DefaultBreakThreshold = 1000

	// minAlignSamples is the minimum sequence length that still contains
	// a bracketing pair.
	minAlignSamples = 2
)

// Aligner produces a pair of equal-length, time-aligned coordinate
// sequences from two traces sampled at different rates.
type Aligner struct {
	interp        Interpolation
	outlierBound  float64
	preserveOrder bool
}

// NewAligner creates an aligner with configuration options.
func NewAligner(opts ...Option) *Aligner {
	a := &Aligner{
		interp:       Linear,
		outlierBound: DefaultOutlierBound,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Align maps data2 onto the timeline of data1 (or the other way around,
// whichever ends up shorter after trimming) and returns the reference
// samples together with the interpolated counterpart. Both returned
// slices always have the same length, bounded by the shorter input.
//
// Reference samples past the end of the source cannot be bracketed and
// are dropped from both outputs.
//
// Returns ErrTooFewSamples if either input has fewer than two samples.
func (a *Aligner) Align(data1, data2 []model.Sample) (clean, interpolated []model.Sample, err error) {
	if len(data1) < minAlignSamples || len(data2) < minAlignSamples {
		return nil, nil, ErrTooFewSamples
	}

	flipped := false

	// Orient so data1 never starts after data2.
	if data1[0].T > data2[0].T {
		flipped = !flipped
		data1, data2 = data2, data1
	}

	// Trim leading data1 samples that lie before data2 begins. When data1
	// is the longer sequence one extra leading sample is retained so the
	// head still brackets data2's start.
	i := len(data1)
	for k, s := range data1 {
		if s.T > data2[0].T {
			i = k
			break
		}
	}
	if len(data1) < len(data2) {
		data1 = data1[i:]
	} else {
		data1 = data1[i-1:]
	}

	// The shorter sequence drives the output.
	if len(data1) > len(data2) {
		flipped = !flipped
		data1, data2 = data2, data1
	}

	j := 0
	for _, ref := range data1 {
		for j < len(data2)-1 && data2[j].T < ref.T {
			j++
		}
		if j == len(data2)-1 {
			// No right bracket remains; everything from here on is
			// uninterpolatable.
			break
		}

		clean = append(clean, ref)

		before, after := data2[j], data2[j+1]
		dtRef := ref.T - before.T
		dtSrc := after.T - before.T

		if dtSrc == 0 {
			// Duplicate source timestamps; fall back to the earlier point.
			interpolated = append(interpolated, model.Sample{T: ref.T, X: before.X, Y: before.Y})
			continue
		}

		x, y := a.interp.interpolate(before, after, dtRef/dtSrc)

		// Interpolating across a sparse stretch of the source can project
		// coordinates far outside the playfield; the raw reference sample
		// is safer than a distorted value.
		if math.Abs(x) > a.outlierBound || math.Abs(y) > a.outlierBound {
			interpolated = append(interpolated, ref)
			continue
		}

		interpolated = append(interpolated, model.Sample{T: ref.T, X: x, Y: y})
	}

	if a.preserveOrder && flipped {
		clean, interpolated = interpolated, clean
	}

	return clean, interpolated, nil
}
