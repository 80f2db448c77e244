// Package compare enumerates candidate trace pairs and scores their
// similarity, yielding the pairs suspicious enough to flag.
package compare

import (
	"context"
	"fmt"

	"github.com/okian/mimic/internal/domain/align"
	"github.com/okian/mimic/internal/domain/model"
	"github.com/okian/mimic/internal/domain/similarity"
	"github.com/okian/mimic/internal/domain/trust"
)

// Mode selects the pairing strategy.
type Mode string

const (
	// ModeSingle compares all unordered two-combinations within one
	// collection. No self-pairs, no duplicate orderings.
	ModeSingle Mode = "single"

	// ModeDouble compares every trace of the first collection against
	// every trace of the second.
	ModeDouble Mode = "double"
)

// Pair is one candidate comparison.
type Pair struct {
	A *model.Trace
	B *model.Trace
}

// Outcome is a flagged comparison: a pair whose mean distance fell below
// the engine threshold.
type Outcome struct {
	OwnerA       string
	OwnerB       string
	MeanDistance float64
	StdDistance  float64

	// AlignedSamples is how many sample pairs survived alignment and
	// fed the distance statistics.
	AlignedSamples int
}

// Engine runs aligner and scorer over candidate pairs and filters the
// results by threshold.
type Engine struct {
	threshold      float64
	trusted        *trust.Set
	aligner        *align.Aligner
	breakThreshold float64
	collapseBreaks bool
	resampleHz     float64
}

// NewEngine creates a comparison engine. Comparisons scoring a mean
// distance below threshold are reported.
func NewEngine(threshold float64, opts ...Option) *Engine {
	e := &Engine{
		threshold: threshold,
		aligner:   align.NewAligner(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Pairs enumerates the candidate pairs for the given mode in a
// deterministic order. ModeDouble yields the cartesian product of set1
// and set2; ModeSingle yields the two-combinations of set1 and ignores
// set2. An unrecognized mode fails before any comparison work begins.
func Pairs(mode Mode, set1, set2 []*model.Trace) ([]Pair, error) {
	switch mode {
	case ModeDouble:
		pairs := make([]Pair, 0, len(set1)*len(set2))
		for _, a := range set1 {
			for _, b := range set2 {
				pairs = append(pairs, Pair{A: a, B: b})
			}
		}
		return pairs, nil
	case ModeSingle:
		pairs := make([]Pair, 0, len(set1)*(len(set1)-1)/2)
		for i := 0; i < len(set1); i++ {
			for j := i + 1; j < len(set1); j++ {
				pairs = append(pairs, Pair{A: set1[i], B: set1[j]})
			}
		}
		return pairs, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
}

// Skip reports whether a pair carries no signal: both owners trusted, or
// a trace compared against its own owner.
func (e *Engine) Skip(p Pair) bool {
	a, b := p.A.Owner(), p.B.Owner()
	return e.trusted.Both(a, b) || a == b
}

// ComparePair aligns and scores one pair. The returned flag reports
// whether the pair scored below the threshold.
func (e *Engine) ComparePair(ctx context.Context, p Pair) (Outcome, bool, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, false, fmt.Errorf("comparison canceled: %w", err)
	}

	sa, sb := p.A.Samples(), p.B.Samples()
	if e.collapseBreaks {
		sa = align.CollapseBreaks(sa, e.breakThreshold)
		sb = align.CollapseBreaks(sb, e.breakThreshold)
	}
	if e.resampleHz > 0 {
		var err error
		if sa, err = align.Resample(sa, e.resampleHz); err != nil {
			return Outcome{}, false, fmt.Errorf("resampling %s: %w", p.A.Owner(), err)
		}
		if sb, err = align.Resample(sb, e.resampleHz); err != nil {
			return Outcome{}, false, fmt.Errorf("resampling %s: %w", p.B.Owner(), err)
		}
	}

	clean, interpolated, err := e.aligner.Align(sa, sb)
	if err != nil {
		return Outcome{}, false, fmt.Errorf("aligning %s vs %s: %w", p.A.Owner(), p.B.Owner(), err)
	}

	result, err := similarity.Score(similarity.Strip(clean), similarity.Strip(interpolated))
	if err != nil {
		return Outcome{}, false, fmt.Errorf("scoring %s vs %s: %w", p.A.Owner(), p.B.Owner(), err)
	}

	outcome := Outcome{
		OwnerA:         p.A.Owner(),
		OwnerB:         p.B.Owner(),
		MeanDistance:   result.MeanDistance,
		StdDistance:    result.StdDistance,
		AlignedSamples: len(clean),
	}
	return outcome, result.MeanDistance < e.threshold, nil
}

// Compare runs the full pairwise comparison for the given mode and calls
// emit for each flagged outcome, in enumeration order. The first error
// from a pair or from emit aborts the batch.
func (e *Engine) Compare(ctx context.Context, mode Mode, set1, set2 []*model.Trace, emit func(Outcome) error) error {
	pairs, err := Pairs(mode, set1, set2)
	if err != nil {
		return err
	}

	for _, p := range pairs {
		if e.Skip(p) {
			continue
		}

		outcome, flagged, err := e.ComparePair(ctx, p)
		if err != nil {
			return err
		}
		if !flagged {
			continue
		}

		if err := emit(outcome); err != nil {
			return err
		}
	}

	return nil
}
