// Package similarity reduces two aligned coordinate sequences to a
// distance statistic.
package similarity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/okian/mimic/internal/domain/model"
)

// Point is a screen coordinate with the time column already stripped.
type Point struct {
	X float64
	Y float64
}

// Result holds population statistics over the per-sample Euclidean
// distances between two coordinate sequences.
type Result struct {
	MeanDistance float64
	StdDistance  float64
}

// Strip drops the time column from a sample sequence.
func Strip(samples []model.Sample) []Point {
	points := make([]Point, len(samples))
	for i, s := range samples {
		points[i] = Point{X: s.X, Y: s.Y}
	}
	return points
}

// Score computes the mean and population standard deviation of the
// Euclidean distance between a and b, index by index. If the sequences
// differ in length the longer one is truncated to the shorter.
//
// Non-finite values are never returned: any overflow or invalid
// operation surfaces as ErrNumericFault instead of propagating NaN or
// Inf into a comparison verdict.
func Score(a, b []Point) (Result, error) {
	// Keep a the longer sequence, then cut it down to b's length.
	if len(b) > len(a) {
		a, b = b, a
	}
	a = a[:len(b)]

	if len(b) == 0 {
		return Result{}, fmt.Errorf("%w: no aligned samples to score", ErrNumericFault)
	}

	distances := make([]float64, len(b))
	for i := range b {
		d := math.Hypot(a[i].X-b[i].X, a[i].Y-b[i].Y)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return Result{}, fmt.Errorf("%w: distance at index %d is not finite", ErrNumericFault, i)
		}
		distances[i] = d
	}

	mean, std := stat.PopMeanStdDev(distances, nil)
	if math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(std) || math.IsInf(std, 0) {
		return Result{}, fmt.Errorf("%w: distance statistics are not finite", ErrNumericFault)
	}

	return Result{MeanDistance: mean, StdDistance: std}, nil
}
