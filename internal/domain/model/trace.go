// Package model contains domain models passed between layers.
package model

import "sort"

// Sample is a single cursor position at an absolute time.
type Sample struct {
	T float64 // absolute time in milliseconds
	X float64 // horizontal screen coordinate
	Y float64 // vertical screen coordinate
}

// Event is one raw input event as recorded, carrying the time elapsed
// since the previous event rather than an absolute timestamp.
type Event struct {
	DT float64 // milliseconds since the previous event
	X  float64
	Y  float64
}

// Velocity is the finite-difference cursor velocity over one sample interval.
type Velocity struct {
	VX float64
	VY float64
}

// Trace is the time-ordered cursor path of one player's recorded session.
// It is built once and treated as read-only afterwards.
type Trace struct {
	owner   string
	samples []Sample
}

// NewTrace builds a Trace from per-event deltas. Absolute timestamps are
// the running sum of the deltas. The result is sorted by timestamp even
// though deltas are expected to be non-negative, so out-of-order input
// can never leak into downstream code.
// Returns ErrEmptyTrace if events is empty.
func NewTrace(owner string, events []Event) (*Trace, error) {
	if len(events) == 0 {
		return nil, ErrEmptyTrace
	}

	samples := make([]Sample, len(events))
	var t float64
	for i, e := range events {
		t += e.DT
		samples[i] = Sample{T: t, X: e.X, Y: e.Y}
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].T < samples[j].T
	})

	return &Trace{owner: owner, samples: samples}, nil
}

// Owner returns the player identifier this trace belongs to.
func (t *Trace) Owner() string {
	return t.owner
}

// Samples returns the time-ordered samples. The returned slice is the
// trace's backing storage and must not be modified.
func (t *Trace) Samples() []Sample {
	return t.samples
}

// Len returns the number of samples.
func (t *Trace) Len() int {
	return len(t.samples)
}

// Velocities returns the per-interval cursor velocity, one entry per
// consecutive sample pair. Traces with fewer than two samples have no
// intervals and yield nil.
func (t *Trace) Velocities() []Velocity {
	if len(t.samples) < 2 {
		return nil
	}

	vs := make([]Velocity, len(t.samples)-1)
	for i := 1; i < len(t.samples); i++ {
		dt := t.samples[i].T - t.samples[i-1].T
		vs[i-1] = Velocity{
			VX: (t.samples[i].X - t.samples[i-1].X) / dt,
			VY: (t.samples[i].Y - t.samples[i-1].Y) / dt,
		}
	}
	return vs
}
