package align

import "github.com/okian/mimic/internal/domain/model"

// Interpolation selects how coordinates between two bracketing samples
// are derived.
//
//   - Linear     — weighted average of the bracket coordinates by the
//     time ratio. The default for cursor movement.
//
//   - StepBefore — always the earlier bracket's coordinates. For signals
//     that must not be smoothed, such as key states.
type Interpolation int

const (
	// Linear interpolates both axes proportionally to the time ratio.
	Linear Interpolation = iota

	// StepBefore holds the earlier bracket's value until the next sample.
	StepBefore
)

// String returns the interpolation name.
func (ip Interpolation) String() string {
	switch ip {
	case StepBefore:
		return "step-before"
	default:
		return "linear"
	}
}

// interpolate derives coordinates at ratio r between before and after.
// r may fall outside [0,1] when the target time lies outside the bracket.
func (ip Interpolation) interpolate(before, after model.Sample, r float64) (x, y float64) {
	if ip == StepBefore {
		return before.X, before.Y
	}
	return (1-r)*before.X + r*after.X, (1-r)*before.Y + r*after.Y
}
