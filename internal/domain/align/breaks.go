package align

import "github.com/okian/mimic/internal/domain/model"

// CollapseBreaks compresses idle periods out of a time-ordered sample
// sequence. Whenever the gap between consecutive samples exceeds
// threshold milliseconds, the entire gap is subtracted from every
// subsequent timestamp, so breaks collapse to zero width while all other
// intervals keep their spacing. The first sample is never shifted and the
// output has the same length as the input.
func CollapseBreaks(samples []model.Sample, threshold float64) []model.Sample {
	if len(samples) == 0 {
		return nil
	}

	collapsed := make([]model.Sample, 0, len(samples))

	var totalBreak float64
	tPrev := samples[0].T
	for _, s := range samples {
		if dt := s.T - tPrev; dt > threshold {
			totalBreak += dt
		}
		collapsed = append(collapsed, model.Sample{T: s.T - totalBreak, X: s.X, Y: s.Y})
		tPrev = s.T
	}

	return collapsed
}
