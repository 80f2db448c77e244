package align

import "github.com/okian/mimic/internal/domain/model"

// millisecondsPerSecond converts a frequency in Hz to a step in ms.
const millisecondsPerSecond = 1000

// Resample produces a fixed-frequency version of a sample sequence by
// walking from the first timestamp towards the last in steps of
// 1000/frequency milliseconds and linearly interpolating the bracketing
// input samples at each step. The output holds
// floor((tMax-tMin)*frequency/1000) evenly spaced samples.
//
// Returns ErrTooFewSamples if fewer than two samples are given and
// ErrInvalidFrequency for a non-positive frequency.
func Resample(samples []model.Sample, frequency float64) ([]model.Sample, error) {
	if len(samples) < minAlignSamples {
		return nil, ErrTooFewSamples
	}
	if frequency <= 0 {
		return nil, ErrInvalidFrequency
	}

	tMin := samples[0].T
	tMax := samples[len(samples)-1].T
	step := millisecondsPerSecond / frequency
	count := int((tMax - tMin) * frequency / millisecondsPerSecond)

	resampled := make([]model.Sample, 0, count)

	i := 1
	for k := 0; k < count; k++ {
		t := tMin + float64(k)*step

		for i < len(samples)-1 && samples[i].T < t {
			i++
		}

		before, after := samples[i-1], samples[i]
		dtSrc := after.T - before.T
		if dtSrc == 0 {
			resampled = append(resampled, model.Sample{T: t, X: before.X, Y: before.Y})
			continue
		}

		r := (t - before.T) / dtSrc
		x, y := Linear.interpolate(before, after, r)
		resampled = append(resampled, model.Sample{T: t, X: x, Y: y})
	}

	return resampled, nil
}
