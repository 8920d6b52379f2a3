// Package envelope shapes grain amplitude over a grain's lifetime.
//
// The envelope rises over the first slopeLength samples, holds at 1,
// and falls over the last slopeLength samples. Each edge blends a pure
// linear ramp with a raised-cosine ramp; linearity selects between them
// (1 = linear, 0 = fully curved). The raised cosine was chosen as the
// curved shape: it is smooth, monotonic on each half, and gives Hann-like
// grains when linearity is 0.
package envelope

import (
	"math"

	"github.com/cwbudde/algo-granular/dsp/core"
)

// Gain returns the grain gain in [0, 1] at age samples into a grain of
// duration samples.
//
// When the rising and falling edges overlap (2*slopeLength >= duration)
// the smaller edge distance wins, so the gain never exceeds 1; the peak
// is then below 1. Ages outside [0, duration) and non-positive
// durations return 0. A non-positive slopeLength disables fading.
func Gain(age, duration int, slopeLength, linearity float64) float64 {
	if duration <= 0 || age < 0 || age >= duration {
		return 0
	}

	if slopeLength <= 0 || math.IsNaN(slopeLength) {
		return 1
	}

	// Distance to the nearest grain edge decides which slope applies.
	edge := math.Min(float64(age), float64(duration-age))

	t := edge / slopeLength
	if t >= 1 {
		return 1
	}

	linear := t
	curved := 0.5 * (1 - math.Cos(math.Pi*t))

	return core.Mix(linearity, curved, linear)
}
