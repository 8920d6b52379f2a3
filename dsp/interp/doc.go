// Package interp provides fractional-position buffer reads for
// resampling playback heads.
//
// [ReadLinear] is the grain resampler: a clamped, linearly interpolated
// read at an arbitrary float position. Out-of-range positions never
// wrap or extrapolate; they clamp to the first or last sample.
// [Hermite4] offers a 4-point cubic for callers that want a smoother
// curve than [Linear2] at the cost of two extra neighbor samples.
package interp
