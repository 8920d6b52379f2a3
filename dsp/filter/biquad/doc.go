// Package biquad implements a single second-order recursive filter
// section in Direct Form II Transposed.
//
// A [Section] carries its own two-sample delay state, so independent
// signal paths (for example the two granular voices) each own their own
// Section. Coefficients are plain exported fields and may be replaced
// between samples; the delay state persists across coefficient changes,
// which keeps the output continuous when the cutoff is modulated.
package biquad
