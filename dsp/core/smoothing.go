package core

import "fmt"

// Smooth moves current toward target by amount and returns the result.
// amount is clamped to [0, 1]: 0 jumps straight to target, 1 keeps the
// current value unchanged.
func Smooth(current, target, amount float64) float64 {
	return Mix(amount, target, current)
}

// SmoothingCoeff converts a time constant in seconds into a one-pole
// smoothing coefficient for the given sample rate. The returned value
// is the per-sample feedback amount, suitable for Smooth or Smoother.
// Non-positive arguments yield 0 (no smoothing).
func SmoothingCoeff(timeConstant, sampleRate float64) float64 {
	if timeConstant <= 0 || sampleRate <= 0 {
		return 0
	}

	return mathExp(-1 / (timeConstant * sampleRate))
}

// Smoother is a one-pole exponential parameter smoother. It removes
// zipper noise from block-rate control signals by easing the reported
// value toward a target on every Next call.
//
// Not thread-safe.
type Smoother struct {
	current float64
	target  float64
	coeff   float64
}

// NewSmoother creates a smoother with a per-sample coefficient in [0, 1).
// Use SmoothingCoeff to derive the coefficient from a time constant.
func NewSmoother(coeff float64) (*Smoother, error) {
	if coeff < 0 || coeff >= 1 || !Finite(coeff) {
		return nil, fmt.Errorf("smoother coeff must be in [0, 1): %f", coeff)
	}

	return &Smoother{coeff: coeff}, nil
}

// SetTarget sets the value the smoother eases toward.
func (s *Smoother) SetTarget(target float64) {
	s.target = target
}

// Reset snaps the smoother to value and clears the target to match.
func (s *Smoother) Reset(value float64) {
	s.current = value
	s.target = value
}

// Next advances the smoother by one sample and returns the new value.
func (s *Smoother) Next() float64 {
	s.current = Smooth(s.current, s.target, s.coeff)
	return s.current
}

// Value returns the current value without advancing.
func (s *Smoother) Value() float64 {
	return s.current
}
