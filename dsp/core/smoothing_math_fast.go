//go:build fastmath

package core

import (
	"github.com/meko-christian/algo-approx"
)

// mathExp computes e^x using fast approximation.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}
