package interp

// Linear2 interpolates between a and b by frac in [0, 1].
func Linear2(frac, a, b float64) float64 {
	return a + (b-a)*frac
}

// Hermite4 computes cubic 4-point interpolation from x0 to x1 by t,
// using neighbor points xm1 and x2 to shape the curve.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// ReadLinear reads a fractional sample position out of buf using linear
// interpolation.
//
// Positions at or below 0 return the first sample, positions at or past
// the last index return the last sample. An empty buffer reads as 0.
func ReadLinear(buf []float64, pos float64) float64 {
	if len(buf) == 0 {
		return 0
	}

	if pos <= 0 {
		return buf[0]
	}

	// Clamp in float space; converting a huge position to int first
	// would overflow and index negatively.
	if pos >= float64(len(buf)-1) {
		return buf[len(buf)-1]
	}

	idx := int(pos)
	frac := pos - float64(idx)

	return Linear2(frac, buf[idx], buf[idx+1])
}
