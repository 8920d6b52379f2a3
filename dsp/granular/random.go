package granular

import "math/rand"

// RandomSource supplies the uniform random scalars used for grain start
// jitter. math/rand's *Rand satisfies it; tests may substitute a
// deterministic sequence.
type RandomSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

func newSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
