package biquad

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-granular/internal/testutil"
)

// passthrough leaves the input untouched.
var passthrough = Coefficients{B0: 1}

func TestProcessSamplePassthrough(t *testing.T) {
	s := NewSection(passthrough)

	for _, x := range []float64{0, 1, -0.5, 0.25} {
		if y := s.ProcessSample(x); y != x {
			t.Fatalf("ProcessSample(%v) = %v, want identity", x, y)
		}
	}
}

func TestProcessBlockMatchesSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.4, A2: 0.05}

	s1 := NewSection(c)
	s2 := NewSection(c)

	input := testutil.DeterministicNoise(1, 1, 256)

	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = s1.ProcessSample(x)
	}

	got := make([]float64, len(input))
	copy(got, input)
	s2.ProcessBlock(got)

	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > 1e-12 {
			t.Fatalf("sample %d mismatch: got=%g want=%g", i, got[i], want[i])
		}
	}
}

func TestProcessBlockToMatchesInPlace(t *testing.T) {
	c := Coefficients{B0: 0.5, B1: 0.5, A1: -0.2}

	s1 := NewSection(c)
	s2 := NewSection(c)

	src := []float64{1, 0, -1, 0.5, 0.25, -0.75}

	inPlace := make([]float64, len(src))
	copy(inPlace, src)
	s1.ProcessBlock(inPlace)

	dst := make([]float64, len(src))
	s2.ProcessBlockTo(dst, src)

	for i := range dst {
		if dst[i] != inPlace[i] {
			t.Fatalf("sample %d mismatch: %v vs %v", i, dst[i], inPlace[i])
		}
	}
}

func TestResetClearsState(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.3, B1: 0.3, A1: -0.5})

	s.ProcessSample(1)
	s.ProcessSample(-1)
	s.Reset()

	if got := s.State(); got != [2]float64{} {
		t.Fatalf("State() after Reset = %v, want zeros", got)
	}
}

func TestStateRoundTrip(t *testing.T) {
	c := Coefficients{B0: 0.3, B1: 0.2, B2: 0.1, A1: -0.6, A2: 0.1}

	s := NewSection(c)
	for _, x := range []float64{1, 0.5, -0.25} {
		s.ProcessSample(x)
	}

	saved := s.State()
	a := s.ProcessSample(0.75)

	s.SetState(saved)
	b := s.ProcessSample(0.75)

	if a != b {
		t.Fatalf("restored state should reproduce output: %v vs %v", a, b)
	}
}
