package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMix(t *testing.T) {
	tests := []struct {
		name     string
		t        float64
		a        float64
		b        float64
		expected float64
	}{
		{name: "start", t: 0, a: 2, b: 6, expected: 2},
		{name: "end", t: 1, a: 2, b: 6, expected: 6},
		{name: "middle", t: 0.5, a: 2, b: 6, expected: 4},
		{name: "underflow clamps", t: -1, a: 2, b: 6, expected: 2},
		{name: "overflow clamps", t: 2, a: 2, b: 6, expected: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mix(tt.t, tt.a, tt.b)
			if got != tt.expected {
				t.Fatalf("Mix() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestFlushDenormals(t *testing.T) {
	if FlushDenormals(1e-31) != 0 {
		t.Fatal("expected denormal-range value to flush to zero")
	}
	if FlushDenormals(1e-20) == 0 {
		t.Fatal("expected normal value to survive")
	}
}

func TestFinite(t *testing.T) {
	if !Finite(1.5) {
		t.Fatal("expected 1.5 to be finite")
	}
	if Finite(math.NaN()) || Finite(math.Inf(1)) || Finite(math.Inf(-1)) {
		t.Fatal("expected NaN/Inf to be non-finite")
	}
}
