package design

import (
	"math"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-granular/dsp/filter/biquad"
	"github.com/cwbudde/algo-granular/internal/testutil"
)

func TestLowpassRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name       string
		freq       float64
		sampleRate float64
	}{
		{name: "zero freq", freq: 0, sampleRate: 44100},
		{name: "negative freq", freq: -100, sampleRate: 44100},
		{name: "at nyquist", freq: 22050, sampleRate: 44100},
		{name: "above nyquist", freq: 30000, sampleRate: 44100},
		{name: "nan freq", freq: math.NaN(), sampleRate: 44100},
		{name: "inf freq", freq: math.Inf(1), sampleRate: 44100},
		{name: "zero rate", freq: 1000, sampleRate: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lowpass(tt.freq, 0, tt.sampleRate); got != (biquad.Coefficients{}) {
				t.Fatalf("Lowpass() = %+v, want zero coefficients", got)
			}
		})
	}
}

func TestLowpassDCGainIsUnity(t *testing.T) {
	for _, freq := range []float64{100, 1000, 10000} {
		c := Lowpass(freq, 0, 44100)

		// H(1) = (B0+B1+B2) / (1+A1+A2)
		dc := (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
		if math.Abs(dc-1) > 1e-9 {
			t.Fatalf("cutoff %v: DC gain = %v, want 1", freq, dc)
		}
	}
}

func TestHighpassNyquistGainIsUnity(t *testing.T) {
	for _, freq := range []float64{100, 1000, 10000} {
		c := Highpass(freq, 0, 44100)

		// H(-1) = (B0-B1+B2) / (1-A1+A2)
		ny := (c.B0 - c.B1 + c.B2) / (1 - c.A1 + c.A2)
		if math.Abs(ny-1) > 1e-9 {
			t.Fatalf("cutoff %v: Nyquist gain = %v, want 1", freq, ny)
		}
	}
}

func TestDefaultQUsedForNonPositiveQ(t *testing.T) {
	a := Lowpass(1000, 0, 44100)
	b := Lowpass(1000, DefaultQ, 44100)
	if a != b {
		t.Fatalf("q=0 should match explicit Butterworth Q: %+v vs %+v", a, b)
	}
}

func TestLowpassConvergesToDCInput(t *testing.T) {
	section := biquad.NewSection(Lowpass(500, 0, 44100))

	var y float64
	for _, x := range testutil.DC(0.25, 4096) {
		y = section.ProcessSample(x)
	}

	if math.Abs(y-0.25) > 1e-9 {
		t.Fatalf("steady-state output = %v, want DC input 0.25", y)
	}
}

// TestLowpassMagnitudeResponse measures the filter's impulse response
// and checks its spectrum: unity in the passband, strongly attenuated
// an octave and more above cutoff.
func TestLowpassMagnitudeResponse(t *testing.T) {
	const (
		sampleRate = 44100.0
		cutoff     = 1000.0
		fftSize    = 8192
	)

	section := biquad.NewSection(Lowpass(cutoff, 0, sampleRate))

	impulse := testutil.Impulse(fftSize, 0)
	section.ProcessBlock(impulse)

	in := make([]complex128, fftSize)
	for i, v := range impulse {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		t.Fatalf("NewPlan64() error = %v", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	binAt := func(freq float64) int {
		return int(math.Round(freq * fftSize / sampleRate))
	}

	passband := math.Abs(real(out[0]))
	if math.Abs(passband-1) > 1e-3 {
		t.Fatalf("DC magnitude = %v, want ~1", passband)
	}

	atCutoff := math.Hypot(real(out[binAt(cutoff)]), imag(out[binAt(cutoff)]))
	if math.Abs(atCutoff-math.Sqrt2/2) > 0.05 {
		t.Fatalf("cutoff magnitude = %v, want ~-3 dB (0.707)", atCutoff)
	}

	octaveUp := math.Hypot(real(out[binAt(4*cutoff)]), imag(out[binAt(4*cutoff)]))
	if octaveUp > 0.1 {
		t.Fatalf("two octaves above cutoff magnitude = %v, want < 0.1", octaveUp)
	}
}
