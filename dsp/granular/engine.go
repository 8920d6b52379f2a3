package granular

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-granular/dsp/buffer"
	"github.com/cwbudde/algo-granular/dsp/core"
	"github.com/cwbudde/algo-granular/dsp/filter/biquad"
	"github.com/cwbudde/algo-granular/dsp/filter/design"
)

const (
	// BlockSize is the fixed number of samples produced per Render call.
	BlockSize = 128

	numVoices = 2

	defaultSeed = 1

	// maxWaveformSamples caps host waveform requests (~25 minutes of
	// mono audio at 44.1 kHz).
	maxWaveformSamples = 1 << 26
)

// Engine is a two-voice granular synthesizer rendering fixed-size
// blocks from a host-supplied waveform.
//
// All scheduling state (scan positions, spawn countdowns, live grains,
// filter delay lines) persists across Render calls; a block continues
// from wherever the previous one left off. Not thread-safe.
type Engine struct {
	cfg      core.ProcessorConfig
	waveform *buffer.Buffer
	voices   [numVoices]voice

	out      []float64
	voiceBuf []float64
	mixBuf   []float64

	rng       RandomSource
	seed      int64
	customRNG bool
}

// New creates an engine with two silent voices and no waveform. The
// block size is fixed at BlockSize; only the sample rate is
// configurable.
func New(opts ...core.ProcessorOption) (*Engine, error) {
	cfg := core.ApplyProcessorOptions(opts...)

	if cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0) {
		return nil, fmt.Errorf("granular sample rate must be > 0: %f", cfg.SampleRate)
	}

	if cfg.BlockSize != BlockSize {
		return nil, fmt.Errorf("granular block size is fixed at %d: %d", BlockSize, cfg.BlockSize)
	}

	engine := &Engine{
		cfg:      cfg,
		waveform: buffer.New(0),
		out:      make([]float64, BlockSize),
		voiceBuf: make([]float64, BlockSize),
		mixBuf:   make([]float64, BlockSize),
		seed:     defaultSeed,
		rng:      newSeededSource(defaultSeed),
	}

	for i := range engine.voices {
		engine.voices[i].reset()
	}

	return engine, nil
}

// SampleRate returns the configured sample rate in Hz.
func (e *Engine) SampleRate() float64 { return e.cfg.SampleRate }

// WaveformLen returns the current waveform length in samples.
func (e *Engine) WaveformLen() int { return e.waveform.Len() }

// WaveformBuffer resizes the engine-owned waveform to length samples
// and returns the writable region for the host to fill. Previous
// contents up to the new length are kept. Must not be called while a
// Render call is in flight.
func (e *Engine) WaveformBuffer(length int) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("granular waveform length must be > 0: %d", length)
	}

	if length > maxWaveformSamples {
		return nil, fmt.Errorf("granular waveform length must be <= %d: %d", maxWaveformSamples, length)
	}

	e.waveform.Resize(length)

	return e.waveform.Samples(), nil
}

// SetWaveform replaces the waveform with a copy of samples.
func (e *Engine) SetWaveform(samples []float64) error {
	dst, err := e.WaveformBuffer(len(samples))
	if err != nil {
		return err
	}

	core.CopyInto(dst, samples)

	return nil
}

// SetRandomSeed seeds the built-in jitter source for deterministic
// grain placement and resets all voice state.
func (e *Engine) SetRandomSeed(seed int64) {
	e.seed = seed
	e.customRNG = false
	e.Reset()
}

// SetRandomSource replaces the jitter source with a custom one. The
// source survives Reset.
func (e *Engine) SetRandomSource(src RandomSource) {
	if src == nil {
		return
	}

	e.rng = src
	e.customRNG = true
}

// Reset returns all voices to their initial silent state, clears the
// output block, and rewinds the built-in random source. The waveform is
// kept.
func (e *Engine) Reset() {
	for i := range e.voices {
		e.voices[i].reset()
	}

	core.Zero(e.out)

	if !e.customRNG {
		e.rng = newSeededSource(e.seed)
	}
}

// Render produces one block of output and returns the engine-owned
// block, valid until the next Render call. It never fails: malformed
// parameters degrade to skipped spawns or silent voice contributions.
func (e *Engine) Render(p RenderParams) []float64 {
	e.RenderTo(e.out, p)
	return e.out
}

// RenderTo renders one block into dst, which must hold at least
// BlockSize samples; extra samples are left untouched. A short dst is
// ignored rather than panicking, keeping the render path total.
func (e *Engine) RenderTo(dst []float64, p RenderParams) {
	if len(dst) < BlockSize {
		return
	}

	dst = dst[:BlockSize]
	wave := e.waveform.Samples()

	for i := range e.voices {
		vp := p.Voices[i]
		bp := sanitizeVoiceBlock(p, vp, len(wave))
		coeffs, bypass := e.voiceFilter(vp.FilterCutoff)

		e.voices[i].renderBlock(e.voiceBuf, wave, bp, coeffs, bypass, e.rng)

		gain := finiteOr(vp.Gain, 0)

		if i == 0 {
			vecmath.ScaleBlock(dst, e.voiceBuf, gain)
		} else {
			vecmath.ScaleBlock(e.mixBuf, e.voiceBuf, gain)
			vecmath.AddBlockInPlace(dst, e.mixBuf)
		}
	}
}

// voiceFilter maps the block's cutoff parameter onto filter
// coefficients. A finite cutoff at or above Nyquist leaves the lowpass
// fully open and bypasses the filter stage; non-positive or non-finite
// cutoffs yield zero coefficients, silencing the voice for the block.
func (e *Engine) voiceFilter(cutoff float64) (biquad.Coefficients, bool) {
	if core.Finite(cutoff) && cutoff >= e.cfg.SampleRate/2 {
		return biquad.Coefficients{}, true
	}

	return design.Lowpass(cutoff, 0, e.cfg.SampleRate), false
}
