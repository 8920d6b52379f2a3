package granular

import (
	"math"

	"github.com/cwbudde/algo-granular/dsp/core"
)

// VoiceParams carries the per-voice control values for one render call.
// All fields are required; there are no defaults.
type VoiceParams struct {
	// FilterCutoff is the voice lowpass cutoff in Hz. Values at or
	// above Nyquist leave the voice unfiltered; values at or below 0
	// (or non-finite) silence the voice's filter stage.
	FilterCutoff float64

	// Movement advances the voice's scan position by this many source
	// samples per output sample. The scan position wraps inside the
	// selection window.
	Movement float64

	// SpeedRatio is the grain playback ratio: 1 plays at source speed,
	// values below 1 stretch, negative values play in reverse.
	SpeedRatio float64

	// GrainInterval is the number of output samples between grain
	// spawns. Values below 1 are clamped to 1.
	GrainInterval float64

	// Gain scales the voice's filtered output.
	Gain float64

	// Jitter is the grain start randomness in samples: each spawn
	// offsets its start position by a uniform value in [-Jitter, +Jitter].
	Jitter float64
}

// RenderParams carries the full control set for one render call.
// Values are used as-is for the whole 128-sample block.
type RenderParams struct {
	// SelectionStart and SelectionEnd bound the half-open sample-index
	// range [start, end) grains are drawn from. An empty window stops
	// new grains from spawning; live grains still finish.
	SelectionStart float64
	SelectionEnd   float64

	// GrainSize is the duration of newly spawned grains in output
	// samples. Changing it mid-stream affects only future grains.
	GrainSize float64

	// SlopeLength is the grain envelope edge length in samples;
	// SlopeLinearity blends the edge shape between raised-cosine (0)
	// and linear (1).
	SlopeLength    float64
	SlopeLinearity float64

	Voices [2]VoiceParams
}

// voiceBlock is the sanitized per-voice view of RenderParams used for
// one block. Degenerate inputs are folded into the spawn/readable flags
// here so the per-sample loop stays branch-light and panic-free.
type voiceBlock struct {
	selStart  float64
	selLen    float64
	grainDur  int
	slopeLen  float64
	linearity float64
	movement  float64
	speed     float64
	interval  int
	jitter    float64
	spawn     bool
	readable  bool
}

const maxCount = float64(math.MaxInt32)

func finiteOr(v, fallback float64) float64 {
	if !core.Finite(v) {
		return fallback
	}

	return v
}

func sanitizeVoiceBlock(p RenderParams, vp VoiceParams, waveLen int) voiceBlock {
	limit := float64(waveLen)

	selStart := core.Clamp(finiteOr(p.SelectionStart, 0), 0, limit)
	selEnd := core.Clamp(finiteOr(p.SelectionEnd, 0), 0, limit)

	selLen := selEnd - selStart
	if selLen < 0 {
		selLen = 0
	}

	grainDur := int(core.Clamp(math.Round(finiteOr(p.GrainSize, 0)), 0, maxCount))
	interval := int(core.Clamp(math.Round(finiteOr(vp.GrainInterval, 1)), 1, maxCount))

	jitter := finiteOr(vp.Jitter, 0)
	if jitter < 0 {
		jitter = 0
	}

	readable := waveLen >= 2

	return voiceBlock{
		selStart:  selStart,
		selLen:    selLen,
		grainDur:  grainDur,
		slopeLen:  finiteOr(p.SlopeLength, 0),
		linearity: finiteOr(p.SlopeLinearity, 1),
		movement:  finiteOr(vp.Movement, 0),
		speed:     finiteOr(vp.SpeedRatio, 0),
		interval:  interval,
		jitter:    jitter,
		spawn:     readable && selLen > 0 && grainDur >= 1,
		readable:  readable,
	}
}
