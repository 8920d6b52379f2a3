package granular

import (
	"math"

	"github.com/cwbudde/algo-granular/dsp/core"
	"github.com/cwbudde/algo-granular/dsp/envelope"
	"github.com/cwbudde/algo-granular/dsp/filter/biquad"
	"github.com/cwbudde/algo-granular/dsp/interp"
)

// voice is one independent grain-scheduling pipeline: a grain arena, a
// scan position into the selection window, a spawn countdown, and a
// lowpass filter with its own delay state.
type voice struct {
	grains    [maxVoiceGrains]grain
	scanPos   float64 // offset in [0, selection length)
	countdown int
	filter    biquad.Section
}

func (v *voice) reset() {
	for i := range v.grains {
		v.grains[i] = grain{}
	}

	v.scanPos = 0
	v.countdown = 1
	v.filter = biquad.Section{}
}

func (v *voice) activeGrains() int {
	n := 0
	for i := range v.grains {
		if v.grains[i].active {
			n++
		}
	}

	return n
}

// renderBlock produces one block of raw voice output into dst. The
// filter coefficients are fixed for the block; bypass skips the filter
// stage entirely (cutoff at or above Nyquist).
func (v *voice) renderBlock(dst, wave []float64, p voiceBlock, c biquad.Coefficients, bypass bool, rng RandomSource) {
	v.filter.Coefficients = c

	for i := range dst {
		raw := v.step(wave, p, rng)
		if bypass {
			dst[i] = raw
			continue
		}

		dst[i] = v.filter.ProcessSample(raw)
	}

	if !bypass {
		st := v.filter.State()
		v.filter.SetState([2]float64{
			core.FlushDenormals(st[0]),
			core.FlushDenormals(st[1]),
		})
	}
}

// step advances the voice by one output sample and returns the raw
// (pre-filter, pre-gain) overlap-add sum of its grains.
func (v *voice) step(wave []float64, p voiceBlock, rng RandomSource) float64 {
	v.countdown--
	if v.countdown <= 0 {
		if p.spawn {
			v.spawnGrain(p, rng)
		}

		v.countdown = p.interval
	}

	if p.selLen > 0 {
		v.scanPos = wrap(v.scanPos+p.movement, p.selLen)
	}

	sum := 0.0

	for i := range v.grains {
		g := &v.grains[i]
		if !g.active {
			continue
		}

		if p.readable {
			env := envelope.Gain(g.age, g.dur, p.slopeLen, p.linearity)
			sum += interp.ReadLinear(wave, g.pos) * env
		}

		g.pos += g.speed

		g.age++
		if g.age >= g.dur {
			g.active = false
		}
	}

	return sum
}

// spawnGrain claims a free arena slot and starts a grain at the scan
// position plus jitter, clamped into the selection window. A full arena
// drops the spawn.
func (v *voice) spawnGrain(p voiceBlock, rng RandomSource) {
	slot := -1

	for i := range v.grains {
		if !v.grains[i].active {
			slot = i
			break
		}
	}

	if slot < 0 {
		return
	}

	pos := p.selStart + v.scanPos
	if p.jitter > 0 {
		pos += (rng.Float64()*2 - 1) * p.jitter
	}

	// The selection window is half-open: a grain may start arbitrarily
	// close to the end but never on it.
	end := p.selStart + p.selLen
	pos = core.Clamp(pos, p.selStart, math.Nextafter(end, p.selStart))

	v.grains[slot] = grain{
		active: true,
		pos:    pos,
		speed:  p.speed,
		dur:    p.grainDur,
	}
}

// wrap folds x into [0, length) for a positive length.
func wrap(x, length float64) float64 {
	m := math.Mod(x, length)
	if m < 0 {
		m += length
	}

	return m
}
