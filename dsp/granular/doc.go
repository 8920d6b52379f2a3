// Package granular renders audio in fixed 128-sample blocks using
// two-voice granular synthesis.
//
// An [Engine] owns a host-filled source waveform and two independent
// voices. Each voice schedules short overlapping grains out of a
// selection window over the waveform: a grain is an enveloped,
// speed-ratio-resampled read that lives for a fixed number of output
// samples. Per block, each voice advances its grains sample by sample,
// sums them, runs the result through its own lowpass filter, and the
// gain-scaled voices are summed into the output block.
//
// The render path is allocation-free and never fails: degenerate
// parameters (empty selection, non-positive grain size, out-of-range
// cutoff) degrade to skipped spawns or silence for the affected voice.
// Grain slots come from a fixed-capacity arena; when a voice's arena is
// full, new spawns are dropped until a grain expires, so density
// degrades instead of memory growing.
//
// An Engine is not safe for concurrent use. Render calls must be
// sequential, and the waveform may only be replaced between calls.
package granular
