package granular

// maxVoiceGrains bounds how many grains a voice can play at once. The
// arena is fixed so the render path stays allocation-free; spawns that
// find no free slot are dropped.
const maxVoiceGrains = 64

// grain is one slot in a voice's arena: a time-bounded, enveloped read
// head over the source waveform. A slot is recycled the same sample its
// grain expires.
type grain struct {
	active bool
	pos    float64 // fractional source position
	speed  float64 // source samples per output sample
	age    int     // elapsed output samples
	dur    int     // total duration in output samples
}
