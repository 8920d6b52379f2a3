// Package buffer provides a reusable float64 sample buffer with
// explicit resize semantics. The granular engine stores its host-filled
// waveform in a Buffer: the host requests a region of a given length,
// fills it, and the engine reads it as a plain []float64 during render.
// [Pool] recycles Buffers for hosts that churn through many of them.
package buffer
