// Command graindemo renders a granular texture to a WAV file.
//
// It generates a source waveform (a sine with a little noise on top),
// sweeps the selection window and filter cutoffs across the rendered
// duration, and writes the mono result as 16-bit PCM.
//
// Usage:
//
//	graindemo [flags]
//
// Examples:
//
//	graindemo -o texture.wav
//	graindemo -seconds 10 -seed 7 -o long.wav
package main

import (
	"flag"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-granular/dsp/core"
	"github.com/cwbudde/algo-granular/dsp/granular"
	"github.com/cwbudde/algo-granular/dsp/signal"
)

func main() {
	var (
		outPath    = flag.String("o", "graindemo.wav", "output WAV path")
		seconds    = flag.Float64("seconds", 5, "rendered duration in seconds")
		sampleRate = flag.Float64("rate", 44100, "sample rate in Hz")
		seed       = flag.Int64("seed", 1, "grain jitter random seed")
	)
	flag.Parse()

	if *seconds <= 0 {
		log.Fatalf("graindemo: seconds must be > 0: %f", *seconds)
	}

	rendered, err := renderTexture(*sampleRate, *seconds, *seed)
	if err != nil {
		log.Fatalf("graindemo: %v", err)
	}

	if err := writeWAV(*outPath, rendered, int(*sampleRate)); err != nil {
		log.Fatalf("graindemo: %v", err)
	}

	log.Printf("wrote %d samples to %s", len(rendered), *outPath)
}

func renderTexture(sampleRate, seconds float64, seed int64) ([]float64, error) {
	gen := signal.NewGenerator(
		[]core.ProcessorOption{core.WithSampleRate(sampleRate)},
		signal.WithSeed(seed),
	)

	waveLen := int(2 * sampleRate)

	tone, err := gen.Sine(220, 0.8, waveLen)
	if err != nil {
		return nil, err
	}

	noise, err := gen.WhiteNoise(0.05, waveLen)
	if err != nil {
		return nil, err
	}

	for i := range tone {
		tone[i] += noise[i]
	}

	engine, err := granular.New(core.WithSampleRate(sampleRate))
	if err != nil {
		return nil, err
	}

	if err := engine.SetWaveform(tone); err != nil {
		return nil, err
	}

	engine.SetRandomSeed(seed)

	// Block-rate smoothing keeps the swept cutoffs free of zipper noise.
	cutoff1, err := core.NewSmoother(0.9)
	if err != nil {
		return nil, err
	}
	cutoff2, err := core.NewSmoother(0.9)
	if err != nil {
		return nil, err
	}

	cutoff1.Reset(2000)
	cutoff2.Reset(600)

	blocks := int(seconds * sampleRate / granular.BlockSize)
	out := make([]float64, 0, blocks*granular.BlockSize)

	for b := range blocks {
		phase := float64(b) / float64(blocks)

		cutoff1.SetTarget(800 + 3200*math.Abs(math.Sin(2*math.Pi*phase)))
		cutoff2.SetTarget(300 + 900*phase)

		// Drift the selection window across the source.
		selStart := phase * float64(waveLen) * 0.5
		selEnd := selStart + float64(waveLen)*0.25

		block := engine.Render(granular.RenderParams{
			SelectionStart: selStart,
			SelectionEnd:   selEnd,
			GrainSize:      sampleRate * 0.06,
			SlopeLength:    sampleRate * 0.012,
			SlopeLinearity: 0.2,
			Voices: [2]granular.VoiceParams{
				{
					FilterCutoff:  cutoff1.Next(),
					Movement:      0.5,
					SpeedRatio:    1,
					GrainInterval: sampleRate * 0.02,
					Gain:          0.6,
					Jitter:        sampleRate * 0.01,
				},
				{
					FilterCutoff:  cutoff2.Next(),
					Movement:      -0.25,
					SpeedRatio:    0.5,
					GrainInterval: sampleRate * 0.035,
					Gain:          0.4,
					Jitter:        sampleRate * 0.02,
				},
			},
		})

		out = append(out, block...)
	}

	return out, nil
}

func writeWAV(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(core.Clamp(s, -1, 1) * 32767)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return err
	}

	return enc.Close()
}
