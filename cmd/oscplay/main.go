// Command oscplay renders a catalog shaper through the speakers.
//
// Usage:
//
//	oscplay [flags]
//
// Examples:
//
//	oscplay -shape sine -freq 440
//	oscplay -shape sawtooth -freq 110 -level -18 -dur 3s
//	oscplay -shape triangle -freq 220 -glide 880
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/cwbudde/algo-osc/dsp/core"
	"github.com/cwbudde/algo-osc/dsp/gain"
	"github.com/cwbudde/algo-osc/dsp/osc"
	"github.com/cwbudde/algo-osc/dsp/signal"
)

const sampleRate = 48000

// streamer adapts an oscillator plus gain stage to beep's Streamer. Both
// stereo channels carry the same mono signal. All calls happen on the
// speaker's streaming goroutine, so the single-threaded contract of the
// processing types holds.
type streamer struct {
	osc  *osc.Oscillator
	gain *gain.Smoothed
}

func (s *streamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := s.gain.ProcessSample(s.osc.ProcessSample())
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (s *streamer) Err() error { return nil }

func main() {
	shape := flag.String("shape", "sine", "shaper name (see oscinfo -list)")
	freq := flag.Float64("freq", 440, "frequency in Hz")
	glide := flag.Float64("glide", 0, "glide to this frequency over the second half (0 = off)")
	level := flag.Float64("level", -12, "output level in dB")
	table := flag.Int("table", 0, "lookup table resolution (0 = direct evaluation)")
	dur := flag.Duration("dur", 2*time.Second, "playback duration")
	flag.Parse()

	if err := run(*shape, *freq, *glide, *level, *table, *dur); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(shape string, freq, glide, level float64, table int, dur time.Duration) error {
	fn, err := signal.ShaperByName(shape)
	if err != nil {
		return err
	}

	o, err := osc.New(fn, osc.WithTableSize(table))
	if err != nil {
		return err
	}
	g, err := gain.New(gain.WithRampSeconds(0.01))
	if err != nil {
		return err
	}

	cfg := core.ProcessorConfig{SampleRate: sampleRate, BlockSize: 512}
	o.Prepare(cfg)
	g.Prepare(cfg)
	o.SetFrequency(freq, true)
	g.SetGainDecibels(level, true)

	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return err
	}

	src := &streamer{osc: o, gain: g}
	half := sr.N(dur / 2)
	done := make(chan struct{})

	parts := []beep.Streamer{beep.Take(half, src)}
	if glide != 0 {
		// The callback runs on the streaming goroutine, between samples,
		// so the frequency change rides the smoothing ramp glitch-free.
		parts = append(parts, beep.Callback(func() {
			o.SetFrequency(glide, false)
		}))
	}
	parts = append(parts,
		beep.Take(half, src),
		beep.Callback(func() { close(done) }),
	)

	speaker.Play(beep.Seq(parts...))
	<-done
	return nil
}
