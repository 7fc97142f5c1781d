// Package gain applies a smoothed output gain to samples and blocks,
// click-free under automation.
package gain

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-osc/dsp/block"
	"github.com/cwbudde/algo-osc/dsp/core"
	"github.com/cwbudde/algo-osc/dsp/ramp"
)

const defaultRampSeconds = 0.05

// Smoothed is a gain stage whose level changes are interpolated over a ramp
// window. The block path is vectorized; after Prepare it is allocation-free.
//
// A Smoothed is not safe for concurrent use.
type Smoothed struct {
	level       *ramp.Linear
	scratch     []float64
	sampleRate  float64
	rampSeconds float64
}

// Option mutates construction parameters.
type Option func(*Smoothed) error

// WithRampSeconds sets the smoothing window for gain changes.
func WithRampSeconds(seconds float64) Option {
	return func(s *Smoothed) error {
		if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			return fmt.Errorf("gain: ramp seconds must be > 0 and finite: %f", seconds)
		}
		s.rampSeconds = seconds
		return nil
	}
}

// WithInitialGain sets the starting linear gain (default 1).
func WithInitialGain(g float64) Option {
	return func(s *Smoothed) error {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return fmt.Errorf("gain: initial gain must be finite: %f", g)
		}
		s.level = ramp.NewLinear(g)
		return nil
	}
}

// New returns a unity-gain stage with practical defaults and optional
// overrides.
func New(opts ...Option) (*Smoothed, error) {
	s := &Smoothed{
		level:       ramp.NewLinear(1),
		sampleRate:  core.DefaultProcessorConfig().SampleRate,
		rampSeconds: defaultRampSeconds,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Prepare records the sample rate, sizes the coefficient scratch buffer for
// blocks of up to cfg.BlockSize samples and resets the ramp.
func (s *Smoothed) Prepare(cfg core.ProcessorConfig) {
	s.sampleRate = cfg.SampleRate
	s.scratch = core.EnsureLen(s.scratch, cfg.BlockSize)
	s.Reset()
}

// Reset re-arms the gain ramp at the configured window, snapping the level
// onto its target.
func (s *Smoothed) Reset() {
	if s.sampleRate > 0 {
		s.level.Reset(s.sampleRate, s.rampSeconds)
	}
}

// SetGainLinear sets the target linear gain, smoothed unless force is true.
func (s *Smoothed) SetGainLinear(g float64, force bool) {
	s.level.SetValue(g, force)
}

// SetGainDecibels sets the target gain in dB (20*log10 convention),
// smoothed unless force is true.
func (s *Smoothed) SetGainDecibels(db float64, force bool) {
	s.level.SetValue(DecibelsToGain(db), force)
}

// GainLinear returns the target linear gain.
func (s *Smoothed) GainLinear() float64 {
	return s.level.TargetValue()
}

// GainDecibels returns the target gain in dB.
func (s *Smoothed) GainDecibels() float64 {
	return GainToDecibels(s.level.TargetValue())
}

// IsSmoothing reports whether the level is still ramping.
func (s *Smoothed) IsSmoothing() bool {
	return s.level.IsSmoothing()
}

// ProcessSample scales one sample, advancing the ramp by one step.
func (s *Smoothed) ProcessSample(x float64) float64 {
	return x * s.level.NextValue()
}

// Process scales the context's input block into its output block. While the
// ramp is smoothing, the per-sample coefficients are computed once into the
// scratch buffer and shared across channels, so the ramp advances once per
// sample; settled, a single coefficient scales every channel. Blocks longer
// than the prepared maximum violate the contract and panic on the scratch
// bounds.
func (s *Smoothed) Process(ctx *block.Context) {
	in := ctx.InputBlock()
	out := ctx.OutputBlock()

	numSamples := out.NumSamples()
	numChannels := out.NumChannels()
	if in.NumChannels() < numChannels {
		numChannels = in.NumChannels()
	}

	if s.level.IsSmoothing() {
		coeffs := s.scratch[:numSamples]
		for i := range coeffs {
			coeffs[i] = s.level.NextValue()
		}
		for ch := 0; ch < numChannels; ch++ {
			vecmath.MulBlock(out.Channel(ch), in.Channel(ch), coeffs)
		}
		return
	}

	g := s.level.NextValue()
	for ch := 0; ch < numChannels; ch++ {
		vecmath.ScaleBlock(out.Channel(ch), in.Channel(ch), g)
	}
}

// DecibelsToGain converts dB to linear amplitude (20*log10 convention).
func DecibelsToGain(db float64) float64 {
	return mathPow10(db / 20)
}

// GainToDecibels converts linear amplitude to dB. Returns -Inf for zero and
// NaN for negative gains.
func GainToDecibels(g float64) float64 {
	if g < 0 {
		return math.NaN()
	}
	if g == 0 {
		return math.Inf(-1)
	}
	return 20 * mathLog10(g)
}
