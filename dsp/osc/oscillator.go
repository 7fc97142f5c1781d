// Package osc generates periodic audio-rate signals from a user-supplied
// shaping function.
//
// An Oscillator owns its phase, a smoothed frequency ramp and a scratch
// buffer sized at prepare time, so both the single-sample and the block
// processing paths run without allocation. The shaping function can be
// evaluated directly or through a fixed-resolution lookup table built at
// initialisation.
package osc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-osc/dsp/block"
	"github.com/cwbudde/algo-osc/dsp/core"
	"github.com/cwbudde/algo-osc/dsp/lookup"
	"github.com/cwbudde/algo-osc/dsp/ramp"
)

const (
	twoPi = 2 * math.Pi

	// defaultFrequencyHz is the target frequency before any SetFrequency
	// call.
	defaultFrequencyHz = 440.0

	// frequencyRampSeconds is the smoothing window re-armed by Reset.
	frequencyRampSeconds = 0.05
)

// Shaper maps a phase argument in [-pi, pi] to a sample value. It must be
// pure; it is called once per output sample in the direct evaluation path.
type Shaper func(x float64) float64

// Oscillator renders a periodic shaping function at a smoothly changing
// frequency. The zero value is an uninitialised oscillator; call Initialise
// (or construct with New) and Prepare before processing.
//
// An Oscillator is not safe for concurrent use; callers serialize access or
// use one instance per rendering context.
type Oscillator struct {
	generator Shaper
	table     *lookup.Table
	freq      *ramp.Linear

	scratch    []float64
	sampleRate float64
	phase      float64
}

// Option mutates construction parameters.
type Option func(*settings) error

type settings struct {
	tableSize   int
	frequencyHz float64
}

// WithTableSize approximates the shaping function with a lookup table of the
// given resolution. Zero (the default) keeps direct evaluation.
func WithTableSize(numPoints int) Option {
	return func(s *settings) error {
		if numPoints < 0 {
			return fmt.Errorf("osc: table size must be >= 0: %d", numPoints)
		}
		s.tableSize = numPoints
		return nil
	}
}

// WithFrequency sets the initial frequency in Hz, applied without smoothing.
func WithFrequency(hz float64) Option {
	return func(s *settings) error {
		if math.IsNaN(hz) || math.IsInf(hz, 0) {
			return fmt.Errorf("osc: frequency must be finite: %f", hz)
		}
		s.frequencyHz = hz
		return nil
	}
}

// New returns an initialised oscillator for the given shaping function,
// with a 48 kHz default sample rate until Prepare is called.
func New(fn Shaper, opts ...Option) (*Oscillator, error) {
	s := settings{frequencyHz: defaultFrequencyHz}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&s); err != nil {
			return nil, err
		}
	}

	o := &Oscillator{
		freq:       ramp.NewLinear(s.frequencyHz),
		sampleRate: core.DefaultProcessorConfig().SampleRate,
	}
	if err := o.Initialise(fn, s.tableSize); err != nil {
		return nil, err
	}
	return o, nil
}

// Initialise installs a shaping function, replacing any previous generator
// and lookup table. A tableSize of zero evaluates fn directly on every
// sample; a positive tableSize pre-samples fn over exactly [-pi, pi] and
// routes evaluation through interpolated lookup. This is the only operation
// besides Prepare that allocates.
func (o *Oscillator) Initialise(fn Shaper, tableSize int) error {
	if fn == nil {
		return fmt.Errorf("osc: shaping function must not be nil")
	}
	if tableSize < 0 {
		return fmt.Errorf("osc: table size must be >= 0: %d", tableSize)
	}

	if tableSize > 0 {
		table, err := lookup.New(fn, -math.Pi, math.Pi, tableSize)
		if err != nil {
			return fmt.Errorf("osc: lookup table: %w", err)
		}
		o.table = table
		o.generator = table.Value
	} else {
		o.table = nil
		o.generator = fn
	}

	o.frequencyRamp()
	return nil
}

// IsInitialised reports whether a shaping function has been installed.
func (o *Oscillator) IsInitialised() bool {
	return o.generator != nil
}

// SetFrequency sets the target frequency in Hz. The change is smoothed over
// the ramp window unless force is true. Any numeric value is accepted:
// negative frequencies run the phase backwards, zero holds a constant
// output.
func (o *Oscillator) SetFrequency(hz float64, force bool) {
	o.frequencyRamp().SetValue(hz, force)
}

// Frequency returns the target frequency, i.e. the value most recently
// requested via SetFrequency, not the instantaneous ramped value.
func (o *Oscillator) Frequency() float64 {
	return o.frequencyRamp().TargetValue()
}

// Prepare records the sample rate, sizes the scratch buffer for blocks of
// up to cfg.BlockSize samples and resets the oscillator. It must be called
// before processing; Process calls with longer blocks violate the contract
// and panic on the scratch bounds.
func (o *Oscillator) Prepare(cfg core.ProcessorConfig) {
	o.sampleRate = cfg.SampleRate
	o.scratch = core.EnsureLen(o.scratch, cfg.BlockSize)
	o.Reset()
}

// Reset rewinds the phase to zero. With a valid sample rate it also re-arms
// the frequency ramp, so the next frequency change is approached over the
// standard ramp window from the current target; without one the ramp is
// left untouched.
func (o *Oscillator) Reset() {
	o.phase = 0

	if o.sampleRate > 0 {
		o.frequencyRamp().Reset(o.sampleRate, frequencyRampSeconds)
	}
}

// ProcessSample computes and returns one output sample, advancing the phase
// and the frequency ramp by one step. It panics if the oscillator has not
// been initialised.
func (o *Oscillator) ProcessSample() float64 {
	if o.generator == nil {
		panic("osc: ProcessSample called before Initialise")
	}

	// Same expression shape as the block path, so single-sample and block
	// processing round identically.
	increment := (twoPi / o.sampleRate) * o.freq.NextValue()
	value := o.generator(o.phase - math.Pi)
	o.phase = core.WrapPhase(o.phase + increment)

	return value
}

// Process fills every channel of the context's output block. The oscillator
// is output-only: a context carrying a separate, non-empty input block is a
// contract violation and panics, as does calling Process before Initialise.
//
// While the frequency ramp is smoothing, the phase trajectory for the block
// is computed once into the scratch buffer and shared across channels, so
// the ramp advances exactly once per sample. Once the ramp has settled, the
// per-sample increment is constant: each channel walks its own copy of the
// phase and the master phase advances once at the end of the block. Both
// branches produce the same samples as the equivalent run of ProcessSample
// calls.
func (o *Oscillator) Process(ctx *block.Context) {
	if o.generator == nil {
		panic("osc: Process called before Initialise")
	}
	if ctx.UsesSeparateInputAndOutputBlocks() && ctx.InputBlock().NumChannels() != 0 {
		panic("osc: generator is output-only, input block must be empty")
	}

	out := ctx.OutputBlock()
	numSamples := out.NumSamples()
	numChannels := out.NumChannels()
	baseIncrement := twoPi / o.sampleRate

	if o.freq.IsSmoothing() {
		phases := o.scratch[:numSamples]

		for i := range phases {
			phases[i] = o.phase - math.Pi
			o.phase = core.WrapPhase(o.phase + baseIncrement*o.freq.NextValue())
		}

		for ch := 0; ch < numChannels; ch++ {
			dst := out.Channel(ch)
			for i, x := range phases {
				dst[i] = o.generator(x)
			}
		}
		return
	}

	increment := baseIncrement * o.freq.NextValue()

	for ch := 0; ch < numChannels; ch++ {
		dst := out.Channel(ch)
		phase := o.phase
		for i := 0; i < numSamples; i++ {
			dst[i] = o.generator(phase - math.Pi)
			phase = core.WrapPhase(phase + increment)
		}
	}

	o.phase = core.WrapPhase(o.phase + increment*float64(numSamples))
}

// frequencyRamp lazily creates the ramp so the zero value stays usable.
func (o *Oscillator) frequencyRamp() *ramp.Linear {
	if o.freq == nil {
		o.freq = ramp.NewLinear(defaultFrequencyHz)
	}
	return o.freq
}
