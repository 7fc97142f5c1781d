// Package spectrum computes magnitude spectra of rendered waveforms. It is
// offline analysis tooling: the oscillator tests and the info CLI use it to
// verify waveform purity and to bound table-approximation error.
package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// fftPlan is the slice of the FFT backend this package relies on.
type fftPlan interface {
	Forward(dst, src []complex128) error
}

// Analyzer owns an FFT plan plus reusable scratch for repeated analysis at
// one FFT size. Magnitudes runs allocation-free once constructed.
type Analyzer struct {
	fftSize int
	plan    fftPlan

	in  []complex128
	out []complex128
	re  []float64
	im  []float64
}

// NewAnalyzer creates an analyzer for the given power-of-two FFT size.
func NewAnalyzer(fftSize int) (*Analyzer, error) {
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("spectrum: fft size must be a power of two >= 2: %d", fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	bins := fftSize/2 + 1
	return &Analyzer{
		fftSize: fftSize,
		plan:    plan,
		in:      make([]complex128, fftSize),
		out:     make([]complex128, fftSize),
		re:      make([]float64, bins),
		im:      make([]float64, bins),
	}, nil
}

// FFTSize returns the configured transform length.
func (a *Analyzer) FFTSize() int {
	return a.fftSize
}

// NumBins returns the number of non-negative-frequency bins,
// fftSize/2 + 1.
func (a *Analyzer) NumBins() int {
	return a.fftSize/2 + 1
}

// Magnitudes fills dst with |X[k]| for the non-negative-frequency bins of
// samples. Input longer than the FFT size is truncated; shorter input is
// zero-padded. dst must hold NumBins values.
func (a *Analyzer) Magnitudes(dst, samples []float64) error {
	if len(dst) < a.NumBins() {
		return fmt.Errorf("spectrum: dst needs %d bins: %d", a.NumBins(), len(dst))
	}

	n := len(samples)
	if n > a.fftSize {
		n = a.fftSize
	}
	for i := 0; i < n; i++ {
		a.in[i] = complex(samples[i], 0)
	}
	for i := n; i < a.fftSize; i++ {
		a.in[i] = 0
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return fmt.Errorf("spectrum: forward fft: %w", err)
	}

	bins := a.NumBins()
	for i := 0; i < bins; i++ {
		a.re[i] = real(a.out[i])
		a.im[i] = imag(a.out[i])
	}
	vecmath.Magnitude(dst[:bins], a.re, a.im)
	return nil
}

// PeakBin returns the index of the largest magnitude, ignoring the DC bin.
func PeakBin(mags []float64) int {
	peak := 0
	best := 0.0
	for i := 1; i < len(mags); i++ {
		if mags[i] > best {
			best = mags[i]
			peak = i
		}
	}
	return peak
}

// BinFrequency converts a bin index to Hz for the analyzer's FFT size.
func (a *Analyzer) BinFrequency(bin int, sampleRate float64) float64 {
	return float64(bin) * sampleRate / float64(a.fftSize)
}
