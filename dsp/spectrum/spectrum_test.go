package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-osc/dsp/signal"
)

func TestNewAnalyzerValidation(t *testing.T) {
	for _, size := range []int{0, 1, 3, 100} {
		if _, err := NewAnalyzer(size); err == nil {
			t.Fatalf("expected error for fft size %d", size)
		}
	}
	if _, err := NewAnalyzer(1024); err != nil {
		t.Fatal(err)
	}
}

func TestMagnitudesDstTooSmall(t *testing.T) {
	a, err := NewAnalyzer(64)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Magnitudes(make([]float64, 3), make([]float64, 64)); err == nil {
		t.Fatal("expected error for undersized dst")
	}
}

func TestSinePeakLandsOnExpectedBin(t *testing.T) {
	const (
		fftSize    = 4096
		sampleRate = 48000.0
	)

	a, err := NewAnalyzer(fftSize)
	if err != nil {
		t.Fatal(err)
	}

	// Pick a frequency on an exact bin so no window is needed:
	// bin 128 -> 128 * 48000 / 4096 = 1500 Hz.
	const freq = 1500.0
	samples, err := signal.Render(signal.Sine, sampleRate, freq, fftSize)
	if err != nil {
		t.Fatal(err)
	}

	mags := make([]float64, a.NumBins())
	if err := a.Magnitudes(mags, samples); err != nil {
		t.Fatal(err)
	}

	peak := PeakBin(mags)
	if got := a.BinFrequency(peak, sampleRate); got != freq {
		t.Fatalf("peak at %v Hz (bin %d), want %v Hz", got, peak, freq)
	}

	// A pure sine concentrates its energy in one bin.
	if mags[peak] < 100*mags[peak/2+1] {
		t.Fatalf("peak %v not dominant over off bin %v", mags[peak], mags[peak/2+1])
	}
}

func TestZeroPaddingShortInput(t *testing.T) {
	a, err := NewAnalyzer(256)
	if err != nil {
		t.Fatal(err)
	}

	mags := make([]float64, a.NumBins())
	if err := a.Magnitudes(mags, []float64{1}); err != nil {
		t.Fatal(err)
	}

	// An impulse has a flat magnitude spectrum, whatever the transform's
	// scaling convention.
	if mags[0] == 0 {
		t.Fatal("empty spectrum")
	}
	for i, m := range mags {
		if math.Abs(m-mags[0]) > 1e-9*mags[0] {
			t.Fatalf("bin %d magnitude = %v, want flat %v", i, m, mags[0])
		}
	}
}

func TestPeakBinIgnoresDC(t *testing.T) {
	mags := []float64{10, 1, 5, 2}
	if got := PeakBin(mags); got != 2 {
		t.Fatalf("peak bin = %d, want 2", got)
	}
}
