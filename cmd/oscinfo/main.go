// Command oscinfo prints waveform and approximation properties of the
// catalog shaping functions.
//
// Usage:
//
//	oscinfo [flags] [shaper-name ...]
//
// Without arguments it prints info for all catalog shapers.
//
// Examples:
//
//	oscinfo sine
//	oscinfo -freq 1000 -table 512 sine triangle
//	oscinfo -rate 44100 -fft 8192 sawtooth
//	oscinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-osc/dsp/lookup"
	"github.com/cwbudde/algo-osc/dsp/signal"
	"github.com/cwbudde/algo-osc/dsp/spectrum"
)

func main() {
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	freq := flag.Float64("freq", 440, "oscillator frequency in Hz")
	table := flag.Int("table", 1024, "lookup table resolution in points")
	fftSize := flag.Int("fft", 4096, "FFT size for the peak-frequency check")
	list := flag.Bool("list", false, "list available shaper names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: oscinfo [flags] [shaper-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints waveform and table-approximation properties of the catalog shapers.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all shapers.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  oscinfo sine triangle\n")
		fmt.Fprintf(os.Stderr, "  oscinfo -freq 1000 -table 512 sawtooth\n")
		fmt.Fprintf(os.Stderr, "  oscinfo -list\n")
	}
	flag.Parse()

	if *list {
		for _, n := range signal.ShaperNames() {
			fmt.Println(n)
		}
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		names = signal.ShaperNames()
	}

	analyzer, err := spectrum.NewAnalyzer(*fftSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printed := 0
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Shaper\tFreq [Hz]\tSamples/Cycle\tPeak [Hz]\tTable Err (linear)\tTable Err (cubic)\n")
	fmt.Fprintf(tw, "------\t---------\t-------------\t---------\t------------------\t-----------------\n")

	mags := make([]float64, analyzer.NumBins())
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		fn, err := signal.ShaperByName(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (use -list to see available)\n", err)
			continue
		}

		peakHz, err := peakFrequency(analyzer, mags, fn, *rate, *freq)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", name, err)
			os.Exit(1)
		}

		linErr, cubErr, err := tableErrors(fn, *table)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", name, err)
			os.Exit(1)
		}

		fmt.Fprintf(tw, "%s\t%.1f\t%.2f\t%.1f\t%.3g\t%.3g\n",
			name, *freq, *rate / *freq, peakHz, linErr, cubErr)
		printed++
	}

	if printed == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching shapers\n")
		os.Exit(1)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// peakFrequency renders one analysis frame of the shaper and locates the
// strongest spectral component.
func peakFrequency(a *spectrum.Analyzer, mags []float64, fn func(float64) float64, rate, freq float64) (float64, error) {
	samples, err := signal.Render(fn, rate, freq, a.FFTSize())
	if err != nil {
		return 0, err
	}
	if err := a.Magnitudes(mags, samples); err != nil {
		return 0, err
	}
	return a.BinFrequency(spectrum.PeakBin(mags), rate), nil
}

// tableErrors reports worst-case lookup deviation at the given resolution
// for linear and cubic interpolation.
func tableErrors(fn func(float64) float64, points int) (linErr, cubErr float64, err error) {
	lin, err := lookup.New(fn, -math.Pi, math.Pi, points)
	if err != nil {
		return 0, 0, err
	}
	cub, err := lookup.New(fn, -math.Pi, math.Pi, points, lookup.WithCubic())
	if err != nil {
		return 0, 0, err
	}

	const probesPerPoint = 8
	linErr = lin.MaxError(fn, probesPerPoint*points)
	cubErr = cub.MaxError(fn, probesPerPoint*points)
	return linErr, cubErr, nil
}
