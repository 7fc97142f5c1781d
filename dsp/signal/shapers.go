// Package signal provides the standard periodic shaping functions consumed
// by the oscillator, plus closed-form reference renderers for tests and
// offline tooling.
package signal

import (
	"fmt"
	"math"
)

// Sine maps a phase in [-pi, pi] to sin(x).
func Sine(x float64) float64 {
	return math.Sin(x)
}

// Sawtooth maps a phase in [-pi, pi] linearly onto [-1, 1], rising once per
// cycle.
func Sawtooth(x float64) float64 {
	return x / math.Pi
}

// Square maps a phase in [-pi, pi] to -1 for the first half cycle and +1
// for the second.
func Square(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// Triangle maps a phase in [-pi, pi] to a triangle in [-1, 1] with its
// extrema at the half-cycle points.
func Triangle(x float64) float64 {
	v := 2 * math.Abs(x) / math.Pi
	return v - 1
}

// ShaperByName resolves the catalog shapers by their lowercase name:
// "sine", "sawtooth", "square" or "triangle".
func ShaperByName(name string) (func(float64) float64, error) {
	switch name {
	case "sine":
		return Sine, nil
	case "sawtooth":
		return Sawtooth, nil
	case "square":
		return Square, nil
	case "triangle":
		return Triangle, nil
	default:
		return nil, fmt.Errorf("signal: unknown shaper %q", name)
	}
}

// ShaperNames lists the catalog shapers in display order.
func ShaperNames() []string {
	return []string{"sine", "sawtooth", "square", "triangle"}
}

// Render evaluates fn at the phases an oscillator running at the given
// fixed frequency would produce, starting from phase zero. It allocates and
// is meant for tests and offline analysis, not for real-time paths.
func Render(fn func(float64) float64, sampleRate, freq float64, n int) ([]float64, error) {
	if fn == nil {
		return nil, fmt.Errorf("signal: render function must not be nil")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("signal: render sample rate must be > 0: %f", sampleRate)
	}
	if n <= 0 {
		return nil, fmt.Errorf("signal: render length must be > 0: %d", n)
	}

	out := make([]float64, n)
	increment := 2 * math.Pi * freq / sampleRate
	for i := range out {
		phase := math.Mod(float64(i)*increment, 2*math.Pi)
		if phase < 0 {
			phase += 2 * math.Pi
		}
		out[i] = fn(phase - math.Pi)
	}
	return out, nil
}
