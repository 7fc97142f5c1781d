package interp

import (
	"math"
	"testing"
)

func TestLinear2Endpoints(t *testing.T) {
	if got := Linear2(0, 2, 6); got != 2 {
		t.Fatalf("frac=0: got %v, want 2", got)
	}
	if got := Linear2(1, 2, 6); got != 6 {
		t.Fatalf("frac=1: got %v, want 6", got)
	}
	if got := Linear2(0.5, 2, 6); got != 4 {
		t.Fatalf("frac=0.5: got %v, want 4", got)
	}
}

func TestHermite4PassesThroughKnots(t *testing.T) {
	if got := Hermite4(0, -1, 3, 5, 9); got != 3 {
		t.Fatalf("t=0: got %v, want 3", got)
	}
	if got := Hermite4(1, -1, 3, 5, 9); got != 5 {
		t.Fatalf("t=1: got %v, want 5", got)
	}
}

func TestHermite4ReproducesLine(t *testing.T) {
	// A cubic interpolator must be exact on linear data.
	for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := Hermite4(frac, 0, 1, 2, 3)
		want := 1 + frac
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("t=%v: got %v, want %v", frac, got, want)
		}
	}
}

func TestHermite4SmoothOnSine(t *testing.T) {
	// Interpolating sin at 1/16 cycle spacing should stay within ~1e-3.
	step := math.Pi / 8
	for _, frac := range []float64{0.25, 0.5, 0.75} {
		x := step + frac*step
		got := Hermite4(frac,
			math.Sin(0), math.Sin(step), math.Sin(2*step), math.Sin(3*step))
		want := math.Sin(x)
		if math.Abs(got-want) > 1e-3 {
			t.Fatalf("t=%v: got %v, want %v", frac, got, want)
		}
	}
}
