package core

import (
	"math"
	"testing"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000), WithBlockSize(2048))
	if cfg.SampleRate != 96000 {
		t.Fatalf("sample rate = %v, want 96000", cfg.SampleRate)
	}
	if cfg.BlockSize != 2048 {
		t.Fatalf("block size = %d, want 2048", cfg.BlockSize)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithBlockSize(-1))
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 4, 16)

	got := EnsureLen(buf, 8)
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	if cap(got) != 16 {
		t.Fatalf("capacity not reused: cap = %d, want 16", cap(got))
	}

	got = EnsureLen(buf, 32)
	if len(got) != 32 {
		t.Fatalf("len = %d, want 32", len(got))
	}

	got = EnsureLen(buf, 0)
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0.5, 1, 0, 0.5}, // swapped bounds
	}
	for _, tc := range cases {
		if got := Clamp(tc.value, tc.min, tc.max); got != tc.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tc.value, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestWrapPhase(t *testing.T) {
	twoPi := 2 * math.Pi

	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{twoPi, 0},
		{3 * math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
	}
	for _, tc := range cases {
		got := WrapPhase(tc.in)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("WrapPhase(%v) = %v, want %v", tc.in, got, tc.want)
		}
		if got < 0 || got >= twoPi {
			t.Fatalf("WrapPhase(%v) = %v outside [0, 2*pi)", tc.in, got)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1, 1+1e-13, 1e-12) {
		t.Fatal("values within eps reported unequal")
	}
	if NearlyEqual(1, 2, 1e-12) {
		t.Fatal("distant values reported equal")
	}
	if !NearlyEqual(1e12, 1e12+1, 1e-9) {
		t.Fatal("relative comparison failed for large magnitudes")
	}
}

func TestCopyInto(t *testing.T) {
	dst := make([]float64, 3)
	n := CopyInto(dst, []float64{1, 2, 3, 4})
	if n != 3 {
		t.Fatalf("copied %d, want 3", n)
	}
	if dst[0] != 1 || dst[2] != 3 {
		t.Fatalf("dst = %v", dst)
	}
}
