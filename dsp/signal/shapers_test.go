package signal

import (
	"math"
	"testing"
)

func TestShapersStayInRange(t *testing.T) {
	shapers := map[string]func(float64) float64{
		"sine":     Sine,
		"sawtooth": Sawtooth,
		"square":   Square,
		"triangle": Triangle,
	}

	for name, fn := range shapers {
		for i := 0; i <= 100; i++ {
			x := -math.Pi + 2*math.Pi*float64(i)/100
			v := fn(x)
			if v < -1 || v > 1 {
				t.Fatalf("%s(%v) = %v outside [-1, 1]", name, x, v)
			}
		}
	}
}

func TestSawtoothEndpoints(t *testing.T) {
	if got := Sawtooth(-math.Pi); got != -1 {
		t.Fatalf("Sawtooth(-pi) = %v, want -1", got)
	}
	if got := Sawtooth(math.Pi); got != 1 {
		t.Fatalf("Sawtooth(pi) = %v, want 1", got)
	}
	if got := Sawtooth(0); got != 0 {
		t.Fatalf("Sawtooth(0) = %v, want 0", got)
	}
}

func TestTriangleShape(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{-math.Pi, 1},
		{-math.Pi / 2, 0},
		{0, -1},
		{math.Pi / 2, 0},
		{math.Pi, 1},
	}
	for _, tc := range cases {
		if got := Triangle(tc.x); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("Triangle(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestSquareHalves(t *testing.T) {
	if got := Square(-1); got != -1 {
		t.Fatalf("Square(-1) = %v, want -1", got)
	}
	if got := Square(1); got != 1 {
		t.Fatalf("Square(1) = %v, want 1", got)
	}
}

func TestShaperByName(t *testing.T) {
	for _, name := range ShaperNames() {
		fn, err := ShaperByName(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if fn == nil {
			t.Fatalf("%s: nil shaper", name)
		}
	}

	if _, err := ShaperByName("noise"); err == nil {
		t.Fatal("expected error for unknown shaper")
	}
}

func TestRenderValidation(t *testing.T) {
	if _, err := Render(nil, 48000, 440, 16); err == nil {
		t.Fatal("expected error for nil function")
	}
	if _, err := Render(Sine, 0, 440, 16); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if _, err := Render(Sine, 48000, 440, 0); err == nil {
		t.Fatal("expected error for zero length")
	}
}

func TestRenderSineClosedForm(t *testing.T) {
	out, err := Render(Sine, 48000, 1000, 48)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range out {
		phase := 2 * math.Pi * 1000 * float64(i) / 48000
		want := math.Sin(phase - math.Pi)
		if math.Abs(v-want) > 1e-9 {
			t.Fatalf("sample %d = %v, want %v", i, v, want)
		}
	}
}
