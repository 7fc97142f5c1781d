// Package lookup approximates expensive functions with fixed-resolution
// tables, trading a bounded approximation error for O(1) evaluation.
package lookup

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-osc/dsp/core"
	"github.com/cwbudde/algo-osc/dsp/interp"
)

// Table holds pre-sampled values of a function over a closed interval and
// evaluates it by interpolated lookup. All allocation happens in New;
// Value is allocation-free and safe to call on real-time paths.
//
// A Table is immutable after construction and safe for concurrent reads.
type Table struct {
	values []float64
	min    float64
	max    float64
	scale  float64
	cubic  bool
}

// Option mutates table construction parameters.
type Option func(*Table) error

// WithCubic selects 4-point Hermite interpolation between table points.
// The default is linear. Near the table edges, where a neighbor point is
// missing, evaluation falls back to linear.
func WithCubic() Option {
	return func(t *Table) error {
		t.cubic = true
		return nil
	}
}

// New samples fn at numPoints equally spaced points covering [min, max]
// inclusive and returns the resulting table.
func New(fn func(float64) float64, min, max float64, numPoints int, opts ...Option) (*Table, error) {
	if fn == nil {
		return nil, fmt.Errorf("lookup: function must not be nil")
	}
	if numPoints < 2 {
		return nil, fmt.Errorf("lookup: need at least 2 points: %d", numPoints)
	}
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("lookup: domain bounds must be finite: [%f, %f]", min, max)
	}
	if min >= max {
		return nil, fmt.Errorf("lookup: domain must not be empty: [%f, %f]", min, max)
	}

	t := &Table{
		values: make([]float64, numPoints),
		min:    min,
		max:    max,
		scale:  float64(numPoints-1) / (max - min),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	width := max - min
	for i := range t.values {
		x := min + width*float64(i)/float64(numPoints-1)
		t.values[i] = fn(x)
	}
	return t, nil
}

// Value evaluates the table at x. Arguments outside the domain are clamped
// to the nearest bound.
func (t *Table) Value(x float64) float64 {
	x = core.Clamp(x, t.min, t.max)

	pos := (x - t.min) * t.scale
	i := int(pos)
	last := len(t.values) - 1
	if i >= last {
		i = last - 1
	}
	frac := pos - float64(i)

	if t.cubic && i > 0 && i < last-1 {
		return interp.Hermite4(frac, t.values[i-1], t.values[i], t.values[i+1], t.values[i+2])
	}
	return interp.Linear2(frac, t.values[i], t.values[i+1])
}

// Size returns the number of table points.
func (t *Table) Size() int {
	return len(t.values)
}

// DomainMin returns the lower domain bound.
func (t *Table) DomainMin() float64 {
	return t.min
}

// DomainMax returns the upper domain bound.
func (t *Table) DomainMax() float64 {
	return t.max
}

// MaxError probes the domain at the given density and returns the largest
// absolute deviation between the table and fn. Useful for choosing a table
// resolution; not intended for real-time use.
func (t *Table) MaxError(fn func(float64) float64, probes int) float64 {
	if fn == nil || probes < 2 {
		return math.NaN()
	}

	worst := 0.0
	width := t.max - t.min
	for i := 0; i < probes; i++ {
		x := t.min + width*float64(i)/float64(probes-1)
		if diff := math.Abs(t.Value(x) - fn(x)); diff > worst {
			worst = diff
		}
	}
	return worst
}
