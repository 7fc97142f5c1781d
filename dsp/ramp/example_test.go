package ramp_test

import (
	"fmt"

	"github.com/cwbudde/algo-osc/dsp/ramp"
)

func ExampleLinear() {
	l := ramp.NewLinear(0)
	l.Reset(4, 1) // four steps per second of ramp
	l.SetValue(1, false)

	for i := 0; i < 5; i++ {
		fmt.Printf("%.2f\n", l.NextValue())
	}

	// Output:
	// 0.25
	// 0.50
	// 0.75
	// 1.00
	// 1.00
}
