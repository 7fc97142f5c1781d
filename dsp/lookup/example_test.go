package lookup_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-osc/dsp/lookup"
)

func ExampleTable() {
	tbl, err := lookup.New(math.Sin, -math.Pi, math.Pi, 2048)
	if err != nil {
		panic(err)
	}

	fmt.Printf("sin(+pi/2) ~ %.4f\n", tbl.Value(math.Pi/2))
	fmt.Printf("sin(-pi/2) ~ %.4f\n", tbl.Value(-math.Pi/2))
	fmt.Printf("max error below 1e-5: %v\n", tbl.MaxError(math.Sin, 10000) < 1e-5)

	// Output:
	// sin(+pi/2) ~ 1.0000
	// sin(-pi/2) ~ -1.0000
	// max error below 1e-5: true
}
