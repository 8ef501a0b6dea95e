package uniform_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evolve/uniform"
)

// ExampleFloat64ClosedOpen shows the endpoint behavior of the three unit
// policies on the extreme raw words.
func ExampleFloat64ClosedOpen() {
	fmt.Println(uniform.Float64ClosedOpen(0), uniform.Float64ClosedOpen(math.MaxUint64) < 1)
	fmt.Println(uniform.Float64OpenClosed(0) > 0, uniform.Float64OpenClosed(math.MaxUint64))
	fmt.Println(uniform.Float64OpenOpen(0) > 0, uniform.Float64OpenOpen(math.MaxUint64) < 1)
	// Output:
	// 0 true
	// true 1
	// true true
}
