package design_test

import (
	"fmt"

	"github.com/katalvlaran/morris/design"
	"github.com/katalvlaran/morris/param"
)

// Example generates a small optimized design and reports its shape.
func Example() {
	space, err := param.NewSpace(
		[]string{"k1", "k2", "k3"},
		[]param.Bound{{Low: 0, High: 10}, {Low: -1, High: 1}, {Low: 0.5, High: 2}},
	)
	if err != nil {
		fmt.Println("space:", err)
		return
	}

	opts := design.DefaultOptions()
	opts.Samples = 6
	opts.OptimalTrajectories = 3
	opts.Seed = 42

	m, err := design.New(space, opts)
	if err != nil {
		fmt.Println("config:", err)
		return
	}
	sample, err := m.ScaledSample()
	if err != nil {
		fmt.Println("sample:", err)
		return
	}

	fmt.Printf("design: %d points x %d factors\n", sample.Rows(), sample.Cols())
	// Output:
	// design: 12 points x 3 factors
}
