package flowdir_test

import (
	"fmt"

	"github.com/katalvlaran/drainflow/flowdir"
	"github.com/katalvlaran/drainflow/raster"
)

// ExampleComputeField routes a small valley with D8 and prints the codes,
// north row first. Codes run clockwise from north (0) to north-west (7);
// -1 marks the outlet.
func ExampleComputeField() {
	geo := raster.Geometry{NX: 3, NY: 3, CellSize: 1}
	dem, _ := raster.FromRows(geo, -9999.0, [][]float64{
		{4, 1, 4}, // south row (y=0)
		{5, 2, 5},
		{6, 3, 6},
	})
	f, _ := flowdir.ComputeField(dem, flowdir.D8{})
	for y := geo.NY - 1; y >= 0; y-- {
		for x := 0; x < geo.NX; x++ {
			fmt.Printf("%3d", f.Dir(x, y))
		}
		fmt.Println()
	}

	// Output:
	//   2  4  6
	//   2  4  6
	//   2 -1  6
}

// ExampleMFD shows the fractional outflow of a ridge cell.
func ExampleMFD() {
	geo := raster.Geometry{NX: 3, NY: 3, CellSize: 1}
	dem, _ := raster.FromRows(geo, -9999.0, [][]float64{
		{9, 9, 9},
		{4, 5, 4},
		{9, 9, 9},
	})
	r := flowdir.Compute(flowdir.MFD{Converge: 1}, dem, 1, 1, nil)
	fmt.Printf("E=%.2f W=%.2f\n", r.Fractions[raster.East], r.Fractions[raster.West])

	// Output:
	// E=0.50 W=0.50
}
