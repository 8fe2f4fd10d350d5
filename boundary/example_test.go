package boundary_test

import (
	"fmt"

	"github.com/katalvlaran/drainflow/boundary"
	"github.com/katalvlaran/drainflow/raster"
)

// ExampleVectorize traces an L-shaped region of three cells.
func ExampleVectorize() {
	geo := raster.Geometry{NX: 2, NY: 2, CellSize: 1}
	ids, _ := raster.FromRows(geo, 0, [][]int32{
		{1, 1},
		{1, 0},
	})
	poly, _ := boundary.Vectorize(ids, 1)
	for _, p := range poly[0] {
		fmt.Printf("(%g,%g) ", p.X, p.Y)
	}
	fmt.Println()
	fmt.Println("perimeter:", boundary.Perimeter(poly))

	// Output:
	// (-0.5,-0.5) (-0.5,1.5) (0.5,1.5) (0.5,0.5) (1.5,0.5) (1.5,-0.5) (-0.5,-0.5)
	// perimeter: 8
}
