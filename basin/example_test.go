package basin_test

import (
	"fmt"

	"github.com/katalvlaran/drainflow/basin"
	"github.com/katalvlaran/drainflow/raster"
)

// ExampleDelineate splits a ridge into two basins and prints the ID grid,
// north row first, followed by the basin records.
func ExampleDelineate() {
	geo := raster.Geometry{NX: 6, NY: 2, CellSize: 1}
	dem, _ := raster.FromRows(geo, -9999.0, [][]float64{
		{0, 1, 2, 2, 1, 0},
		{1, 2, 3, 3, 2, 1},
	})
	channels, _ := raster.New(geo, false, true)

	r, _ := basin.Delineate(dem, channels)
	for y := geo.NY - 1; y >= 0; y-- {
		for x := 0; x < geo.NX; x++ {
			fmt.Print(r.IDs.At(x, y))
		}
		fmt.Println()
	}
	for _, b := range r.Basins {
		fmt.Printf("basin %d: %d cells, relief %.0f, perimeter %.0f\n", b.ID, b.Cells, b.Relief(), b.Perimeter)
	}

	// Output:
	// 111222
	// 111222
	// basin 1: 6 cells, relief 3, perimeter 10
	// basin 2: 6 cells, relief 3, perimeter 10
}
