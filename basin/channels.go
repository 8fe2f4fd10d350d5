package basin

import (
	"github.com/katalvlaran/drainflow/flowdir"
	"github.com/katalvlaran/drainflow/raster"
)

// Outlets returns the channel cells of f whose direction is undefined or
// points to a cell outside the valid domain, in raster scan order (south row
// first, west to east).
func Outlets(f *flowdir.Field, channels *raster.Grid[bool]) []Cell {
	var out []Cell
	for y := 0; y < f.NY; y++ {
		for x := 0; x < f.NX; x++ {
			if channels.Valid(x, y) && isOutlet(f, x, y) {
				out = append(out, Cell{X: x, Y: y})
			}
		}
	}

	return out
}

// onSurface drops the cells that are no-data in dem. A field supplied with
// WithDirections may cover cells the DEM does not.
func onSurface(dem *raster.Grid[float64], cells []Cell) []Cell {
	kept := cells[:0]
	for _, c := range cells {
		if dem.Valid(c.X, c.Y) {
			kept = append(kept, c)
		}
	}

	return kept
}

func isOutlet(f *flowdir.Field, x, y int) bool {
	if !f.Valid(x, y) {
		return false
	}
	d := f.Dir(x, y)
	if d == raster.NoDirection {
		return true
	}

	return !f.Valid(raster.Neighbor(x, y, d))
}

// ClassifyChannels counts, for every channel cell, the channel neighbours
// draining into it. Cells with none are heads, cells with more than one are
// mouths (confluences). Both lists are in raster scan order.
func ClassifyChannels(f *flowdir.Field, channels *raster.Grid[bool]) (heads, mouths []Cell) {
	for y := 0; y < f.NY; y++ {
		for x := 0; x < f.NX; x++ {
			if !channels.Valid(x, y) || !f.Valid(x, y) {
				continue
			}
			switch n := len(channelInflows(f, channels, x, y)); {
			case n == 0:
				heads = append(heads, Cell{X: x, Y: y})
			case n > 1:
				mouths = append(mouths, Cell{X: x, Y: y})
			}
		}
	}

	return heads, mouths
}

// channelInflows returns the channel neighbours of (x,y) whose direction
// points into it.
func channelInflows(f *flowdir.Field, channels *raster.Grid[bool], x, y int) []Cell {
	var in []Cell
	for d := 0; d < 8; d++ {
		nx, ny := raster.Neighbor(x, y, d)
		if channels.Valid(nx, ny) && f.Dir(nx, ny) == raster.Opposite(d) {
			in = append(in, Cell{X: nx, Y: ny})
		}
	}

	return in
}
