package flowdir

import (
	"math"

	"github.com/katalvlaran/drainflow/raster"
)

// D8 routes all outflow to the neighbour of steepest descent,
// (z0 − zi) / distance. Ties go to the lowest direction index; a cell with
// no lower neighbour is a pit (raster.NoDirection).
//
// When a channel mask is supplied and the cell is a channel cell:
//  1. if any neighbour is a channel cell, only channel neighbours are
//     candidates;
//  2. otherwise all neighbours are candidates (plain steepest descent);
//  3. if no candidate is lower, the neighbour nearest the central-difference
//     downslope aspect is used, provided it is a candidate and not higher
//     than the cell. Flat channel reaches drain this way instead of ending
//     in an undefined pit; ComputeField turns loops this forms on flat
//     floors into pits.
type D8 struct{}

// Name implements Model.
func (D8) Name() string { return "d8" }

// Fractional implements Model.
func (D8) Fractional() bool { return false }

// Route implements Model.
func (D8) Route(dem *raster.Grid[float64], x, y int, channels *raster.Grid[bool]) Result {
	nb, ok := gather(dem, x, y)
	if !ok {
		return noDataResult()
	}
	if channels == nil || !channels.Valid(x, y) {
		return Result{Code: nb.steepest(nil)}
	}

	isChannel := func(d int) bool {
		ix, iy := raster.Neighbor(x, y, d)
		return channels.Valid(ix, iy)
	}
	var keep func(int) bool
	for d := 0; d < 8; d++ {
		if nb.ok[d] && isChannel(d) {
			keep = isChannel
			break
		}
	}
	if d := nb.steepest(keep); d != raster.NoDirection {
		return Result{Code: d}
	}

	return Result{Code: nb.gradientNeighbor(keep)}
}

// gradientNeighbor returns the neighbour nearest the downslope aspect when it
// is accepted by keep and not higher than the centre.
func (nb *neighborhood) gradientNeighbor(keep func(d int) bool) int {
	az, ok := nb.aspect()
	if !ok {
		return raster.NoDirection
	}
	d := int(math.Floor(az/(math.Pi/4)+0.5)) % 8
	if !nb.ok[d] || (keep != nil && !keep(d)) || nb.z[d] > nb.z0 {
		return raster.NoDirection
	}

	return d
}
