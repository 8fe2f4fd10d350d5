package flowdir

import (
	"math"

	"github.com/katalvlaran/drainflow/raster"
)

// neighborhood is the 3×3 window around a cell. Missing neighbours (outside
// the grid or no-data) have ok[d] == false.
type neighborhood struct {
	z0     float64
	z      [8]float64
	ok     [8]bool
	length [8]float64
	cell   float64
}

// gather reads the window of (x,y). valid is false when the centre is missing.
func gather(dem *raster.Grid[float64], x, y int) (nb neighborhood, valid bool) {
	if dem.IsNoData(x, y) {
		return nb, false
	}
	nb.z0 = dem.At(x, y)
	nb.cell = dem.CellSize
	for d := 0; d < 8; d++ {
		nb.length[d] = dem.Length(d)
		ix, iy := raster.Neighbor(x, y, d)
		if dem.IsNoData(ix, iy) {
			continue
		}
		nb.z[d] = dem.At(ix, iy)
		nb.ok[d] = true
	}

	return nb, true
}

// slope returns the drop per unit distance towards d (negative if uphill).
func (nb *neighborhood) slope(d int) float64 {
	return (nb.z0 - nb.z[d]) / nb.length[d]
}

// steepest returns the direction of maximum positive slope among the
// neighbours accepted by keep, ties resolved to the lowest index.
func (nb *neighborhood) steepest(keep func(d int) bool) int {
	best, bestSlope := raster.NoDirection, 0.0
	for d := 0; d < 8; d++ {
		if !nb.ok[d] || (keep != nil && !keep(d)) {
			continue
		}
		if s := nb.slope(d); s > bestSlope {
			best, bestSlope = d, s
		}
	}

	return best
}

// zOr returns the elevation towards d, or the centre value when missing.
func (nb *neighborhood) zOr(d int) float64 {
	if nb.ok[d] {
		return nb.z[d]
	}

	return nb.z0
}

// aspect returns the azimuth of steepest descent in radians clockwise from
// north, [0, 2π), computed from central differences. ok is false on a
// perfectly flat window.
func (nb *neighborhood) aspect() (az float64, ok bool) {
	dzdx := (nb.zOr(raster.East) - nb.zOr(raster.West)) / (2 * nb.cell)
	dzdy := (nb.zOr(raster.North) - nb.zOr(raster.South)) / (2 * nb.cell)
	if dzdx == 0 && dzdy == 0 {
		return 0, false
	}
	az = math.Atan2(-dzdx, -dzdy)
	if az < 0 {
		az += 2 * math.Pi
	}

	return az, true
}
