package flowdir

import (
	"math"

	"github.com/katalvlaran/drainflow/raster"
)

// facets lists the eight triangular facets as (cardinal, diagonal) direction
// pairs, clockwise from the N–NE facet.
var facets = [8][2]int{
	{raster.North, raster.NorthEast},
	{raster.East, raster.NorthEast},
	{raster.East, raster.SouthEast},
	{raster.South, raster.SouthEast},
	{raster.South, raster.SouthWest},
	{raster.West, raster.SouthWest},
	{raster.West, raster.NorthWest},
	{raster.North, raster.NorthWest},
}

// DInfinity implements Tarboton's (1997) D∞ model. For each facet formed by
// the cell, a cardinal neighbour e1 and the adjacent diagonal neighbour e2
// the facet slope
//
//	s1 = (z0 − z1)/d,  s2 = (z1 − z2)/d,  r = atan(s2/s1),  s = √(s1² + s2²)
//
// is evaluated, with r clipped to [0, π/4] (s then taken along the clipped
// edge). The steepest facet wins; its outflow is split r/(π/4) to the
// diagonal and the remainder to the cardinal direction.
//
// Facets with a missing neighbour are skipped. A cell without a positive
// facet slope is a pit and all fractions are zero.
type DInfinity struct{}

// Name implements Model.
func (DInfinity) Name() string { return "dinf" }

// Fractional implements Model.
func (DInfinity) Fractional() bool { return true }

// Route implements Model. The channel mask is ignored.
func (DInfinity) Route(dem *raster.Grid[float64], x, y int, _ *raster.Grid[bool]) Result {
	nb, ok := gather(dem, x, y)
	if !ok {
		return noDataResult()
	}

	const span = math.Pi / 4
	best, bestS, bestR := -1, 0.0, 0.0
	for k, f := range facets {
		c, dg := f[0], f[1]
		if !nb.ok[c] || !nb.ok[dg] {
			continue
		}
		s1 := (nb.z0 - nb.z[c]) / nb.cell
		s2 := (nb.z[c] - nb.z[dg]) / nb.cell
		r := math.Atan2(s2, s1)
		s := math.Hypot(s1, s2)
		switch {
		case r < 0:
			r, s = 0, s1
		case r > span:
			r, s = span, (nb.z0-nb.z[dg])/(nb.cell*math.Sqrt2)
		}
		if s > bestS {
			best, bestS, bestR = k, s, r
		}
	}
	if best < 0 {
		return pitResult(true)
	}

	res := Result{Fractional: true}
	c, dg := facets[best][0], facets[best][1]
	toDiagonal := bestR / span
	res.Fractions[c] = 1 - toDiagonal
	res.Fractions[dg] = toDiagonal
	res.Code = c
	if toDiagonal > 0.5 {
		res.Code = dg
	}

	return res
}
