package basin

import (
	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/drainflow/flowdir"
	"github.com/katalvlaran/drainflow/raster"
)

// item is a flood fill stack entry.
type item struct {
	x, y int
	dist float64
}

// sample collects the values seen by one fill.
type sample struct {
	z, dist, cx, cy []float64
}

// filler grows regions over the reverse direction graph into ids.
type filler struct {
	dem   *raster.Grid[float64]
	field *flowdir.Field
	ids   *raster.Grid[int32]
	dist  *raster.Grid[float64] // optional
	stack []item
}

// fill assigns id to seed and every unassigned cell draining into the region
// through cells accepted by enter. enter may be nil.
func (fl *filler) fill(seed Cell, id int32, enter func(x, y int) bool) sample {
	var s sample
	fl.stack = append(fl.stack[:0], item{x: seed.X, y: seed.Y})
	for len(fl.stack) > 0 {
		it := fl.stack[len(fl.stack)-1]
		fl.stack = fl.stack[:len(fl.stack)-1]
		if fl.ids.At(it.x, it.y) != 0 {
			continue
		}
		fl.ids.Set(it.x, it.y, id)
		if fl.dist != nil {
			fl.dist.Set(it.x, it.y, it.dist)
		}
		cx, cy := fl.ids.Center(it.x, it.y)
		s.z = append(s.z, fl.dem.At(it.x, it.y))
		s.dist = append(s.dist, it.dist)
		s.cx = append(s.cx, cx)
		s.cy = append(s.cy, cy)

		for d := 0; d < 8; d++ {
			nx, ny := raster.Neighbor(it.x, it.y, d)
			if !fl.field.Valid(nx, ny) || fl.dem.IsNoData(nx, ny) || fl.ids.At(nx, ny) != 0 {
				continue
			}
			if fl.field.Dir(nx, ny) != raster.Opposite(d) {
				continue
			}
			if enter != nil && !enter(nx, ny) {
				continue
			}
			fl.stack = append(fl.stack, item{x: nx, y: ny, dist: it.dist + fl.field.Length(d)})
		}
	}

	return s
}

// degenerate reports whether the fill is too small or flat to measure.
func (s sample) degenerate() bool {
	return len(s.z) < 2 || floats.Max(s.z) == floats.Min(s.z)
}

// record builds the scalar part of a Basin from the fill sample.
func (s sample) record(id int32, outlet Cell, geo raster.Geometry) Basin {
	ox, oy := geo.Center(outlet.X, outlet.Y)

	b := Basin{
		ID:       id,
		Outlet:   outlet,
		Cells:    len(s.z),
		ZMean:    stat.Mean(s.z, nil),
		ZMin:     floats.Min(s.z),
		ZMax:     floats.Max(s.z),
		DistMean: stat.Mean(s.dist, nil),
		DistMax:  floats.Max(s.dist),
		Area:     float64(len(s.z)) * geo.CellSize * geo.CellSize,
		Tc:       ConcentrationTime(floats.Max(s.dist)/1000, floats.Max(s.z)-floats.Min(s.z)),

		OutletPoint: geom.Point{X: ox, Y: oy},
		Centroid:    geom.Point{X: stat.Mean(s.cx, nil), Y: stat.Mean(s.cy, nil)},
	}

	return b
}
