package boundary

import (
	"github.com/katalvlaran/drainflow/raster"
)

// Edge grid node values.
const (
	nodeEmpty    int8 = 0
	nodeEdge     int8 = 1
	nodeInterior int8 = -1
)

var cardinals = [4]int{raster.North, raster.East, raster.South, raster.West}

// window is a cell rectangle [x0,x1]×[y0,y1] covering a region.
type window struct {
	x0, y0, x1, y1 int
}

// edgeGrid is the half-resolution node grid of one region window.
type edgeGrid struct {
	win   window
	w, h  int
	nodes []int8
	edges int
}

// newEdgeGrid marks the boundary edges and interior centres of every cell of
// win whose value equals id.
func newEdgeGrid(ids *raster.Grid[int32], id int32, win window) *edgeGrid {
	nx, ny := win.x1-win.x0+1, win.y1-win.y0+1
	e := &edgeGrid{win: win, w: 2*nx + 1, h: 2*ny + 1}
	e.nodes = make([]int8, e.w*e.h)

	member := func(x, y int) bool {
		return ids.Valid(x, y) && ids.At(x, y) == id
	}
	for y := win.y0; y <= win.y1; y++ {
		for x := win.x0; x <= win.x1; x++ {
			if !member(x, y) {
				continue
			}
			cx, cy := 2*(x-win.x0)+1, 2*(y-win.y0)+1
			e.set(cx, cy, nodeInterior)
			for _, d := range cardinals {
				if member(raster.Neighbor(x, y, d)) {
					continue
				}
				ox, oy := raster.Offset(d)
				e.set(cx+ox, cy+oy, nodeEdge)
				e.edges++
			}
		}
	}

	return e
}

func (e *edgeGrid) at(ex, ey int) int8 {
	if ex < 0 || ey < 0 || ex >= e.w || ey >= e.h {
		return nodeEmpty
	}

	return e.nodes[ey*e.w+ex]
}

func (e *edgeGrid) set(ex, ey int, v int8) {
	e.nodes[ey*e.w+ex] = v
}

// boundaryEdge reports whether the cell edge leaving vertex (ex,ey) towards
// cardinal heading h separates a region cell on its right from a non-region
// cell on its left. Consumption of the edge is ignored.
func (e *edgeGrid) boundaryEdge(ex, ey, h int) bool {
	ox, oy := raster.Offset(h)
	mx, my := ex+ox, ey+oy
	rx, ry := raster.Offset(right(h))
	lx, ly := raster.Offset(left(h))

	return e.at(mx+rx, my+ry) == nodeInterior && e.at(mx+lx, my+ly) != nodeInterior
}

// corner converts edge grid vertex (ex,ey) to world coordinates.
func (e *edgeGrid) corner(geo raster.Geometry, ex, ey int) (float64, float64) {
	half := geo.CellSize / 2
	x := geo.XMin - half + float64(ex+2*e.win.x0)*half
	y := geo.YMin - half + float64(ey+2*e.win.y0)*half

	return x, y
}

func right(h int) int { return (h + 2) % 8 }

func left(h int) int { return (h + 6) % 8 }
