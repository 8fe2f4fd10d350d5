package boundary

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/drainflow/raster"
)

// Vectorize traces the boundary of every cell of ids equal to id and returns
// one closed ring per boundary component, outer rings clockwise and holes
// counter-clockwise, in world coordinates of the cell corners. An id that
// does not occur yields a nil polygon and no error.
func Vectorize(ids *raster.Grid[int32], id int32) (geom.Polygon, error) {
	if ids == nil {
		return nil, ErrNilGrid
	}
	win, ok := extent(ids, id)
	if !ok {
		return nil, nil
	}

	return trace(ids, id, win)
}

// VectorizeAll vectorizes every positive id of ids. Regions whose tracing
// fails are left out of the map; their errors are joined, each wrapped in a
// *BasinError.
func VectorizeAll(ids *raster.Grid[int32]) (map[int32]geom.Polygon, error) {
	if ids == nil {
		return nil, ErrNilGrid
	}
	wins := make(map[int32]window)
	for y := 0; y < ids.NY; y++ {
		for x := 0; x < ids.NX; x++ {
			if !ids.Valid(x, y) || ids.At(x, y) <= 0 {
				continue
			}
			id := ids.At(x, y)
			w, seen := wins[id]
			if !seen {
				wins[id] = window{x0: x, y0: y, x1: x, y1: y}
				continue
			}
			wins[id] = grow(w, x, y)
		}
	}

	keys := make([]int32, 0, len(wins))
	for id := range wins {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make(map[int32]geom.Polygon, len(wins))
	var errs []error
	for _, id := range keys {
		poly, err := trace(ids, id, wins[id])
		if err != nil {
			errs = append(errs, &BasinError{ID: id, Err: err})
			continue
		}
		out[id] = poly
	}

	return out, errors.Join(errs...)
}

// Perimeter returns the summed length of all rings of p.
func Perimeter(p geom.Polygon) float64 {
	total := 0.0
	for _, ring := range p {
		for i := 1; i < len(ring); i++ {
			total += math.Hypot(ring[i].X-ring[i-1].X, ring[i].Y-ring[i-1].Y)
		}
	}

	return total
}

func extent(ids *raster.Grid[int32], id int32) (window, bool) {
	var win window
	found := false
	for y := 0; y < ids.NY; y++ {
		for x := 0; x < ids.NX; x++ {
			if !ids.Valid(x, y) || ids.At(x, y) != id {
				continue
			}
			if !found {
				win, found = window{x0: x, y0: y, x1: x, y1: y}, true
				continue
			}
			win = grow(win, x, y)
		}
	}

	return win, found
}

func grow(w window, x, y int) window {
	w.x0, w.x1 = min(w.x0, x), max(w.x1, x)
	w.y0, w.y1 = min(w.y0, y), max(w.y1, y)

	return w
}

// trace builds the edge grid of id and walks every ring out of it.
func trace(ids *raster.Grid[int32], id int32, win window) (geom.Polygon, error) {
	e := newEdgeGrid(ids, id, win)
	if e.edges == 0 {
		return nil, nil
	}

	var poly geom.Polygon
	// Scan edge midpoints bottom-up so that the first ring found is an
	// outer ring.
	for ey := 0; ey < e.h; ey++ {
		for ex := 0; ex < e.w; ex++ {
			if e.at(ex, ey) != nodeEdge {
				continue
			}
			ring, err := e.walkFrom(ids.Geometry, ex, ey)
			if err != nil {
				return poly, err
			}
			poly = append(poly, ring)
		}
	}

	return poly, nil
}

// walkFrom traces the ring through the unconsumed edge midpoint (mx,my).
func (e *edgeGrid) walkFrom(geo raster.Geometry, mx, my int) (geom.Path, error) {
	h0 := -1
	for _, h := range cardinals {
		ox, oy := raster.Offset(h)
		if e.boundaryEdge(mx-ox, my-oy, h) {
			h0 = h
			break
		}
	}
	if h0 < 0 {
		return nil, fmt.Errorf("%w: no region cell beside edge (%d,%d)", ErrMalformedBoundary, mx, my)
	}
	ox, oy := raster.Offset(h0)
	px0, py0 := mx-ox, my-oy

	var ring geom.Path
	px, py, h := px0, py0, h0
	for steps := 0; steps <= e.edges; steps++ {
		ox, oy = raster.Offset(h)
		e.set(px+ox, py+oy, nodeEmpty)
		px, py = px+2*ox, py+2*oy

		next := -1
		for _, cand := range [3]int{h, right(h), left(h)} {
			if e.boundaryEdge(px, py, cand) {
				next = cand
				break
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("%w: dead end at vertex (%d,%d)", ErrMalformedBoundary, px, py)
		}
		if next != h {
			x, y := e.corner(geo, px, py)
			ring = append(ring, geom.Point{X: x, Y: y})
		}

		nx, ny := raster.Offset(next)
		if e.at(px+nx, py+ny) != nodeEdge {
			if px == px0 && py == py0 && next == h0 && len(ring) > 0 {
				return append(ring, ring[0]), nil
			}

			return nil, fmt.Errorf("%w: edge leaving (%d,%d) already traced", ErrMalformedBoundary, px, py)
		}
		h = next
	}

	return nil, fmt.Errorf("%w: ring starting at (%d,%d) does not close", ErrMalformedBoundary, px0, py0)
}
