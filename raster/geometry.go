package raster

import (
	"fmt"
	"math"
)

// geomTol is the relative tolerance used when comparing cell sizes and origins.
const geomTol = 1e-9

// Geometry describes the shape and georeference of a grid.
// Cell (x, y) is centred on (XMin + x·CellSize, YMin + y·CellSize).
type Geometry struct {
	NX, NY   int     // columns and rows
	CellSize float64 // edge length of a square cell
	XMin     float64 // world x of the centre of column 0
	YMin     float64 // world y of the centre of row 0 (southern row)
}

// Validate reports whether g describes a usable grid.
func (g Geometry) Validate() error {
	if g.NX <= 0 || g.NY <= 0 {
		return ErrEmptyGrid
	}
	if !(g.CellSize > 0) || math.IsInf(g.CellSize, 0) {
		return ErrBadCellSize
	}

	return nil
}

// Len returns the number of cells, NX·NY.
func (g Geometry) Len() int {
	return g.NX * g.NY
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g Geometry) InBounds(x, y int) bool {
	return x >= 0 && x < g.NX && y >= 0 && y < g.NY
}

// Index maps (x,y) to a row-major index: y*NX + x.
// Complexity: O(1).
func (g Geometry) Index(x, y int) int {
	return y*g.NX + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g Geometry) Coordinate(i int) (x, y int) {
	return i % g.NX, i / g.NX
}

// Center returns the world coordinate of the centre of cell (x,y).
func (g Geometry) Center(x, y int) (wx, wy float64) {
	return g.XMin + float64(x)*g.CellSize, g.YMin + float64(y)*g.CellSize
}

// Extent returns the outer world bounds of the grid (cell edges, not centres).
func (g Geometry) Extent() (xmin, ymin, xmax, ymax float64) {
	h := g.CellSize / 2
	return g.XMin - h, g.YMin - h,
		g.XMin + float64(g.NX)*g.CellSize - h,
		g.YMin + float64(g.NY)*g.CellSize - h
}

// Equal reports whether g and o describe the same grid.
func (g Geometry) Equal(o Geometry) bool {
	if g.NX != o.NX || g.NY != o.NY {
		return false
	}
	tol := geomTol * math.Max(1, math.Abs(g.CellSize))

	return math.Abs(g.CellSize-o.CellSize) <= tol &&
		math.Abs(g.XMin-o.XMin) <= tol*math.Max(1, math.Abs(g.XMin)) &&
		math.Abs(g.YMin-o.YMin) <= tol*math.Max(1, math.Abs(g.YMin))
}

// String formats g for diagnostics.
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d@%g (%g,%g)", g.NX, g.NY, g.CellSize, g.XMin, g.YMin)
}

// CheckGeometry validates ref and verifies every other geometry equals it.
// A mismatch is reported as ErrGeometryMismatch wrapped with both geometries.
func CheckGeometry(ref Geometry, others ...Geometry) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	for _, o := range others {
		if !ref.Equal(o) {
			return fmt.Errorf("%w: %s vs %s", ErrGeometryMismatch, ref, o)
		}
	}

	return nil
}
