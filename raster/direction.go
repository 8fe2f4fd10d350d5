package raster

import "math"

// Compass directions, numbered clockwise from north.
const (
	North = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// NoDirection marks a cell without a downslope neighbour (pit, outlet or flat).
const NoDirection = -1

// Neighbour offsets for directions 0..7. Row y grows northwards.
var (
	dx = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
	dy = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
)

// Offset returns the column and row offset of direction d.
func Offset(d int) (int, int) {
	d &= 7
	return dx[d], dy[d]
}

// Neighbor returns the coordinates of the neighbour of (x,y) in direction d.
// The result may lie outside the grid; check with InBounds.
func Neighbor(x, y, d int) (int, int) {
	d &= 7
	return x + dx[d], y + dy[d]
}

// Opposite returns the direction pointing back to the origin of d.
func Opposite(d int) int {
	return (d + 4) % 8
}

// IsDiagonal reports whether d is one of NE, SE, SW or NW.
func IsDiagonal(d int) bool {
	return d%2 == 1
}

// Length returns the distance between the centres of a cell and its
// neighbour in direction d: CellSize for cardinal, CellSize·√2 for diagonal.
func (g Geometry) Length(d int) float64 {
	if IsDiagonal(d) {
		return g.CellSize * math.Sqrt2
	}

	return g.CellSize
}
