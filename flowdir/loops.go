package flowdir

import "github.com/katalvlaran/drainflow/raster"

// breakLoops turns the lowest-index cell of every closed flow path of a
// single direction field into a pit and returns the number of loops broken.
// Steepest descent never closes a path; the channel gradient fallback can,
// between neighbours of equal elevation such as a flat-floored depression.
func breakLoops(f *Field) int {
	const (
		white uint8 = iota
		gray
		black
	)
	state := make([]uint8, f.Len())
	var path []int
	broken := 0
	for start := range state {
		path = path[:0]
		i, closed := start, false
		for state[i] == white {
			state[i] = gray
			path = append(path, i)
			x, y := f.Coordinate(i)
			d := f.Dir(x, y)
			if d == raster.NoDirection {
				break
			}
			nx, ny := raster.Neighbor(x, y, d)
			if !f.Valid(nx, ny) {
				break
			}
			i = f.Index(nx, ny)
			closed = state[i] == gray
		}
		if closed {
			low := i
			for k := len(path) - 1; path[k] != i; k-- {
				low = min(low, path[k])
			}
			x, y := f.Coordinate(low)
			f.SetDir(x, y, raster.NoDirection)
			broken++
		}
		for _, k := range path {
			state[k] = black
		}
	}

	return broken
}
