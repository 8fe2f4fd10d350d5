package raster

// Grid is a typed raster layer. It owns a flat row-major buffer of NX·NY
// values. Cells equal to NoData (or NaN for floating point layers) are
// treated as missing by every engine operation.
//
// A Grid is not safe for concurrent mutation.
type Grid[T comparable] struct {
	Geometry
	NoData T
	data   []T
}

// New allocates a grid with every cell set to fill.
// Complexity: O(NX·NY) time and memory.
func New[T comparable](geo Geometry, noData, fill T) (*Grid[T], error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	data := make([]T, geo.Len())
	var zero T
	if fill != zero {
		for i := range data {
			data[i] = fill
		}
	}

	return &Grid[T]{Geometry: geo, NoData: noData, data: data}, nil
}

// FromRows builds a grid from rows[y][x]. rows[0] is the southern row (y=0).
// The input is deep-copied.
// Returns ErrDimensionMismatch if the rows do not match geo.NX×geo.NY.
func FromRows[T comparable](geo Geometry, noData T, rows [][]T) (*Grid[T], error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	if len(rows) != geo.NY {
		return nil, ErrDimensionMismatch
	}
	data := make([]T, 0, geo.Len())
	for _, row := range rows {
		if len(row) != geo.NX {
			return nil, ErrDimensionMismatch
		}
		data = append(data, row...)
	}

	return &Grid[T]{Geometry: geo, NoData: noData, data: data}, nil
}

// Like allocates a grid sharing src's geometry, filled with fill.
func Like[T comparable, S comparable](src *Grid[S], noData, fill T) *Grid[T] {
	g, _ := New(src.Geometry, noData, fill) // src geometry is already valid

	return g
}

// At returns the value of cell (x,y). The caller guarantees InBounds.
func (g *Grid[T]) At(x, y int) T {
	return g.data[y*g.NX+x]
}

// Set stores v into cell (x,y). The caller guarantees InBounds.
func (g *Grid[T]) Set(x, y int, v T) {
	g.data[y*g.NX+x] = v
}

// IsNoData reports whether (x,y) is outside the grid or holds the no-data value.
func (g *Grid[T]) IsNoData(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	v := g.data[y*g.NX+x]

	return v == g.NoData || v != v // v != v is only true for NaN
}

// Valid is the negation of IsNoData.
func (g *Grid[T]) Valid(x, y int) bool {
	return !g.IsNoData(x, y)
}

// SetNoData marks cell (x,y) as missing.
func (g *Grid[T]) SetNoData(x, y int) {
	g.data[y*g.NX+x] = g.NoData
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Data exposes the row-major buffer. Mutations are visible to the grid.
func (g *Grid[T]) Data() []T {
	return g.data
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &Grid[T]{Geometry: g.Geometry, NoData: g.NoData, data: data}
}

// CountValid returns the number of cells that are not no-data.
func (g *Grid[T]) CountValid() int {
	n := 0
	for _, v := range g.data {
		if v != g.NoData && v == v {
			n++
		}
	}

	return n
}
