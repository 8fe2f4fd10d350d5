package flowdir

import (
	"fmt"

	"github.com/katalvlaran/drainflow/raster"
)

// codeNoData marks cells without a direction because they are missing.
const codeNoData int8 = -2

// Field is a direction layer over a grid geometry. Every cell holds a code
// (0..7, raster.NoDirection, or no-data); fractional fields additionally hold
// eight outflow fractions per cell in one flat buffer indexed
// (y·NX + x)·8 + d.
type Field struct {
	raster.Geometry
	codes []int8
	frac  []float64
}

// NewField allocates a field with every cell set to no-data.
func NewField(geo raster.Geometry, fractional bool) (*Field, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	f := &Field{Geometry: geo, codes: make([]int8, geo.Len())}
	for i := range f.codes {
		f.codes[i] = codeNoData
	}
	if fractional {
		f.frac = make([]float64, 8*geo.Len())
	}

	return f, nil
}

// FromCodes builds a single direction field from an integer grid. Cells that
// are no-data in codes become no-data; other values must lie in -1..7.
func FromCodes(codes *raster.Grid[int32]) (*Field, error) {
	f, err := NewField(codes.Geometry, false)
	if err != nil {
		return nil, err
	}
	for y := 0; y < codes.NY; y++ {
		for x := 0; x < codes.NX; x++ {
			if codes.IsNoData(x, y) {
				continue
			}
			c := codes.At(x, y)
			if c < raster.NoDirection || c > 7 {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadCode, c, x, y)
			}
			f.codes[codes.Index(x, y)] = int8(c)
		}
	}

	return f, nil
}

// Fractional reports whether the field carries per-direction fractions.
func (f *Field) Fractional() bool {
	return f.frac != nil
}

// Valid reports whether (x,y) is inside the field and not no-data.
func (f *Field) Valid(x, y int) bool {
	return f.InBounds(x, y) && f.codes[f.Index(x, y)] != codeNoData
}

// Dir returns the (dominant) direction code of (x,y), or raster.NoDirection
// for pits, no-data and out-of-grid cells.
func (f *Field) Dir(x, y int) int {
	if !f.InBounds(x, y) {
		return raster.NoDirection
	}
	c := f.codes[f.Index(x, y)]
	if c == codeNoData {
		return raster.NoDirection
	}

	return int(c)
}

// Fraction returns the share of (x,y)'s outflow sent towards direction d.
func (f *Field) Fraction(x, y, d int) float64 {
	if !f.Valid(x, y) {
		return 0
	}
	i := f.Index(x, y)
	if f.frac != nil {
		return f.frac[i*8+d]
	}
	if int(f.codes[i]) == d {
		return 1
	}

	return 0
}

// Inflow returns the share of the outflow of the neighbour of (x,y) in
// direction d that drains into (x,y).
func (f *Field) Inflow(x, y, d int) float64 {
	ix, iy := raster.Neighbor(x, y, d)
	return f.Fraction(ix, iy, raster.Opposite(d))
}

// DrainsInto reports whether the neighbour of (x,y) in direction d sends any
// flow into (x,y).
func (f *Field) DrainsInto(x, y, d int) bool {
	return f.Inflow(x, y, d) > 0
}

// Set stores r for cell (x,y). No-data results mark the cell as no-data.
func (f *Field) Set(x, y int, r Result) {
	i := f.Index(x, y)
	if r.NoData {
		f.SetNoData(x, y)
		return
	}
	f.codes[i] = int8(r.Code)
	if f.frac == nil {
		return
	}
	for d := 0; d < 8; d++ {
		f.frac[i*8+d] = r.Fraction(d)
	}
}

// SetDir stores a single direction code for (x,y), clearing any fractions.
func (f *Field) SetDir(x, y, d int) {
	i := f.Index(x, y)
	f.codes[i] = int8(d)
	if f.frac == nil {
		return
	}
	for k := 0; k < 8; k++ {
		f.frac[i*8+k] = 0
	}
	if d >= 0 {
		f.frac[i*8+d] = 1
	}
}

// SetNoData marks (x,y) as missing.
func (f *Field) SetNoData(x, y int) {
	i := f.Index(x, y)
	f.codes[i] = codeNoData
	if f.frac != nil {
		for d := 0; d < 8; d++ {
			f.frac[i*8+d] = 0
		}
	}
}

// Codes exports the direction codes as an integer grid with no-data value
// noData.
func (f *Field) Codes(noData int32) *raster.Grid[int32] {
	g, _ := raster.New(f.Geometry, noData, noData) // geometry validated at construction
	data := g.Data()
	for i, c := range f.codes {
		if c != codeNoData {
			data[i] = int32(c)
		}
	}

	return g
}
