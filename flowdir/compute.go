package flowdir

import (
	"github.com/katalvlaran/drainflow/raster"
)

// Compute routes a single cell of dem with model m. It is a convenience
// wrapper around m.Route; channels may be nil.
func Compute(m Model, dem *raster.Grid[float64], x, y int, channels *raster.Grid[bool]) Result {
	return m.Route(dem, x, y, channels)
}

// ComputeField routes every cell of dem with model m.
//
// Behavior:
//  1. Validate dem, m and the optional channel mask geometry.
//  2. Route each row south to north, checking cancellation before each row.
//  3. No-data cells stay no-data in the returned field.
//  4. Single direction fields are checked for closed flow paths; the
//     lowest-index cell of each loop becomes a pit.
//
// On cancellation or abort the partially filled field is returned together
// with the error. Complexity: O(NX·NY).
func ComputeField(dem *raster.Grid[float64], m Model, opts ...Option) (*Field, error) {
	if dem == nil {
		return nil, ErrNilGrid
	}
	if m == nil {
		return nil, ErrNilModel
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Channels != nil {
		if err := raster.CheckGeometry(dem.Geometry, o.Channels.Geometry); err != nil {
			return nil, err
		}
	} else if err := dem.Validate(); err != nil {
		return nil, err
	}

	f, err := NewField(dem.Geometry, m.Fractional())
	if err != nil {
		return nil, err
	}
	for y := 0; y < dem.NY; y++ {
		select {
		case <-o.Ctx.Done():
			return f, o.Ctx.Err()
		default:
		}
		for x := 0; x < dem.NX; x++ {
			f.Set(x, y, m.Route(dem, x, y, o.Channels))
		}
		if o.Progress != nil && !o.Progress(y+1, dem.NY) {
			return f, ErrAborted
		}
	}
	if !f.Fractional() {
		breakLoops(f)
	}

	return f, nil
}

// ParseModel maps a model name ("d8", "rho8", "dinf", "mfd") to a Model.
// converge applies to MFD and seed to Rho8. ok is false for unknown names.
func ParseModel(name string, converge float64, seed int64) (m Model, ok bool) {
	switch name {
	case "d8", "D8":
		return D8{}, true
	case "rho8", "Rho8", "RHO8":
		return NewRho8(seed), true
	case "dinf", "dinfinity", "DInfinity", "d-inf":
		return DInfinity{}, true
	case "mfd", "MFD":
		return MFD{Converge: converge}, true
	}

	return nil, false
}
