package basin

import (
	"errors"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/drainflow/boundary"
	"github.com/katalvlaran/drainflow/flowdir"
	"github.com/katalvlaran/drainflow/raster"
)

// Delineate grows one basin per channel outlet of dem.
//
// Behavior:
//  1. Route dem with channel-restricted D8 (or use WithDirections).
//  2. Find outlets in raster scan order, skipping cells that are no-data in
//     dem; outlet i gets basin ID i+1.
//  3. Flood fill each outlet over the reverse direction graph, recording
//     elevation and distance statistics.
//  4. Classify channel heads and mouths.
//  5. Trace basin boundaries and derive the shape measures of every
//     non-degenerate basin.
//  6. Optionally split basins into subbasins at confluences.
//
// On cancellation or abort the partial Result is returned with the error;
// basins filled so far keep their IDs but have no records.
func Delineate(dem *raster.Grid[float64], channels *raster.Grid[bool], opts ...Option) (*Result, error) {
	if dem == nil {
		return nil, ErrNilGrid
	}
	if channels == nil {
		return nil, ErrNilMask
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := raster.CheckGeometry(dem.Geometry, channels.Geometry); err != nil {
		return nil, err
	}

	f := o.Directions
	if f != nil {
		if err := raster.CheckGeometry(dem.Geometry, f.Geometry); err != nil {
			return nil, err
		}
	} else {
		var err error
		f, err = flowdir.ComputeField(dem, flowdir.D8{}, flowdir.WithChannels(channels), flowdir.WithContext(o.Ctx))
		if err != nil {
			return nil, err
		}
	}

	ids, _ := raster.New[int32](dem.Geometry, 0, 0)
	r := &Result{IDs: ids, Directions: f, Outlets: onSurface(dem, Outlets(f, channels))}
	fl := &filler{dem: dem, field: f, ids: ids}
	if o.Distance {
		r.Distance, _ = raster.New(dem.Geometry, NoDistance, NoDistance)
		fl.dist = r.Distance
	}

	samples := make([]sample, len(r.Outlets))
	for i, out := range r.Outlets {
		select {
		case <-o.Ctx.Done():
			return r, o.Ctx.Err()
		default:
		}
		samples[i] = fl.fill(out, int32(i+1), nil)
		if o.Progress != nil && !o.Progress(i+1, len(r.Outlets)) {
			return r, ErrAborted
		}
	}

	r.Heads, r.Mouths = ClassifyChannels(f, channels)
	r.Basins, r.BoundaryErrors = measure(ids, r.Outlets, samples)

	if o.Subbasins {
		if err := r.subdivide(o.Ctx, dem, channels); err != nil {
			return r, err
		}
	}

	return r, nil
}

// measure builds the records of every non-degenerate region of ids. Region
// id i+1 has outlet outlets[i] and fill sample samples[i].
func measure(ids *raster.Grid[int32], outlets []Cell, samples []sample) ([]Basin, []error) {
	polys, err := boundary.VectorizeAll(ids)
	var errs []error
	if err != nil {
		if j, ok := err.(interface{ Unwrap() []error }); ok {
			errs = j.Unwrap()
		} else {
			errs = []error{err}
		}
	}

	var basins []Basin
	for i, s := range samples {
		if s.degenerate() {
			continue
		}
		id := int32(i + 1)
		b := s.record(id, outlets[i], ids.Geometry)
		if poly, ok := polys[id]; ok {
			b.setBoundary(poly)
		}
		basins = append(basins, b)
	}

	return basins, errs
}

// setBoundary stores poly and the measures derived from its perimeter.
func (b *Basin) setBoundary(poly geom.Polygon) {
	b.Boundary = poly
	b.Perimeter = boundary.Perimeter(poly)
	b.Gravelius = Gravelius(b.Perimeter, b.Area)
	b.Shape = ClassifyShape(b.Gravelius)
	b.RectLength, b.RectWidth, _ = EquivalentRectangle(b.Perimeter, b.Area)
}

// BasinErrorIDs returns the IDs of basins whose boundary could not be traced.
func (r *Result) BasinErrorIDs() []int32 {
	var out []int32
	for _, err := range r.BoundaryErrors {
		var be *boundary.BasinError
		if errors.As(err, &be) {
			out = append(out, be.ID)
		}
	}

	return out
}
