package basin

import (
	"context"
	"errors"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/drainflow/flowdir"
	"github.com/katalvlaran/drainflow/raster"
)

// NoDistance marks cells of the distance grid outside every basin.
const NoDistance = -1.0

// Sentinel errors for basin delineation.
var (
	// ErrNilGrid indicates a nil DEM.
	ErrNilGrid = errors.New("basin: elevation grid is nil")
	// ErrNilMask indicates a nil channel mask.
	ErrNilMask = errors.New("basin: channel mask is nil")
	// ErrAborted indicates that a progress callback requested an abort.
	ErrAborted = errors.New("basin: aborted by progress callback")
	// ErrCycleDetected indicates cyclic subbasin links.
	ErrCycleDetected = errors.New("basin: cycle detected in subbasin links")
)

// Cell addresses one grid cell.
type Cell struct {
	X, Y int
}

// Basin is the statistics record of one non-degenerate basin or subbasin.
type Basin struct {
	ID     int32
	Outlet Cell
	// OutletPoint is the world coordinate of the outlet cell centre.
	OutletPoint geom.Point

	Cells int
	ZMean float64
	ZMin  float64
	ZMax  float64

	// Flow-path distance from each cell to the outlet, map units.
	DistMean float64
	DistMax  float64

	Area      float64
	Perimeter float64
	Centroid  geom.Point
	Boundary  geom.Polygon

	Gravelius float64
	Shape     Shape
	// RectLength and RectWidth are the sides of the equivalent rectangle;
	// both are 0 when it does not exist.
	RectLength float64
	RectWidth  float64
	// Tc is the concentration time in hours, -1 when undefined.
	Tc float64

	// Downstream is the ID of the subbasin this one drains into, 0 if none.
	// Upstream counts the subbasins draining into this one. Both are only
	// set for subbasins.
	Downstream int32
	Upstream   int
}

// Relief returns ZMax - ZMin.
func (b Basin) Relief() float64 {
	return b.ZMax - b.ZMin
}

// Result bundles the outputs of Delineate.
type Result struct {
	// IDs holds basin IDs, 0 for cells outside every basin.
	IDs *raster.Grid[int32]
	// Basins lists the non-degenerate basins by ascending ID.
	Basins []Basin
	// Outlets lists the outlet of basin i+1 at index i.
	Outlets []Cell
	// Distance holds the flow-path distance to the outlet when requested.
	Distance *raster.Grid[float64]
	// Directions is the D8 field the basins were grown on.
	Directions *flowdir.Field

	Heads  []Cell
	Mouths []Cell

	// SubbasinIDs, Subbasins and Links are set by the subbasin pass.
	// Links[id] is the downstream subbasin of id (0 if none); index 0 is
	// unused.
	SubbasinIDs *raster.Grid[int32]
	Subbasins   []Basin
	Links       []int32

	// BoundaryErrors collects per-basin tracing failures.
	BoundaryErrors []error
}

// Option configures Delineate.
type Option func(*Options)

// Options holds the settings of Delineate.
type Options struct {
	// Ctx allows cancellation; checked once per outlet.
	Ctx context.Context

	// Directions, if non-nil, is used instead of routing the DEM with
	// channel-restricted D8. Fractional fields are reduced to their
	// dominant direction.
	Directions *flowdir.Field

	// Distance requests the distance-to-outlet grid.
	Distance bool

	// Subbasins enables the subbasin pass.
	Subbasins bool

	// Progress, if non-nil, is called after each outlet with
	// (outlet, outlets). Returning false aborts with ErrAborted.
	Progress func(outlet, total int) bool
}

// DefaultOptions returns Options for a plain basin delineation.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirections supplies a precomputed direction field.
func WithDirections(f *flowdir.Field) Option {
	return func(o *Options) {
		o.Directions = f
	}
}

// WithDistance requests the distance-to-outlet grid.
func WithDistance() Option {
	return func(o *Options) {
		o.Distance = true
	}
}

// WithSubbasins enables the subbasin pass.
func WithSubbasins() Option {
	return func(o *Options) {
		o.Subbasins = true
	}
}

// WithProgress installs a per-outlet progress callback.
func WithProgress(fn func(outlet, total int) bool) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}
