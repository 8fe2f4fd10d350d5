package flowdir

import (
	"context"
	"errors"

	"github.com/katalvlaran/drainflow/raster"
)

// Sentinel errors for direction computations.
var (
	// ErrNilGrid indicates a nil elevation grid.
	ErrNilGrid = errors.New("flowdir: elevation grid is nil")
	// ErrNilModel indicates that no routing model was supplied.
	ErrNilModel = errors.New("flowdir: routing model is nil")
	// ErrAborted indicates that a progress callback requested an abort.
	ErrAborted = errors.New("flowdir: aborted by progress callback")
	// ErrBadCode indicates a direction code outside -1..7.
	ErrBadCode = errors.New("flowdir: direction code out of range")
)

// Model routes the outflow of a single cell from its 3×3 neighbourhood.
// Implementations are D8, *Rho8, DInfinity and MFD.
type Model interface {
	// Route computes the outflow of cell (x,y). channels may be nil; only
	// D8 honours it.
	Route(dem *raster.Grid[float64], x, y int, channels *raster.Grid[bool]) Result

	// Fractional reports whether the model distributes flow over several
	// neighbours (and therefore produces fractional fields).
	Fractional() bool

	// Name returns a short identifier, e.g. "d8" or "mfd".
	Name() string
}

// Result is the outflow of one cell.
//
// For single direction models Code is the receiving neighbour (or
// raster.NoDirection) and Fractions is unused. For fractional models
// Fractions holds the share sent to each direction and Code the dominant one.
type Result struct {
	Code       int
	Fractions  [8]float64
	Fractional bool
	// NoData is set when the routed cell itself is missing; such a result
	// must not be written into a direction field.
	NoData bool
}

// Fraction returns the share of the outflow sent towards direction d.
func (r Result) Fraction(d int) float64 {
	if r.Fractional {
		return r.Fractions[d]
	}
	if r.Code == d {
		return 1
	}

	return 0
}

// IsPit reports whether the cell sends no flow anywhere.
func (r Result) IsPit() bool {
	return r.Code == raster.NoDirection
}

func noDataResult() Result {
	return Result{Code: raster.NoDirection, NoData: true}
}

func pitResult(fractional bool) Result {
	return Result{Code: raster.NoDirection, Fractional: fractional}
}

// Option configures ComputeField.
type Option func(*Options)

// Options holds the settings of ComputeField.
type Options struct {
	// Ctx allows cancellation; checked once per row.
	Ctx context.Context

	// Channels, if non-nil, enables channel-restricted D8 routing for cells
	// inside the mask.
	Channels *raster.Grid[bool]

	// Progress, if non-nil, is called after each row with (row, rows).
	// Returning false aborts with ErrAborted.
	Progress func(row, total int) bool
}

// DefaultOptions returns Options with a background context, no channel mask
// and no progress callback.
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

// WithChannels restricts D8 routing of channel cells to channel neighbours.
func WithChannels(mask *raster.Grid[bool]) Option {
	return func(o *Options) {
		o.Channels = mask
	}
}

// WithProgress installs a per-row progress callback.
func WithProgress(fn func(row, total int) bool) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}
