package accum

import (
	"context"
	"errors"

	"github.com/katalvlaran/drainflow/raster"
)

// NoData marks cells of the output grids whose direction is missing.
const NoData = -99999.0

// Sentinel errors for accumulation.
var (
	// ErrNilField indicates a nil direction field.
	ErrNilField = errors.New("accum: direction field is nil")
	// ErrCycleDetected indicates that the direction field contains a cycle.
	ErrCycleDetected = errors.New("accum: cycle detected in direction field")
	// ErrAborted indicates that a progress callback requested an abort.
	ErrAborted = errors.New("accum: aborted by progress callback")
)

// Option configures Accumulate.
type Option func(*Options)

// Options holds the settings of Accumulate.
type Options struct {
	// Ctx allows cancellation; checked once per row.
	Ctx context.Context

	// Weight, if non-nil, replaces the unit weight of every cell. No-data
	// weights count as 0.
	Weight *raster.Grid[float64]

	// ClampNegative removes negative weights from the flow and keeps every
	// accumulated value >= 0.
	ClampNegative bool

	// Loss requests the loss grid (meaningful with ClampNegative).
	Loss bool

	// PathLength requests the mean upslope path length grid.
	PathLength bool

	// Progress, if non-nil, is called after each row with (row, rows).
	// Returning false aborts with ErrAborted.
	Progress func(row, total int) bool
}

// DefaultOptions returns unit weights, no clamping and no extra outputs.
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

// WithWeight sets the per-cell weight grid.
func WithWeight(w *raster.Grid[float64]) Option {
	return func(o *Options) {
		o.Weight = w
	}
}

// WithClampNegative enables the clamp-negative policy.
func WithClampNegative() Option {
	return func(o *Options) {
		o.ClampNegative = true
	}
}

// WithLoss requests the loss grid.
func WithLoss() Option {
	return func(o *Options) {
		o.Loss = true
	}
}

// WithPathLength requests the mean path length grid.
func WithPathLength() Option {
	return func(o *Options) {
		o.PathLength = true
	}
}

// WithProgress installs a per-row progress callback.
func WithProgress(fn func(row, total int) bool) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// Result bundles the grids produced by Accumulate. Loss and PathLength are
// nil unless requested.
type Result struct {
	Flow       *raster.Grid[float64]
	Loss       *raster.Grid[float64]
	PathLength *raster.Grid[float64]
}
