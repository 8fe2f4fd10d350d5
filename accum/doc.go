// Package accum computes upslope flow accumulation over a direction field.
//
// What:
//
//   - Accumulate: total flow per cell, i.e. the cell's own weight plus the
//     shares of every upslope cell that drains into it, for single (D8,
//     Rho8) and fractional (DInfinity, MFD) direction fields alike.
//   - Optional loss grid: the negative mass removed by the clamp-negative
//     policy.
//   - Optional mean path length grid: flow-weighted mean distance travelled
//     by upslope contributions before reaching each cell.
//
// The traversal is a depth-first post-order walk over the implicit graph
// "neighbour drains into cell", driven by an explicit stack so that long
// catchments cannot exhaust the goroutine stack. Every cell carries a lock
// state:
//
//	White (0) -> not visited
//	Gray  (1) -> on the stack, upslope contributors pending
//	Black (2) -> value final, never processed again
//
// A Gray cell met again while resolving its own upslope area means the
// direction field contains a cycle; Accumulate then stops with
// ErrCycleDetected instead of looping.
//
// Why:
//
//   - Accumulation grids define channel networks (threshold on flow) and
//     contributing areas (flow × cell area).
//   - Weighted accumulation sums any per-cell quantity downstream, e.g.
//     rainfall excess or sediment yield.
//
// Complexity:
//
//   - Time:   O(NX·NY) (each cell finalized once, 8 neighbour probes each).
//   - Memory: O(NX·NY) for the output grids, lock states and stack.
//
// Options:
//
//   - WithWeight(g):         per-cell weight instead of 1.0.
//   - WithClampNegative():   negative weights count as loss, flow stays >= 0.
//   - WithLoss():            also return the loss grid.
//   - WithPathLength():      also return the mean path length grid.
//   - WithContext(ctx):      cancellation, checked once per row.
//   - WithProgress(fn):      row callback; returning false aborts.
//
// Errors:
//
//   - ErrNilField:                the direction field is nil.
//   - ErrCycleDetected:           the direction field is cyclic.
//   - ErrAborted:                 the progress callback requested an abort.
//   - raster.ErrGeometryMismatch: weight grid and field differ.
//   - context.Canceled / context.DeadlineExceeded.
package accum
