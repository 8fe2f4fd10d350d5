// Package flowdir computes per-cell flow directions on a digital elevation
// model under four competing routing models.
//
// What:
//
//   - D8:        single steepest-descent neighbour, ties to the lowest
//     direction index; optional channel-restricted variant used by basin
//     delineation.
//   - Rho8:      D8 with the continuous downslope azimuth stochastically
//     rounded to one of the two bounding 45° sectors.
//   - DInfinity: Tarboton's triangular-facet model splitting outflow between
//     the two directions bounding the steepest facet.
//   - MFD:       Freeman's multiple flow direction model, outflow shared by
//     every lower neighbour in proportion to slope^p.
//
// Every model is a value implementing Model. Compute routes a single cell;
// ComputeField routes a whole grid into a Field, the compact direction layer
// consumed by package accum and package basin.
//
// Why:
//
//   - Flow accumulation, drainage basins and channel networks all start
//     from a direction field.
//   - Single and multiple direction models trade dispersion for realism;
//     the engine lets callers pick per run.
//
// Complexity:
//
//   - Compute:      O(1) per cell (a 3×3 neighbourhood).
//   - ComputeField: O(NX·NY) time, O(NX·NY) memory (×8 for fractional models).
//
// Options:
//
//   - WithChannels(mask): channel-restricted D8 for cells inside mask.
//   - WithContext(ctx):   cancellation, checked once per row.
//   - WithProgress(fn):   row callback; returning false aborts.
//
// Errors:
//
//   - ErrNilGrid:   the DEM is nil.
//   - ErrNilModel:  no routing model supplied.
//   - ErrAborted:   the progress callback requested an abort.
//   - raster.ErrGeometryMismatch: the channel mask does not match the DEM.
//   - context.Canceled / context.DeadlineExceeded.
package flowdir
