// Package basin delineates drainage basins from a DEM and a channel mask.
//
// What:
//
//   - Delineate:        assigns every cell draining to a channel outlet the
//     1-based ID of that outlet's basin and measures each basin.
//   - Outlets:          channel cells with no downstream cell in the grid.
//   - ClassifyChannels: channel heads (no inflowing channel neighbour) and
//     mouths (confluences, more than one).
//   - Subbasins:        optional second pass splitting every basin at its
//     confluences, with downstream/upstream linkage and Result.Order.
//   - Measures:         Gravelius compactness, equivalent rectangle,
//     concentration time.
//
// Basins are grown by an iterative flood fill over the reverse D8 graph; a
// cell keeps the first ID it receives. Each fill records elevation and
// flow-path distance statistics; the boundary of every basin is traced by
// package boundary to obtain perimeter and shape measures.
//
// Basins with fewer than two cells or without relief are degenerate: their
// cells keep the ID but no Basin record is produced.
//
// Complexity:
//
//   - Delineate: O(NX·NY) for routing, fills and tracing, plus sorting of
//     subbasin seeds.
//
// Options:
//
//   - WithDirections(f): reuse a D8 field instead of routing the DEM.
//   - WithDistance():    also return the distance-to-outlet grid.
//   - WithSubbasins():   run the subbasin pass.
//   - WithContext(ctx):  cancellation, checked once per outlet.
//   - WithProgress(fn):  outlet callback; returning false aborts.
//
// Errors:
//
//   - ErrNilGrid, ErrNilMask:       missing inputs.
//   - ErrAborted:                   the progress callback requested an abort.
//   - ErrCycleDetected:             Result.Order on cyclic links.
//   - raster.ErrGeometryMismatch:   inputs of different geometry.
//   - boundary.ErrMalformedBoundary is not returned but collected in
//     Result.BoundaryErrors, one *boundary.BasinError per basin.
package basin
