// Package boundary converts regions of an integer ID grid into closed
// polygon rings.
//
// What:
//
//   - Vectorize:    the rings of one ID as a geom.Polygon in world
//     coordinates.
//   - VectorizeAll: every positive ID of the grid.
//   - Perimeter:    total ring length of a polygon.
//
// The tracer works on an edge grid of (2·nx+1)×(2·ny+1) nodes laid over the
// cell window of the region at half-cell resolution:
//
//	(even, even) -> cell corners (ring vertices)
//	(odd,  even) -> midpoints of horizontal cell edges
//	(even, odd)  -> midpoints of vertical cell edges
//	(odd,  odd)  -> cell centres
//
// Midpoints of edges separating the region from anything else are marked 1,
// centres of region cells -1. The walk follows marked edges keeping the
// region on its right, preferring to continue straight, then to turn right,
// then left, and clears every edge it passes. Outer rings therefore come out
// clockwise and holes counter-clockwise; regions touching at a single corner
// yield separate rings.
//
// Complexity:
//
//   - Vectorize:    O(w·h) for the bounding window w×h of the region.
//   - VectorizeAll: O(NX·NY + Σ w·h).
//
// Errors:
//
//   - ErrMalformedBoundary: the walk found no way to continue; wrapped in
//     *BasinError by VectorizeAll.
//   - ErrNilGrid: the ID grid is nil.
package boundary
