// Package drainflow is an in-memory engine for routing flow over gridded
// digital elevation models and delineating drainage basins.
//
// What is drainflow?
//
//	A pure-Go library plus a small command-line tool that brings together:
//		• Flow directions: D8, Rho8, D-infinity, MFD
//		• Flow accumulation: upslope totals, loss and mean path length
//		• Drainage basins: outlets, heads and mouths, statistics, subbasins
//		• Boundary vectorization: basin regions to polygon rings
//
// Why drainflow?
//
//   - Explicit stacks everywhere: no recursion depth limits on large grids
//   - Sentinel errors, functional options, context cancellation
//   - Engine packages never perform I/O or logging
//
// Layout:
//
//	raster/: Grid[T] with geometry, no-data handling and direction helpers
//	flowdir/: routing models and the direction Field
//	accum/: upslope flow accumulation
//	basin/: basin delineation, shape measures, subbasin topology
//	boundary/: region outlines as geom.Polygon rings
//	cmd/drainflow: CLI over ESRI ASCII grids and shapefiles
//
// Grid convention:
//
//	row 0 is the southern row; direction codes run clockwise from north
//
//	    7 0 1
//	    6 · 2
//	    5 4 3
//
//	go get github.com/katalvlaran/drainflow
package drainflow
