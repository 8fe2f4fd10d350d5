// Package raster provides the in-memory grid abstraction consumed and produced
// by the drainflow engine: a rectangular, row-major array of cell values with
// a shared georeference and a no-data sentinel.
//
// What:
//
//   - Geometry: NX×NY cells of size CellSize, cell (0,0) centred on (XMin, YMin).
//     Row y grows northwards; world y = YMin + y·CellSize.
//   - Grid[T]: typed cell storage for elevations (float64), basin IDs (int32),
//     channel masks (bool) and any other comparable layer.
//   - Direction helpers: the eight compass neighbours numbered clockwise from
//     north (0=N, 1=NE, … 7=NW), their opposites and edge lengths.
//
// Why:
//
//   - Every engine operation validates that its participating grids share one
//     Geometry before touching any cell (no implicit resampling).
//   - A single flat buffer per grid keeps neighbourhood scans cache friendly.
//
// Complexity:
//
//   - New/FromRows:   O(NX·NY) time and memory.
//   - At/Set/Valid:   O(1).
//   - CheckGeometry:  O(k) for k grids.
//
// Errors:
//
//   - ErrEmptyGrid:          NX or NY is not positive.
//   - ErrBadCellSize:        CellSize is not a positive finite number.
//   - ErrDimensionMismatch:  row data does not match the declared geometry.
//   - ErrGeometryMismatch:   two grids of one operation differ in extent,
//     cell size or origin.
package raster
