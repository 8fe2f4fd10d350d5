package raster

import "errors"

var (
	// ErrEmptyGrid indicates a geometry without rows or columns.
	ErrEmptyGrid = errors.New("raster: grid must have at least one row and one column")
	// ErrBadCellSize indicates a non-positive or non-finite cell size.
	ErrBadCellSize = errors.New("raster: cell size must be positive and finite")
	// ErrDimensionMismatch indicates row data that does not fit the geometry.
	ErrDimensionMismatch = errors.New("raster: data does not match grid dimensions")
	// ErrGeometryMismatch indicates grids with different extent, cell size or origin.
	ErrGeometryMismatch = errors.New("raster: grid geometries differ")
)
