package flowdir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drainflow/raster"
)

const nd = -9999.0

// demFromRows builds a unit-cell DEM; rows[0] is the southern row.
func demFromRows(t testing.TB, rows [][]float64) *raster.Grid[float64] {
	t.Helper()
	geo := raster.Geometry{NX: len(rows[0]), NY: len(rows), CellSize: 1}
	g, err := raster.FromRows(geo, nd, rows)
	require.NoError(t, err)

	return g
}

// plane builds an n×n DEM z = z0 − a·x − b·y (a east, b north drop per cell).
func plane(t testing.TB, n int, z0, a, b float64) *raster.Grid[float64] {
	t.Helper()
	rows := make([][]float64, n)
	for y := range rows {
		rows[y] = make([]float64, n)
		for x := range rows[y] {
			rows[y][x] = z0 - a*float64(x) - b*float64(y)
		}
	}

	return demFromRows(t, rows)
}

func maskFromRows(t testing.TB, rows [][]bool) *raster.Grid[bool] {
	t.Helper()
	geo := raster.Geometry{NX: len(rows[0]), NY: len(rows), CellSize: 1}
	g, err := raster.FromRows(geo, false, rows)
	require.NoError(t, err)

	return g
}
