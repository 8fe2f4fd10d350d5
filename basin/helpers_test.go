package basin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drainflow/flowdir"
	"github.com/katalvlaran/drainflow/raster"
)

const nd = -9999.0

func geo(nx, ny int) raster.Geometry {
	return raster.Geometry{NX: nx, NY: ny, CellSize: 1}
}

func dem(t testing.TB, rows [][]float64) *raster.Grid[float64] {
	t.Helper()
	g, err := raster.FromRows(geo(len(rows[0]), len(rows)), nd, rows)
	require.NoError(t, err)

	return g
}

func mask(t testing.TB, rows [][]bool) *raster.Grid[bool] {
	t.Helper()
	g, err := raster.FromRows(geo(len(rows[0]), len(rows)), false, rows)
	require.NoError(t, err)

	return g
}

func allChannels(t testing.TB, nx, ny int) *raster.Grid[bool] {
	t.Helper()
	g, err := raster.New(geo(nx, ny), false, true)
	require.NoError(t, err)

	return g
}

func codes(t testing.TB, rows [][]int32) *flowdir.Field {
	t.Helper()
	g, err := raster.FromRows(geo(len(rows[0]), len(rows)), -9, rows)
	require.NoError(t, err)
	f, err := flowdir.FromCodes(g)
	require.NoError(t, err)

	return f
}

const (
	n  = raster.North
	e  = raster.East
	s  = raster.South
	w  = raster.West
	se = raster.SouthEast
	sw = raster.SouthWest
	no = raster.NoDirection
)

// yChannel is a 5×5 network: a stem (2,0)-(2,2) joined at (2,2) by two
// branches from the north-west and north-east corners. Every other cell
// drains south, then along the southern row to the outlet (2,0).
func yChannel(t testing.TB) (*raster.Grid[float64], *raster.Grid[bool], *flowdir.Field) {
	t.Helper()
	rows := make([][]float64, 5)
	for y := range rows {
		rows[y] = make([]float64, 5)
		for x := range rows[y] {
			dx := x - 2
			if dx < 0 {
				dx = -dx
			}
			rows[y][x] = float64(2*y + dx)
		}
	}
	ch := mask(t, [][]bool{
		{false, false, true, false, false},
		{false, false, true, false, false},
		{false, false, true, false, false},
		{false, true, false, true, false},
		{true, false, false, false, true},
	})
	f := codes(t, [][]int32{
		{e, e, no, w, w},
		{s, s, s, s, s},
		{s, s, s, s, s},
		{s, se, s, sw, s},
		{se, s, s, s, sw},
	})

	return dem(t, rows), ch, f
}
