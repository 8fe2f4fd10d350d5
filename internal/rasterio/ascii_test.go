package rasterio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drainflow/raster"
)

const sample = `ncols 3
nrows 2
xllcorner 100
yllcorner 200
cellsize 10
NODATA_value -1
1 2 3
4 -1 6
`

func writeGrid(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "g.asc")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestReadFile(t *testing.T) {
	g, err := ReadFile(writeGrid(t, sample))
	require.NoError(t, err)

	assert.Equal(t, raster.Geometry{NX: 3, NY: 2, CellSize: 10, XMin: 105, YMin: 205}, g.Geometry)
	assert.Equal(t, -1.0, g.NoData)
	// First file row is the northern one.
	assert.Equal(t, 1.0, g.At(0, 1))
	assert.Equal(t, 6.0, g.At(2, 0))
	assert.True(t, g.IsNoData(1, 0))
}

func TestReadFile_Origin(t *testing.T) {
	tests := []struct {
		name       string
		hdr        string
		xmin, ymin float64
	}{
		{"corner", "xllcorner 10\nyllcorner 20\n", 11, 21},
		{"zero corner", "xllcorner 0\nyllcorner 20\n", 1, 21},
		{"center", "xllcenter 5\nyllcenter 7\n", 5, 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := "ncols 1\nnrows 1\n" + tc.hdr + "cellsize 2\nNODATA_value -9999\n3.5\n"
			g, err := ReadFile(writeGrid(t, src))
			require.NoError(t, err)
			assert.Equal(t, tc.xmin, g.XMin)
			assert.Equal(t, tc.ymin, g.YMin)
			assert.Equal(t, 2.0, g.CellSize)
			assert.Equal(t, 3.5, g.At(0, 0))
		})
	}
}

func TestReadFile_Errors(t *testing.T) {
	const origin = "xllcorner 0\nyllcorner 0\n"
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"missing nodata", "ncols 1\nnrows 1\n" + origin + "cellsize 1\n1\n", ErrHeader},
		{"short header", "ncols 1\nnrows 1\n" + origin, ErrHeader},
		{"bad header value", "ncols x\nnrows 1\n" + origin + "cellsize 1\nNODATA_value -1\n1\n", ErrHeader},
		{"extra values", "ncols 1\nnrows 1\n" + origin + "cellsize 1\nNODATA_value -1\n1 2\n", ErrData},
		{"empty grid", "ncols 0\nnrows 1\n" + origin + "cellsize 1\nNODATA_value -1\n", raster.ErrEmptyGrid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadFile(writeGrid(t, tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.asc"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteReadRoundTrip(t *testing.T) {
	g, err := ReadFile(writeGrid(t, sample))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.asc")
	require.NoError(t, WriteFile(path, g))
	back, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, g.Geometry, back.Geometry)
	assert.Equal(t, g.NoData, back.NoData)
	assert.Equal(t, g.Data(), back.Data())
}

func TestWriteFile_Int(t *testing.T) {
	geo := raster.Geometry{NX: 2, NY: 2, CellSize: 1}
	g, err := raster.FromRows(geo, int32(0), [][]int32{{1, 2}, {3, 0}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ids.asc")
	require.NoError(t, WriteFile(path, g))
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "NCOLS         2\nNROWS         2\nXLLCORNER     -0.5\nYLLCORNER     -0.5\n"+
		"CELLSIZE      1\nNODATA_VALUE  0\n3 0\n1 2\n", string(body))
}
