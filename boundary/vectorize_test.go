package boundary_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drainflow/boundary"
	"github.com/katalvlaran/drainflow/raster"
)

func idGrid(t *testing.T, cs float64, rows [][]int32) *raster.Grid[int32] {
	t.Helper()
	geo := raster.Geometry{NX: len(rows[0]), NY: len(rows), CellSize: cs}
	g, err := raster.FromRows(geo, 0, rows)
	require.NoError(t, err)

	return g
}

// signedArea is positive for counter-clockwise rings.
func signedArea(r geom.Path) float64 {
	a := 0.0
	for i := 1; i < len(r); i++ {
		a += r[i-1].X*r[i].Y - r[i].X*r[i-1].Y
	}

	return a / 2
}

// checkMembership asserts that every cell centre lies inside poly exactly
// when the cell carries id.
func checkMembership(t *testing.T, ids *raster.Grid[int32], id int32, poly geom.Polygon) {
	t.Helper()
	for _, ring := range poly {
		require.GreaterOrEqual(t, len(ring), 5)
		assert.Equal(t, ring[0], ring[len(ring)-1], "ring closed")
	}
	for y := 0; y < ids.NY; y++ {
		for x := 0; x < ids.NX; x++ {
			cx, cy := ids.Center(x, y)
			want := geom.Outside
			if ids.At(x, y) == id {
				want = geom.Inside
			}
			assert.Equal(t, want, geom.Point{X: cx, Y: cy}.Within(poly), "id %d cell (%d,%d)", id, x, y)
		}
	}
}

// TestVectorize_SingleCell traces one cell clockwise from its south-west
// corner.
func TestVectorize_SingleCell(t *testing.T) {
	ids := idGrid(t, 10, [][]int32{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	poly, err := boundary.Vectorize(ids, 1)
	require.NoError(t, err)
	require.Len(t, poly, 1)

	want := geom.Path{{X: 5, Y: 5}, {X: 5, Y: 15}, {X: 15, Y: 15}, {X: 15, Y: 5}, {X: 5, Y: 5}}
	assert.Equal(t, want, poly[0])
	assert.Less(t, signedArea(poly[0]), 0.0, "outer ring clockwise")
	assert.Equal(t, 40.0, boundary.Perimeter(poly))
	assert.InDelta(t, 100.0, math.Abs(poly.Area()), 1e-9)
}

// TestVectorize_Hole emits an outer ring and a counter-clockwise hole.
func TestVectorize_Hole(t *testing.T) {
	ids := idGrid(t, 1, [][]int32{
		{1, 1, 1},
		{1, 2, 1},
		{1, 1, 1},
	})
	poly, err := boundary.Vectorize(ids, 1)
	require.NoError(t, err)
	require.Len(t, poly, 2)

	assert.InDelta(t, -9.0, signedArea(poly[0]), 1e-9)
	assert.InDelta(t, 1.0, signedArea(poly[1]), 1e-9)
	assert.Equal(t, 16.0, boundary.Perimeter(poly))
	checkMembership(t, ids, 1, poly)
}

// TestVectorize_Pinch keeps regions touching at one corner apart.
func TestVectorize_Pinch(t *testing.T) {
	ids := idGrid(t, 1, [][]int32{
		{1, 0},
		{0, 1},
	})
	poly, err := boundary.Vectorize(ids, 1)
	require.NoError(t, err)
	require.Len(t, poly, 2)
	for _, ring := range poly {
		assert.Len(t, ring, 5)
		assert.InDelta(t, -1.0, signedArea(ring), 1e-9)
	}
	checkMembership(t, ids, 1, poly)
}

// TestVectorize_Origin places corners relative to XMin/YMin.
func TestVectorize_Origin(t *testing.T) {
	geo := raster.Geometry{NX: 2, NY: 1, CellSize: 2, XMin: 100, YMin: 50}
	ids, err := raster.FromRows(geo, 0, [][]int32{{0, 4}})
	require.NoError(t, err)

	poly, err := boundary.Vectorize(ids, 4)
	require.NoError(t, err)
	require.Len(t, poly, 1)
	b := poly.Bounds()
	assert.Equal(t, geom.Point{X: 101, Y: 49}, b.Min)
	assert.Equal(t, geom.Point{X: 103, Y: 51}, b.Max)
}

// TestVectorize_Random checks closure and membership on random masks.
func TestVectorize_Random(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		r := rand.New(rand.NewSource(seed))
		rows := make([][]int32, 12)
		for y := range rows {
			rows[y] = make([]int32, 12)
			for x := range rows[y] {
				rows[y][x] = int32(r.Intn(3))
			}
		}
		ids := idGrid(t, 1, rows)

		polys, err := boundary.VectorizeAll(ids)
		require.NoError(t, err)
		for id, poly := range polys {
			checkMembership(t, ids, id, poly)
		}
		assert.Len(t, polys, 2, "ids 1 and 2")
	}
}

// TestVectorize_Missing covers absent ids and nil grids.
func TestVectorize_Missing(t *testing.T) {
	ids := idGrid(t, 1, [][]int32{{1, 1}})
	poly, err := boundary.Vectorize(ids, 7)
	assert.NoError(t, err)
	assert.Nil(t, poly)

	_, err = boundary.Vectorize(nil, 1)
	assert.ErrorIs(t, err, boundary.ErrNilGrid)
	_, err = boundary.VectorizeAll(nil)
	assert.ErrorIs(t, err, boundary.ErrNilGrid)
}

// TestBasinError unwraps to the cause.
func TestBasinError(t *testing.T) {
	var err error = &boundary.BasinError{ID: 3, Err: boundary.ErrMalformedBoundary}
	assert.ErrorIs(t, err, boundary.ErrMalformedBoundary)
	assert.Equal(t, "boundary: id 3: boundary: malformed boundary", err.Error())

	var be *boundary.BasinError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, int32(3), be.ID)
}
