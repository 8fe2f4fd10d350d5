package flowdir_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/drainflow/flowdir"
	"github.com/katalvlaran/drainflow/raster"
)

// TestMFD_MassConservation checks fractions sum to one wherever a lower
// neighbour exists and are all zero in pits.
func TestMFD_MassConservation(t *testing.T) {
	dem := demFromRows(t, [][]float64{
		{3, 8, 2, 7, 5},
		{6, 1, 9, 4, 4},
		{2, 7, 3, 8, 1},
		{9, 5, 6, 2, 6},
		{4, 3, 8, 5, 7},
	})
	m := flowdir.MFD{Converge: flowdir.DefaultConverge}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			r := flowdir.Compute(m, dem, x, y, nil)
			require.True(t, r.Fractional)
			sum := floats.Sum(r.Fractions[:])
			if r.IsPit() {
				assert.Equal(t, 0.0, sum, "pit (%d,%d)", x, y)
				continue
			}
			assert.InDelta(t, 1.0, sum, 1e-12, "cell (%d,%d)", x, y)
			for d := 0; d < 8; d++ {
				if r.Fractions[d] == 0 {
					continue
				}
				ix, iy := raster.Neighbor(x, y, d)
				assert.Less(t, dem.At(ix, iy), dem.At(x, y))
			}
		}
	}
}

// TestMFD_Weights compares shares against slope^p by hand.
func TestMFD_Weights(t *testing.T) {
	dem := demFromRows(t, [][]float64{
		{9, 3, 9},
		{9, 5, 4},
		{9, 9, 9},
	})
	p := 2.0
	r := flowdir.Compute(flowdir.MFD{Converge: p}, dem, 1, 1, nil)

	wS := math.Pow(2, p) // drop 2 to the south
	wE := math.Pow(1, p) // drop 1 to the east
	assert.InDelta(t, wS/(wS+wE), r.Fractions[raster.South], 1e-12)
	assert.InDelta(t, wE/(wS+wE), r.Fractions[raster.East], 1e-12)
	assert.Equal(t, raster.South, r.Code)

	// A non-positive exponent falls back to the default.
	r0 := flowdir.Compute(flowdir.MFD{}, dem, 1, 1, nil)
	r1 := flowdir.Compute(flowdir.MFD{Converge: flowdir.DefaultConverge}, dem, 1, 1, nil)
	assert.Equal(t, r1.Fractions, r0.Fractions)
}

// TestMFD_Pit returns zero fractions.
func TestMFD_Pit(t *testing.T) {
	dem := demFromRows(t, [][]float64{
		{9, 9, 9},
		{9, 1, 9},
		{9, 9, 9},
	})
	r := flowdir.Compute(flowdir.MFD{}, dem, 1, 1, nil)
	assert.True(t, r.IsPit())
	assert.Equal(t, [8]float64{}, r.Fractions)
}

// TestDInfinity_PlaneSplit splits flow on a plane between N and NE in
// proportion to the downslope angle inside the facet.
func TestDInfinity_PlaneSplit(t *testing.T) {
	dem := plane(t, 3, 10, 0.5, 1)
	r := flowdir.Compute(flowdir.DInfinity{}, dem, 1, 1, nil)

	toNE := math.Atan(0.5) / (math.Pi / 4)
	assert.InDelta(t, toNE, r.Fractions[raster.NorthEast], 1e-12)
	assert.InDelta(t, 1-toNE, r.Fractions[raster.North], 1e-12)
	assert.InDelta(t, 1.0, floats.Sum(r.Fractions[:]), 1e-12)
	assert.Equal(t, raster.NorthEast, r.Code)
}

// TestDInfinity_EdgeClip sends everything along a facet edge.
func TestDInfinity_EdgeClip(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		want int
	}{
		{"East", 1, 0, raster.East},
		{"North", 0, 1, raster.North},
		{"NorthEast", 1, 1, raster.NorthEast},
		{"SouthWest", -1, -1, raster.SouthWest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dem := plane(t, 3, 10, tc.a, tc.b)
			r := flowdir.Compute(flowdir.DInfinity{}, dem, 1, 1, nil)
			assert.InDelta(t, 1.0, r.Fractions[tc.want], 1e-12)
			assert.Equal(t, tc.want, r.Code)
		})
	}
}

// TestDInfinity_OnlyLowerNeighbors checks that positive shares reference
// neighbours not higher than the centre, and pits get nothing.
func TestDInfinity_OnlyLowerNeighbors(t *testing.T) {
	dem := demFromRows(t, [][]float64{
		{3, 8, 2, 7, 5},
		{6, 1, 9, 4, 4},
		{2, 7, 3, 8, 1},
		{9, 5, 6, 2, 6},
		{4, 3, 8, 5, 7},
	})
	f, err := flowdir.ComputeField(dem, flowdir.DInfinity{})
	require.NoError(t, err)
	require.True(t, f.Fractional())

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			var sum float64
			for d := 0; d < 8; d++ {
				fr := f.Fraction(x, y, d)
				sum += fr
				if fr > 0 {
					ix, iy := raster.Neighbor(x, y, d)
					assert.LessOrEqual(t, dem.At(ix, iy), dem.At(x, y))
				}
			}
			if f.Dir(x, y) == raster.NoDirection {
				assert.Equal(t, 0.0, sum)
			} else {
				assert.InDelta(t, 1.0, sum, 1e-12)
			}
		}
	}
}

// TestRho8_Statistical draws many routes on a plane whose azimuth sits 59%
// of the way from N to NE; NE must be chosen about 59% of the time.
func TestRho8_Statistical(t *testing.T) {
	dem := plane(t, 3, 10, 0.5, 1)
	m := flowdir.NewRho8(42)

	const n = 20000
	counts := map[int]int{}
	for i := 0; i < n; i++ {
		counts[flowdir.Compute(m, dem, 1, 1, nil).Code]++
	}
	assert.Equal(t, n, counts[raster.North]+counts[raster.NorthEast], "only bounding sectors")

	want := math.Atan(0.5) / (math.Pi / 4)
	got := float64(counts[raster.NorthEast]) / n
	assert.InDelta(t, want, got, 0.02)
}

// TestRho8_SeedDeterminism checks that the same seed yields the same field.
func TestRho8_SeedDeterminism(t *testing.T) {
	dem := demFromRows(t, [][]float64{
		{3, 8, 2, 7, 5},
		{6, 1, 9, 4, 4},
		{2, 7, 3, 8, 1},
		{9, 5, 6, 2, 6},
		{4, 3, 8, 5, 7},
	})
	a, err := flowdir.ComputeField(dem, flowdir.NewRho8(7))
	require.NoError(t, err)
	b, err := flowdir.ComputeField(dem, &flowdir.Rho8{Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, a.Codes(-9), b.Codes(-9))

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			d := a.Dir(x, y)
			if d == raster.NoDirection {
				continue
			}
			ix, iy := raster.Neighbor(x, y, d)
			assert.Less(t, dem.At(ix, iy), dem.At(x, y))
		}
	}
}
