package flowdir

import (
	"math"

	"github.com/katalvlaran/drainflow/raster"
)

// DefaultConverge is Freeman's recommended convergence exponent.
const DefaultConverge = 1.1

// MFD implements Freeman's (1991) multiple flow direction model. Every lower
// neighbour receives a share proportional to slope^Converge; the shares of a
// cell with at least one lower neighbour sum to one, a pit has all zeros.
type MFD struct {
	// Converge is the exponent p. Values ≤ 0 fall back to DefaultConverge.
	Converge float64
}

// Name implements Model.
func (MFD) Name() string { return "mfd" }

// Fractional implements Model.
func (MFD) Fractional() bool { return true }

// Route implements Model. The channel mask is ignored.
func (m MFD) Route(dem *raster.Grid[float64], x, y int, _ *raster.Grid[bool]) Result {
	nb, ok := gather(dem, x, y)
	if !ok {
		return noDataResult()
	}
	p := m.Converge
	if !(p > 0) {
		p = DefaultConverge
	}

	res := Result{Code: raster.NoDirection, Fractional: true}
	var sum float64
	for d := 0; d < 8; d++ {
		if !nb.ok[d] {
			continue
		}
		if s := nb.slope(d); s > 0 {
			res.Fractions[d] = math.Pow(s, p)
			sum += res.Fractions[d]
		}
	}
	if sum == 0 {
		return res
	}

	best := 0.0
	for d := 0; d < 8; d++ {
		res.Fractions[d] /= sum
		if res.Fractions[d] > best {
			best, res.Code = res.Fractions[d], d
		}
	}

	return res
}
