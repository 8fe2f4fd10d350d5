package flowdir

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/drainflow/raster"
)

// Rho8 is the stochastic variant of D8 (Fairfield & Leymarie 1991).
// The continuous downslope azimuth is located in a 45° sector; with a
// probability equal to its fractional position in that sector the flow is
// rounded up to the next direction, otherwise down.
//
// When the drawn neighbour is missing or not lower, the other bounding
// direction is tried, then plain D8.
//
// Rho8 is not safe for concurrent use: it owns a *rand.Rand.
type Rho8 struct {
	// Rand is the random stream. If nil, a deterministic stream seeded with
	// Seed (or defaultSeed when Seed is 0) is created on first use.
	Rand *rand.Rand
	Seed int64
}

// NewRho8 returns a Rho8 model drawing from a stream seeded with seed.
func NewRho8(seed int64) *Rho8 {
	return &Rho8{Rand: rngFromSeed(seed), Seed: seed}
}

// Name implements Model.
func (*Rho8) Name() string { return "rho8" }

// Fractional implements Model.
func (*Rho8) Fractional() bool { return false }

// Route implements Model. The channel mask is ignored.
func (r *Rho8) Route(dem *raster.Grid[float64], x, y int, _ *raster.Grid[bool]) Result {
	nb, ok := gather(dem, x, y)
	if !ok {
		return noDataResult()
	}
	if r.Rand == nil {
		r.Rand = rngFromSeed(r.Seed)
	}

	az, ok := nb.aspect()
	if !ok {
		return Result{Code: nb.steepest(nil)}
	}
	sector := az / (math.Pi / 4)
	lo := math.Floor(sector)
	first, second := int(lo)%8, (int(lo)+1)%8
	if r.Rand.Float64() < sector-lo {
		first, second = second, first
	}
	for _, d := range [2]int{first, second} {
		if nb.ok[d] && nb.slope(d) > 0 {
			return Result{Code: d}
		}
	}

	return Result{Code: nb.steepest(nil)}
}
