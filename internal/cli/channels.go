package cli

import (
	"context"

	"github.com/katalvlaran/drainflow/accum"
	"github.com/katalvlaran/drainflow/flowdir"
	"github.com/katalvlaran/drainflow/raster"
)

// thresholdChannels marks the cells whose D8 accumulation reaches threshold
// and returns the mask with the number of channel cells.
func thresholdChannels(ctx context.Context, dem *raster.Grid[float64], threshold float64) (*raster.Grid[bool], int, error) {
	f, err := flowdir.ComputeField(dem, flowdir.D8{}, flowdir.WithContext(ctx))
	if err != nil {
		return nil, 0, err
	}
	res, err := accum.Accumulate(f, accum.WithContext(ctx))
	if err != nil {
		return nil, 0, err
	}

	mask := raster.Like(dem, false, false)
	flow, cells := res.Flow.Data(), mask.Data()
	n := 0
	for i, v := range flow {
		if v != accum.NoData && v >= threshold {
			cells[i] = true
			n++
		}
	}

	return mask, n, nil
}

// gridChannels turns a grid into a mask: valid, non-zero cells are channels.
func gridChannels(g *raster.Grid[float64]) (*raster.Grid[bool], int) {
	mask := raster.Like(g, false, false)
	n := 0
	for y := 0; y < g.NY; y++ {
		for x := 0; x < g.NX; x++ {
			if g.Valid(x, y) && g.At(x, y) != 0 {
				mask.Set(x, y, true)
				n++
			}
		}
	}

	return mask, n
}
