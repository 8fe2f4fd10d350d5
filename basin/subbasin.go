package basin

import (
	"context"
	"sort"

	"github.com/katalvlaran/drainflow/raster"
)

// subdivide runs the subbasin pass over the main basins of r.
//
// Seeds are the basin outlets plus every channel cell draining into a mouth.
// They are filled in order of (basin ID ascending, elevation descending); a
// fill stops at other seeds, so every seed roots its own subbasin.
func (r *Result) subdivide(ctx context.Context, dem *raster.Grid[float64], channels *raster.Grid[bool]) error {
	f := r.Directions
	seeds := append([]Cell(nil), r.Outlets...)
	for _, m := range r.Mouths {
		seeds = append(seeds, channelInflows(f, channels, m.X, m.Y)...)
	}
	// Seeds outside every main basin (e.g. draining into a pit) have no
	// place in the subdivision.
	kept := seeds[:0]
	for _, s := range seeds {
		if r.IDs.At(s.X, s.Y) != 0 {
			kept = append(kept, s)
		}
	}
	seeds = kept
	sort.SliceStable(seeds, func(i, j int) bool {
		a, b := seeds[i], seeds[j]
		ia, ib := r.IDs.At(a.X, a.Y), r.IDs.At(b.X, b.Y)
		if ia != ib {
			return ia < ib
		}
		za, zb := dem.At(a.X, a.Y), dem.At(b.X, b.Y)
		if za != zb {
			return za > zb
		}

		return r.IDs.Index(a.X, a.Y) < r.IDs.Index(b.X, b.Y)
	})

	isSeed := make(map[int]bool, len(seeds))
	for _, s := range seeds {
		isSeed[r.IDs.Index(s.X, s.Y)] = true
	}
	enter := func(x, y int) bool {
		return !isSeed[r.IDs.Index(x, y)]
	}

	sub, _ := raster.New[int32](dem.Geometry, 0, 0)
	fl := &filler{dem: dem, field: f, ids: sub}
	samples := make([]sample, len(seeds))
	for i, s := range seeds {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		samples[i] = fl.fill(s, int32(i+1), enter)
	}

	r.SubbasinIDs = sub
	r.Links = make([]int32, len(seeds)+1)
	upstream := make([]int, len(seeds)+1)
	for i, s := range seeds {
		d := f.Dir(s.X, s.Y)
		if d == raster.NoDirection {
			continue
		}
		nx, ny := raster.Neighbor(s.X, s.Y, d)
		if !sub.InBounds(nx, ny) || sub.At(nx, ny) == 0 {
			continue
		}
		down := sub.At(nx, ny)
		r.Links[i+1] = down
		upstream[down]++
	}

	basins, errs := measure(sub, seeds, samples)
	for i := range basins {
		basins[i].Downstream = r.Links[basins[i].ID]
		basins[i].Upstream = upstream[basins[i].ID]
	}
	r.Subbasins = basins
	r.BoundaryErrors = append(r.BoundaryErrors, errs...)

	return nil
}
