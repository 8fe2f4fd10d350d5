package accum

import (
	"fmt"

	"github.com/katalvlaran/drainflow/flowdir"
	"github.com/katalvlaran/drainflow/raster"
)

// Lock states of a cell during one pass.
const (
	white uint8 = iota
	gray
	black
)

// frame is one pending cell on the explicit stack. next is the first
// direction not yet probed for an upslope contributor.
type frame struct {
	x, y int
	next int
}

// accumulator holds the transient state of one Accumulate call.
type accumulator struct {
	field *flowdir.Field
	opts  Options
	state []uint8
	stack []frame

	flow   []float64
	loss   []float64
	length []float64 // Σ of upslope path lengths weighted by flow
}

// Accumulate computes the upslope flow of every cell of f.
//
// Behavior:
//  1. Validate f and the optional weight grid.
//  2. For every unvisited cell, in row order, resolve its upslope area with
//     an explicit depth-first stack; a cell is finalized only after every
//     neighbour draining into it is final.
//  3. flow(c) = weight(c) + Σ flow(n)·fraction(n→c).
//  4. Under ClampNegative a negative weight is recorded as loss and counted
//     as 0; a negative total is likewise recorded and clamped to 0.
//
// Cells that are no-data in f are NoData in every output. On cancellation,
// abort or cycle detection the partially filled Result is returned together
// with the error. Complexity: O(NX·NY).
func Accumulate(f *flowdir.Field, opts ...Option) (*Result, error) {
	if f == nil {
		return nil, ErrNilField
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if o.Weight != nil {
		if err := raster.CheckGeometry(f.Geometry, o.Weight.Geometry); err != nil {
			return nil, err
		}
	}

	n := f.Len()
	a := &accumulator{
		field: f,
		opts:  o,
		state: make([]uint8, n),
		flow:  make([]float64, n),
	}
	if o.Loss {
		a.loss = make([]float64, n)
	}
	if o.PathLength {
		a.length = make([]float64, n)
	}

	err := a.run()

	return a.result(), err
}

// run visits every row, honouring cancellation and progress.
func (a *accumulator) run() error {
	f := a.field
	for y := 0; y < f.NY; y++ {
		select {
		case <-a.opts.Ctx.Done():
			return a.opts.Ctx.Err()
		default:
		}
		for x := 0; x < f.NX; x++ {
			if !f.Valid(x, y) || a.state[f.Index(x, y)] == black {
				continue
			}
			if err := a.resolve(x, y); err != nil {
				return err
			}
		}
		if a.opts.Progress != nil && !a.opts.Progress(y+1, f.NY) {
			return ErrAborted
		}
	}

	return nil
}

// resolve finalizes (x,y) and its whole unresolved upslope area.
func (a *accumulator) resolve(x, y int) error {
	f := a.field
	a.state[f.Index(x, y)] = gray
	a.stack = append(a.stack[:0], frame{x: x, y: y})

	for len(a.stack) > 0 {
		top := &a.stack[len(a.stack)-1]
		pushed := false
		for top.next < 8 {
			d := top.next
			top.next++
			if !f.DrainsInto(top.x, top.y, d) {
				continue
			}
			nx, ny := raster.Neighbor(top.x, top.y, d)
			ni := f.Index(nx, ny)
			switch a.state[ni] {
			case gray:
				return fmt.Errorf("%w: at (%d,%d)", ErrCycleDetected, nx, ny)
			case white:
				a.state[ni] = gray
				a.stack = append(a.stack, frame{x: nx, y: ny})
				pushed = true
			}
			if pushed {
				break
			}
		}
		if pushed {
			continue
		}
		a.finalize(top.x, top.y)
		a.stack = a.stack[:len(a.stack)-1]
	}

	return nil
}

// finalize computes the value of (x,y); every contributor is already final.
func (a *accumulator) finalize(x, y int) {
	f := a.field
	i := f.Index(x, y)

	w := a.weight(x, y)
	if w < 0 && a.opts.ClampNegative {
		a.addLoss(i, -w)
		w = 0
	}
	v, ls := w, 0.0
	for d := 0; d < 8; d++ {
		frac := f.Inflow(x, y, d)
		if frac <= 0 {
			continue
		}
		nx, ny := raster.Neighbor(x, y, d)
		ni := f.Index(nx, ny)
		v += frac * a.flow[ni]
		if a.length != nil {
			ls += frac * (a.length[ni] + a.flow[ni]*f.Length(d))
		}
	}
	if v < 0 && a.opts.ClampNegative {
		a.addLoss(i, -v)
		v = 0
	}
	a.flow[i] = v
	if a.length != nil {
		a.length[i] = ls
	}
	a.state[i] = black
}

func (a *accumulator) weight(x, y int) float64 {
	if a.opts.Weight == nil {
		return 1
	}
	if a.opts.Weight.IsNoData(x, y) {
		return 0
	}

	return a.opts.Weight.At(x, y)
}

func (a *accumulator) addLoss(i int, v float64) {
	if a.loss != nil {
		a.loss[i] += v
	}
}

// result wraps the buffers into grids. Unfinished and no-data cells are
// NoData.
func (a *accumulator) result() *Result {
	f := a.field
	wrap := func(buf []float64, mean bool) *raster.Grid[float64] {
		g, _ := raster.New(f.Geometry, NoData, NoData)
		data := g.Data()
		for i, v := range buf {
			if a.state[i] != black {
				continue
			}
			if mean {
				if a.flow[i] > 0 {
					v /= a.flow[i]
				} else {
					v = 0
				}
			}
			data[i] = v
		}

		return g
	}

	r := &Result{Flow: wrap(a.flow, false)}
	if a.loss != nil {
		r.Loss = wrap(a.loss, false)
	}
	if a.length != nil {
		r.PathLength = wrap(a.length, true)
	}

	return r
}
