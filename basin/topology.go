package basin

import "fmt"

// Order returns the subbasin IDs headwaters first: every subbasin precedes
// the one it drains into. Among subbasins that are ready at the same time the
// lower ID comes first. Without a subbasin pass the order is empty.
//
// Links form a forest in any field derived from elevations; a cyclic link
// set, e.g. edited by hand, yields ErrCycleDetected.
func (r *Result) Order() ([]int32, error) {
	n := len(r.Links) - 1
	if n <= 0 {
		return nil, nil
	}
	indeg := make([]int, n+1)
	for id := 1; id <= n; id++ {
		down := r.Links[id]
		if down < 0 || int(down) > n {
			return nil, fmt.Errorf("basin: subbasin %d links to unknown %d", id, down)
		}
		if down > 0 {
			indeg[down]++
		}
	}

	// Kahn's algorithm; ready stays sorted by ID.
	order := make([]int32, 0, n)
	ready := make([]int32, 0, n)
	for id := 1; id <= n; id++ {
		if indeg[id] == 0 {
			ready = append(ready, int32(id))
		}
	}
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)
		if down := r.Links[id]; down > 0 {
			indeg[down]--
			if indeg[down] == 0 {
				ready = insertSorted(ready, down)
			}
		}
	}
	if len(order) < n {
		return order, ErrCycleDetected
	}

	return order, nil
}

func insertSorted(s []int32, v int32) []int32 {
	i := 0
	for i < len(s) && s[i] < v {
		i++
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}
