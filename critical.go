// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"slices"
)

// CriticalPath returns the total duration of the longest chain of dependent
// steps in g, along with the chain itself from first to last step. No
// schedule can finish sooner, whatever the number of workers. When several
// chains tie, the one ending at the smallest step is returned, and within it
// the smallest predecessor is preferred at each link.
//
// The durations are computed with fn, as in [Config]. If g contains a cycle,
// CriticalPath returns a [*CycleError].
func CriticalPath(g *Graph, fn DurationFunc) (int, []string, error) {
	durations, err := g.durations(fn)
	if err != nil {
		return 0, nil, err
	}
	order, err := Sequence(g)
	if err != nil {
		return 0, nil, err
	}

	n := g.Len()
	finish := make([]int, n)
	via := make([]int, n)
	for _, id := range order {
		i := g.index[id]
		via[i] = -1
		for _, dep := range g.deps[i] {
			if via[i] < 0 || finish[dep] > finish[via[i]] {
				via[i] = dep
			}
		}
		finish[i] = durations[i]
		if via[i] >= 0 {
			finish[i] += finish[via[i]]
		}
	}

	last, length := -1, 0
	for i, f := range finish {
		if f > length {
			last, length = i, f
		}
	}
	var chain []string
	for i := last; i >= 0; i = via[i] {
		chain = append(chain, g.nodes[i])
	}
	slices.Reverse(chain)
	return length, chain, nil
}
