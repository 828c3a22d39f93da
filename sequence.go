// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"strings"

	"github.com/petenewcomb/stepsched-go/internal/frontier"
)

// Order is a sequence of step identifiers.
type Order []string

// String concatenates the identifiers with no separator, which for
// single-letter steps yields strings such as "CABDFE".
func (o Order) String() string {
	return strings.Join(o, "")
}

// Sequence returns the order in which a single worker would complete the
// steps of g when it always picks the lexicographically smallest ready step.
// The result is a topological order of g. If g contains a cycle, Sequence
// returns a [*CycleError] listing the steps that could never be reached.
func Sequence(g *Graph) (Order, error) {
	n := g.Len()
	pending := g.pendingCounts()
	ready := frontier.New(n)
	for i, count := range pending {
		if count == 0 {
			ready.Push(i)
		}
	}

	order := make(Order, 0, n)
	for ready.Len() > 0 {
		i := ready.Pop()
		order = append(order, g.nodes[i])
		for _, dependent := range g.dependents[i] {
			pending[dependent]--
			if pending[dependent] == 0 {
				ready.Push(dependent)
			}
		}
	}

	if len(order) < n {
		return nil, g.cycleError(pending, 0)
	}
	return order, nil
}

// cycleError reports every step still waiting on dependencies.
func (g *Graph) cycleError(pending []int, clock int) *CycleError {
	var stuck []string
	for i, count := range pending {
		if count > 0 {
			stuck = append(stuck, g.nodes[i])
		}
	}
	return &CycleError{Stuck: stuck, Clock: clock}
}
