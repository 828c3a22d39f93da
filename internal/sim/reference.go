// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

import (
	"slices"
)

type stepState int

const (
	blocked stepState = iota
	ready
	running
	done
)

// reference holds the state of one reference run. Steps are kept sorted by
// name so that "first ready step" is always the smallest.
type reference struct {
	steps     []string
	deps      map[string][]string
	state     map[string]stepState
	remaining map[string]int
}

func newReference(p *Plan) *reference {
	r := &reference{
		steps:     slices.Clone(p.Steps),
		deps:      make(map[string][]string),
		state:     make(map[string]stepState),
		remaining: make(map[string]int),
	}
	slices.Sort(r.steps)
	for _, e := range p.Edges {
		r.deps[e.Dependent] = append(r.deps[e.Dependent], e.Dependency)
	}
	for _, s := range r.steps {
		r.refresh(s)
	}
	return r
}

// refresh moves a blocked step to ready once every dependency is done.
func (r *reference) refresh(step string) {
	if r.state[step] != blocked {
		return
	}
	for _, dep := range r.deps[step] {
		if r.state[dep] != done {
			return
		}
	}
	r.state[step] = ready
}

func (r *reference) firstReady() (string, bool) {
	for _, s := range r.steps {
		if r.state[s] == ready {
			return s, true
		}
	}
	return "", false
}

func (r *reference) count(st stepState) int {
	n := 0
	for _, s := range r.steps {
		if r.state[s] == st {
			n++
		}
	}
	return n
}

func (r *reference) complete(step string) {
	r.state[step] = done
	for _, s := range r.steps {
		r.refresh(s)
	}
}

// ReferenceSequence returns the single-worker order for p, or false if p has
// no complete order.
func ReferenceSequence(p *Plan) ([]string, bool) {
	r := newReference(p)
	var order []string
	for {
		s, ok := r.firstReady()
		if !ok {
			break
		}
		r.complete(s)
		order = append(order, s)
	}
	return order, len(order) == len(r.steps)
}

// ReferenceMakespan simulates p on the given number of workers, one second
// per iteration, and returns the completion time along with the completion
// order. It returns false if the simulation deadlocks.
func ReferenceMakespan(p *Plan, workers int) (int, []string, bool) {
	r := newReference(p)
	var order []string
	clock := 0
	for {
		for r.count(running) < workers {
			s, ok := r.firstReady()
			if !ok {
				break
			}
			r.state[s] = running
			r.remaining[s] = p.Duration(s)
		}
		if r.count(done) == len(r.steps) {
			return clock, order, true
		}
		if r.count(running) == 0 {
			return clock, order, false
		}

		clock++
		var finished []string
		for _, s := range r.steps {
			if r.state[s] == running {
				r.remaining[s]--
				if r.remaining[s] == 0 {
					finished = append(finished, s)
				}
			}
		}
		for _, s := range finished {
			r.complete(s)
			order = append(order, s)
		}
	}
}

// ReferenceCriticalPath returns the length of the longest duration-weighted
// dependency chain of an acyclic plan by exhaustive recursion.
func ReferenceCriticalPath(p *Plan) int {
	r := newReference(p)
	memo := make(map[string]int)
	var finish func(string) int
	finish = func(s string) int {
		if f, ok := memo[s]; ok {
			return f
		}
		longest := 0
		for _, dep := range r.deps[s] {
			longest = max(longest, finish(dep))
		}
		memo[s] = longest + p.Duration(s)
		return memo[s]
	}
	longest := 0
	for _, s := range r.steps {
		longest = max(longest, finish(s))
	}
	return longest
}
