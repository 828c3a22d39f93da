// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"cmp"
	"slices"
)

// A Schedule is the outcome of [Simulate].
type Schedule struct {
	// Makespan is the simulated time at which the last step finished.
	Makespan int

	// Workers is the pool size the schedule was computed for.
	Workers int

	// Order lists steps by completion time, then by identifier.
	Order Order

	// Assignments records when and where each step ran, sorted by start
	// time, then slot.
	Assignments []Assignment

	graph *Graph
}

// An Assignment records one step's occupancy of a worker slot over the
// half-open interval [Start, End).
type Assignment struct {
	Node  string
	Slot  int
	Start int
	End   int
}

// Duration returns the number of seconds the step ran.
func (a Assignment) Duration() int {
	return a.End - a.Start
}

// Assignment returns the assignment for the step with the given identifier.
func (s *Schedule) Assignment(id string) (Assignment, bool) {
	for _, a := range s.Assignments {
		if a.Node == id {
			return a, true
		}
	}
	return Assignment{}, false
}

// Busy returns the total number of worker-seconds spent running steps.
func (s *Schedule) Busy() int {
	busy := 0
	for _, a := range s.Assignments {
		busy += a.Duration()
	}
	return busy
}

// Utilization returns the fraction of available worker-seconds that were
// spent running steps. An empty schedule has zero utilization.
func (s *Schedule) Utilization() float64 {
	if s.Makespan == 0 || s.Workers == 0 {
		return 0
	}
	return float64(s.Busy()) / float64(s.Makespan*s.Workers)
}

// Peak returns the largest number of steps that were ever running at once.
func (s *Schedule) Peak() int {
	type edge struct {
		at    int
		delta int
	}
	edges := make([]edge, 0, 2*len(s.Assignments))
	for _, a := range s.Assignments {
		edges = append(edges, edge{a.Start, 1}, edge{a.End, -1})
	}
	// Ends sort before starts at the same instant since the slot is
	// released first.
	slices.SortFunc(edges, func(a, b edge) int {
		if c := cmp.Compare(a.at, b.at); c != 0 {
			return c
		}
		return cmp.Compare(a.delta, b.delta)
	})
	peak, current := 0, 0
	for _, e := range edges {
		current += e.delta
		peak = max(peak, current)
	}
	return peak
}

// StatusAt reports the status the step with the given identifier had at
// simulated instant t, after any completions and starts at t were applied.
// The second result is false if the step is unknown. A Schedule not produced
// by [Simulate] reports steps that have not started as Blocked.
func (s *Schedule) StatusAt(id string, t int) (Status, bool) {
	a, ok := s.Assignment(id)
	if !ok {
		return Blocked, false
	}
	switch {
	case a.End <= t:
		return Done, true
	case a.Start <= t:
		return InProgress, true
	case s.graph == nil:
		return Blocked, true
	}
	for _, dep := range s.graph.Dependencies(id) {
		if d, _ := s.Assignment(dep); d.End > t {
			return Blocked, true
		}
	}
	return Ready, true
}
