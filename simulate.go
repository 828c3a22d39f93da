// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"cmp"
	"slices"

	"github.com/addrummond/heap"
	"github.com/gammazero/deque"
	"github.com/petenewcomb/stepsched-go/internal/frontier"
	"go.uber.org/zap"
)

// Simulate runs the steps of g on a pool of cfg.Workers simulated workers and
// returns the resulting schedule.
//
// The simulation advances a discrete clock. Whenever a worker is idle and a
// step is ready, the lexicographically smallest ready step starts on the
// worker that has been idle the longest. A started step runs without
// interruption for its full duration. All steps that finish at the same
// instant are completed, in step order, before any further step starts. This
// is a greedy non-preemptive policy, not an optimal one, and Simulate
// reproduces it exactly.
//
// If at some instant no step is running and none is ready while some remain
// unfinished, g contains a cycle and Simulate returns a [*CycleError].
func Simulate(g *Graph, cfg Config, opts ...Option) (*Schedule, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	durations, err := g.durations(cfg.durationFunc())
	if err != nil {
		return nil, err
	}
	o := newOptions(opts)
	s := &simulation{
		graph:     g,
		durations: durations,
		pending:   g.pendingCounts(),
		ready:     frontier.New(g.Len()),
		logger:    o.logger,
	}
	return s.run(cfg.Workers)
}

type simulation struct {
	graph     *Graph
	durations []int
	pending   []int
	ready     *frontier.Frontier
	idle      deque.Deque[int]
	running   heap.Heap[completion, heap.Min]
	active    int
	clock     int
	logger    *zap.Logger
	schedule  *Schedule
}

// completion marks the instant a running step frees its slot.
type completion struct {
	End  int
	Node int
	Slot int
}

func (a *completion) Cmp(b *completion) int {
	if c := cmp.Compare(a.End, b.End); c != 0 {
		return c
	}
	return cmp.Compare(a.Node, b.Node)
}

func (s *simulation) run(workers int) (*Schedule, error) {
	g := s.graph
	n := g.Len()
	s.schedule = &Schedule{
		Workers:     workers,
		Order:       make(Order, 0, n),
		Assignments: make([]Assignment, 0, n),
		graph:       g,
	}

	// Slots beyond the number of steps could never be used.
	for slot := range min(workers, n) {
		s.idle.PushBack(slot)
	}
	for i, count := range s.pending {
		if count == 0 {
			s.ready.Push(i)
		}
	}

	for {
		s.admit()
		if len(s.schedule.Order) == n {
			break
		}
		if s.active == 0 {
			err := g.cycleError(s.pending, s.clock)
			s.logger.Debug("simulation deadlocked",
				zap.Int("clock", s.clock),
				zap.Strings("stuck", err.Stuck))
			return nil, err
		}
		s.completeNext()
	}

	s.schedule.Makespan = s.clock
	slices.SortFunc(s.schedule.Assignments, func(a, b Assignment) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.Slot, b.Slot)
	})
	s.logger.Debug("simulation finished",
		zap.Int("clock", s.clock),
		zap.Int("workers", workers),
		zap.Int("steps", n))
	return s.schedule, nil
}

// admit starts ready steps until either the idle slots or the ready steps
// run out.
func (s *simulation) admit() {
	for s.idle.Len() > 0 && s.ready.Len() > 0 {
		node := s.ready.Pop()
		slot := s.idle.PopFront()
		end := s.clock + s.durations[node]
		heap.PushOrderable(&s.running, completion{End: end, Node: node, Slot: slot})
		s.active++
		s.schedule.Assignments = append(s.schedule.Assignments, Assignment{
			Node:  s.graph.nodes[node],
			Slot:  slot,
			Start: s.clock,
			End:   end,
		})
		s.logger.Debug("step started",
			zap.String("step", s.graph.nodes[node]),
			zap.Int("slot", slot),
			zap.Int("clock", s.clock),
			zap.Int("end", end))
	}
}

// completeNext advances the clock to the earliest pending completion and
// finishes every step that ends at that instant.
func (s *simulation) completeNext() {
	c, _ := heap.PopOrderable(&s.running)
	s.clock = c.End
	for {
		s.finish(c)
		next, ok := heap.Peek(&s.running)
		if !ok || next.End != s.clock {
			return
		}
		c, _ = heap.PopOrderable(&s.running)
	}
}

func (s *simulation) finish(c completion) {
	s.active--
	s.idle.PushBack(c.Slot)
	s.schedule.Order = append(s.schedule.Order, s.graph.nodes[c.Node])
	s.logger.Debug("step done",
		zap.String("step", s.graph.nodes[c.Node]),
		zap.Int("slot", c.Slot),
		zap.Int("clock", s.clock))
	for _, dependent := range s.graph.dependents[c.Node] {
		s.pending[dependent]--
		if s.pending[dependent] == 0 {
			s.ready.Push(dependent)
		}
	}
}
