// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package frontier provides the ready set used by the schedulers: a min-heap
// of step indices that also tracks each member's position so that membership
// tests and arbitrary removal are cheap.
package frontier

import (
	"container/heap"
)

// Frontier holds the indices of steps whose dependencies are all satisfied
// and that have not yet been taken. Pop always yields the smallest index.
type Frontier struct {
	impl frontierImpl
}

// New returns an empty frontier able to hold indices in [0, n).
func New(n int) *Frontier {
	f := &Frontier{}
	f.impl.positions = make([]int, n)
	return f
}

// frontierImpl satisfies container/heap.Interface. positions[i] is one more
// than the heap slot holding index i, or zero if i is absent.
type frontierImpl struct {
	items     []int
	positions []int
}

// Len returns the number of ready indices.
func (f *Frontier) Len() int {
	return len(f.impl.items)
}

// Contains reports whether i is currently in the frontier.
func (f *Frontier) Contains(i int) bool {
	return f.impl.positions[i] != 0
}

// Push adds i to the frontier. Pushing an index that is already present is a
// no-op.
func (f *Frontier) Push(i int) {
	if i < 0 || i >= len(f.impl.positions) {
		panic("index out of range for frontier")
	}
	if f.impl.positions[i] != 0 {
		return
	}
	heap.Push(&f.impl, i)
}

// Pop removes and returns the smallest index. It panics if the frontier is
// empty.
func (f *Frontier) Pop() int {
	if len(f.impl.items) == 0 {
		panic("pop from empty frontier")
	}
	return heap.Pop(&f.impl).(int)
}

// Peek returns the smallest index without removing it. The second result is
// false if the frontier is empty.
func (f *Frontier) Peek() (int, bool) {
	if len(f.impl.items) == 0 {
		return 0, false
	}
	return f.impl.items[0], true
}

// Remove takes i out of the frontier. Returns true if i was removed, false if
// it was not present.
func (f *Frontier) Remove(i int) bool {
	p := f.impl.positions[i]
	if p == 0 {
		return false
	}
	heap.Remove(&f.impl, p-1)
	return true
}

// Implementation of container/heap.Interface for frontierImpl

func (h *frontierImpl) Len() int {
	return len(h.items)
}

func (h *frontierImpl) Less(i, j int) bool {
	return h.items[i] < h.items[j]
}

func (h *frontierImpl) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.positions[h.items[i]] = i + 1
	h.positions[h.items[j]] = j + 1
}

func (h *frontierImpl) Push(x interface{}) {
	item := x.(int)
	h.positions[item] = len(h.items) + 1
	h.items = append(h.items, item)
}

func (h *frontierImpl) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[0 : n-1]
	h.positions[item] = 0
	return item
}
