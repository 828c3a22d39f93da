// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"slices"
)

// A Graph is an immutable set of steps and the precedence constraints between
// them. Steps are interned: each step identifier is assigned an index equal to
// its rank in lexicographic order, so comparing indices is equivalent to
// comparing identifiers.
//
// A Graph is safe for concurrent use by multiple goroutines. Use [Builder] or
// [ParseConstraints] to create one. The zero value is an empty graph.
type Graph struct {
	nodes      []string
	index      map[string]int
	deps       [][]int // by node index, sorted ascending
	dependents [][]int // by node index, sorted ascending
	edgeCount  int
}

// An Edge states that Dependency must be done before Dependent may begin.
type Edge struct {
	Dependency string
	Dependent  string
}

// Len returns the number of steps in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct precedence constraints.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Nodes returns all step identifiers in lexicographic order. The returned
// slice is a copy.
func (g *Graph) Nodes() []string {
	return slices.Clone(g.nodes)
}

// Node returns the identifier of the step with index i.
func (g *Graph) Node(i int) string {
	return g.nodes[i]
}

// Index returns the index of the step with the given identifier.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Dependencies returns the identifiers of the steps that must be done before
// id may begin, in lexicographic order.
func (g *Graph) Dependencies(id string) []string {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	return g.names(g.deps[i])
}

// Dependents returns the identifiers of the steps that wait on id, in
// lexicographic order.
func (g *Graph) Dependents(id string) []string {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	return g.names(g.dependents[i])
}

// Edges returns every constraint ordered by dependency, then dependent.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edgeCount)
	for from, tos := range g.dependents {
		for _, to := range tos {
			edges = append(edges, Edge{Dependency: g.nodes[from], Dependent: g.nodes[to]})
		}
	}
	return edges
}

func (g *Graph) names(indices []int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = g.nodes[idx]
	}
	return out
}

// pendingCounts returns a fresh per-run copy of each step's outstanding
// dependency count.
func (g *Graph) pendingCounts() []int {
	pending := make([]int, len(g.nodes))
	for i, deps := range g.deps {
		pending[i] = len(deps)
	}
	return pending
}

// A Builder accumulates steps and constraints and produces an immutable
// [Graph]. The order in which steps and constraints are added has no effect on
// the built graph. The zero value is ready to use. A Builder is not safe for
// concurrent use.
type Builder struct {
	nodes map[string]struct{}
	edges map[Edge]struct{}
}

// AddNode records a step with no constraints of its own. Adding a step that is
// already known is a no-op.
func (b *Builder) AddNode(id string) {
	if b.nodes == nil {
		b.nodes = make(map[string]struct{})
	}
	b.nodes[id] = struct{}{}
}

// AddEdge records that dependency must be done before dependent may begin.
// Both steps are added if not already known. Duplicate constraints are
// collapsed.
func (b *Builder) AddEdge(dependency, dependent string) {
	b.AddNode(dependency)
	b.AddNode(dependent)
	if b.edges == nil {
		b.edges = make(map[Edge]struct{})
	}
	b.edges[Edge{Dependency: dependency, Dependent: dependent}] = struct{}{}
}

// Build returns a graph containing everything added so far. The Builder may
// continue to be used afterward without affecting the returned graph.
func (b *Builder) Build() *Graph {
	g := &Graph{
		nodes: make([]string, 0, len(b.nodes)),
		index: make(map[string]int, len(b.nodes)),
	}
	for id := range b.nodes {
		g.nodes = append(g.nodes, id)
	}
	slices.Sort(g.nodes)
	for i, id := range g.nodes {
		g.index[id] = i
	}

	g.deps = make([][]int, len(g.nodes))
	g.dependents = make([][]int, len(g.nodes))
	for e := range b.edges {
		from, to := g.index[e.Dependency], g.index[e.Dependent]
		g.deps[to] = append(g.deps[to], from)
		g.dependents[from] = append(g.dependents[from], to)
	}
	for i := range g.nodes {
		slices.Sort(g.deps[i])
		slices.Sort(g.dependents[i])
	}
	g.edgeCount = len(b.edges)
	return g
}
