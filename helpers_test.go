// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched_test

import (
	"strings"
	"testing"

	"github.com/petenewcomb/stepsched-go"
	"github.com/stretchr/testify/require"
)

const exampleText = `Step C must be finished before step A can begin.
Step C must be finished before step F can begin.
Step A must be finished before step B can begin.
Step A must be finished before step D can begin.
Step B must be finished before step E can begin.
Step D must be finished before step E can begin.
Step F must be finished before step E can begin.
`

func exampleEdges() []stepsched.Edge {
	return []stepsched.Edge{
		{Dependency: "C", Dependent: "A"},
		{Dependency: "C", Dependent: "F"},
		{Dependency: "A", Dependent: "B"},
		{Dependency: "A", Dependent: "D"},
		{Dependency: "B", Dependent: "E"},
		{Dependency: "D", Dependent: "E"},
		{Dependency: "F", Dependent: "E"},
	}
}

func exampleGraph(t *testing.T) *stepsched.Graph {
	g, err := stepsched.ParseConstraints(strings.NewReader(exampleText))
	require.NoError(t, err)
	return g
}

func graphOf(edges ...stepsched.Edge) *stepsched.Graph {
	var b stepsched.Builder
	for _, e := range edges {
		b.AddEdge(e.Dependency, e.Dependent)
	}
	return b.Build()
}
