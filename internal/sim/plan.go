// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

import (
	"fmt"
	"strings"

	"pgregory.net/rapid"
)

type Plan struct {
	// Steps lists every step, in the hidden ranking that all edges respect
	// unless HasCycle is set.
	Steps        []string
	Edges        []Edge
	Workers      int
	BaseDuration int
	HasCycle     bool
}

type Edge struct {
	Dependency string
	Dependent  string
}

// NewPlan draws a random plan.
func NewPlan(t *rapid.T, config *Config) *Plan {
	plan := &Plan{
		Workers:      config.Workers.Draw(t, "Plan.Workers"),
		BaseDuration: config.BaseDuration.Draw(t, "Plan.BaseDuration"),
		HasCycle:     BiasedBool(config.CycleProbability).Draw(t, "Plan.HasCycle"),
	}

	stepCount := config.Steps.Draw(t, "Plan.StepCount")
	if plan.HasCycle {
		stepCount = max(stepCount, 2)
	}
	names := make([]string, stepCount)
	for i := range names {
		names[i] = ColumnName(i)
	}
	plan.Steps = names
	if len(names) > 1 {
		plan.Steps = rapid.Permutation(names).Draw(t, "Plan.Ranking")
	}

	seen := make(map[Edge]bool)
	addEdge := func(e Edge) {
		if !seen[e] {
			seen[e] = true
			plan.Edges = append(plan.Edges, e)
		}
	}
	for rank := 1; rank < len(plan.Steps); rank++ {
		stepName := fmt.Sprintf("Plan.Step[%d]", rank)
		depCount := config.Dependencies.Draw(t, stepName+".DependencyCount")
		for d := range depCount {
			dep := rapid.IntRange(0, rank-1).Draw(t, fmt.Sprintf("%s.Dependency[%d]", stepName, d))
			addEdge(Edge{Dependency: plan.Steps[dep], Dependent: plan.Steps[rank]})
		}
	}
	if plan.HasCycle {
		a := rapid.IntRange(0, len(plan.Steps)-2).Draw(t, "Plan.CycleFrom")
		b := rapid.IntRange(a+1, len(plan.Steps)-1).Draw(t, "Plan.CycleTo")
		addEdge(Edge{Dependency: plan.Steps[a], Dependent: plan.Steps[b]})
		addEdge(Edge{Dependency: plan.Steps[b], Dependent: plan.Steps[a]})
	}
	if len(plan.Edges) > 1 {
		plan.Edges = rapid.Permutation(plan.Edges).Draw(t, "Plan.EdgeOrder")
	}

	t.Logf("%v", plan)
	return plan
}

// ColumnName returns the i'th name in the sequence "A", "B", ..., "Z", "AA",
// "AB", ... counting from zero.
func ColumnName(i int) string {
	var b []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}

// Duration returns how long the named step runs under the plan's base
// duration.
func (p *Plan) Duration(step string) int {
	ordinal := 0
	for i := 0; i < len(step); i++ {
		ordinal = ordinal*26 + int(step[i]-'A') + 1
	}
	return p.BaseDuration + ordinal
}

// Text renders the plan's edges as constraint sentences, one per line, in
// edge order. Steps that have no edges do not appear.
func (p *Plan) Text() string {
	var sb strings.Builder
	for _, e := range p.Edges {
		_, _ = fmt.Fprintf(&sb, "Step %s must be finished before step %s can begin.\n", e.Dependency, e.Dependent)
	}
	return sb.String()
}

func (p *Plan) String() string {
	return fmt.Sprintf("Plan: steps=%d edges=%d workers=%d baseDuration=%d hasCycle=%v",
		len(p.Steps), len(p.Edges), p.Workers, p.BaseDuration, p.HasCycle)
}
