// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package stepsched schedules steps subject to precedence constraints of the
// form "step X must be finished before step Y can begin".
//
// Constraints are parsed into an immutable [Graph], either from text with
// [ParseConstraints] or programmatically with a [Builder]. A Graph can then be
// consumed in two ways. [Sequence] computes the order in which a single worker
// completes the steps when it always picks the lexicographically smallest step
// whose dependencies are done. [Simulate] runs the same greedy policy on a
// fixed-size pool of simulated workers, where each step occupies a worker for
// a duration derived from its identifier, and reports when the last step
// finishes.
//
// Workers are accounting slots on a discrete clock, not goroutines, so a
// simulation is fully deterministic. [Sweep] runs many independent simulations
// of one graph concurrently, for instance to compare pool sizes, without
// affecting any individual result.
//
// A Graph that contains a cycle is accepted when built, since no order can be
// computed for it until some step is found that can never start. [Sequence],
// [Simulate] and [CriticalPath] report that condition as a [*CycleError]
// rather than spinning forever.
package stepsched
