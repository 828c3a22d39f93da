// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

var DefaultConfig = Config{
	Steps:        BiasedIntConfig{Min: 0, Med: 8, Max: 30},
	Dependencies: BiasedIntConfig{Min: 0, Med: 1, Max: 3},
	Workers:      BiasedIntConfig{Min: 1, Med: 2, Max: 8},
	BaseDuration: BiasedIntConfig{Min: 0, Med: 0, Max: 60},
}

type Config struct {
	// Steps is the number of steps in a plan.
	Steps BiasedIntConfig

	// Dependencies is the number of dependencies drawn for each step from
	// the steps ranked before it. Duplicate draws collapse, so a step may
	// end up with fewer.
	Dependencies BiasedIntConfig

	// Workers and BaseDuration parameterize the worker pool that the plan
	// is meant to be simulated with.
	Workers      BiasedIntConfig
	BaseDuration BiasedIntConfig

	// CycleProbability is the chance that a plan gets a pair of mutually
	// dependent steps, so that no schedule exists for it.
	CycleProbability float64
}
