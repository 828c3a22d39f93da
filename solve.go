// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"io"
)

// Solve parses constraints from r and returns both the single-worker step
// order and the time cfg's worker pool needs to finish every step.
func Solve(r io.Reader, cfg Config, opts ...Option) (string, int, error) {
	g, err := ParseConstraints(r)
	if err != nil {
		return "", 0, err
	}
	order, err := Sequence(g)
	if err != nil {
		return "", 0, err
	}
	schedule, err := Simulate(g, cfg, opts...)
	if err != nil {
		return "", 0, err
	}
	return order.String(), schedule.Makespan, nil
}
