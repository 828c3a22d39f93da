// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"fmt"
	"strings"
)

type constError string

func (e constError) Error() string {
	return string(e)
}

const ErrMalformedConstraint = constError("malformed constraint")
const ErrCycleDetected = constError("cycle detected")
const ErrInvalidConfig = constError("invalid configuration")
const ErrInvalidDuration = constError("invalid duration")

// ConstraintError reports a constraint line that did not yield both a
// dependency and a dependent identifier. It wraps [ErrMalformedConstraint].
type ConstraintError struct {
	Line int    // 1-based
	Text string // offending line, untrimmed
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%v on line %d: %q", ErrMalformedConstraint, e.Line, e.Text)
}

func (e *ConstraintError) Unwrap() error {
	return ErrMalformedConstraint
}

// CycleError reports that scheduling stalled with steps still outstanding,
// which happens only when the dependency graph contains a cycle. Stuck lists
// every step that never became ready, in step order. It wraps
// [ErrCycleDetected].
type CycleError struct {
	Stuck []string
	Clock int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v at t=%d: %d steps can never start (%s)",
		ErrCycleDetected, e.Clock, len(e.Stuck), strings.Join(e.Stuck, ", "))
}

func (e *CycleError) Unwrap() error {
	return ErrCycleDetected
}
