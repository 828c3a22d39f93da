// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

// Status is a step's scheduling state. A step moves strictly forward through
// Blocked, Ready, InProgress and Done; Done is terminal.
type Status int

const (
	Blocked    Status = iota // at least one dependency not yet done
	Ready                    // all dependencies done, not yet started
	InProgress               // occupying a worker slot
	Done
)

func (s Status) String() string {
	switch s {
	case Blocked:
		return "blocked"
	case Ready:
		return "ready"
	case InProgress:
		return "in-progress"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}
