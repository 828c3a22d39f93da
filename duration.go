// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"fmt"
)

// A DurationFunc returns how many simulated seconds the step with the given
// identifier takes once started. Results must be at least one.
type DurationFunc func(id string) (int, error)

// maxAlphabetLetters bounds identifier length so that the ordinal of any
// accepted identifier fits comfortably in an int.
const maxAlphabetLetters = 12

// AlphabetDuration returns a DurationFunc yielding base plus the identifier's
// alphabet ordinal: "A" is 1, "B" is 2 and "Z" is 26. Longer identifiers
// continue the sequence the way spreadsheet columns do, so "AA" is 27.
// Identifiers containing anything other than uppercase ASCII letters are
// rejected with [ErrInvalidDuration].
func AlphabetDuration(base int) DurationFunc {
	return func(id string) (int, error) {
		ordinal, err := alphabetOrdinal(id)
		if err != nil {
			return 0, err
		}
		return base + ordinal, nil
	}
}

func alphabetOrdinal(id string) (int, error) {
	if id == "" || len(id) > maxAlphabetLetters {
		return 0, fmt.Errorf("%w: step %q has no alphabet ordinal", ErrInvalidDuration, id)
	}
	ordinal := 0
	for i := 0; i < len(id); i++ {
		c := id[i]
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("%w: step %q has no alphabet ordinal", ErrInvalidDuration, id)
		}
		ordinal = ordinal*26 + int(c-'A') + 1
	}
	return ordinal, nil
}

// durations evaluates fn for every step of g, indexed by step index.
func (g *Graph) durations(fn DurationFunc) ([]int, error) {
	out := make([]int, len(g.nodes))
	for i, id := range g.nodes {
		d, err := fn(id)
		if err != nil {
			return nil, err
		}
		if d < 1 {
			return nil, fmt.Errorf("%w: step %q would take %d seconds", ErrInvalidDuration, id, d)
		}
		out[i] = d
	}
	return out, nil
}
