// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A ConstraintParser extracts one precedence constraint from each line of
// text by word position. Words are separated by runs of whitespace and
// counted from zero.
type ConstraintParser struct {
	DependencyField int
	DependentField  int
}

// DefaultParser reads lines of the form
//
//	Step C must be finished before step A can begin.
//
// where the second word names the dependency and the eighth names the
// dependent.
var DefaultParser = ConstraintParser{
	DependencyField: 1,
	DependentField:  7,
}

// ParseConstraints builds a graph from text using [DefaultParser].
func ParseConstraints(r io.Reader) (*Graph, error) {
	return DefaultParser.Parse(r)
}

// Parse reads constraints from r, one per line, and returns the resulting
// graph. Blank lines are ignored. Parsing stops at the first line that lacks
// either field, returning a [*ConstraintError] and no graph.
func (p ConstraintParser) Parse(r io.Reader) (*Graph, error) {
	if p.DependencyField < 0 || p.DependentField < 0 {
		panic("constraint field positions may not be negative")
	}
	var b Builder
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		dependency, dependent, ok := p.fields(text)
		if !ok {
			return nil, &ConstraintError{Line: line, Text: text}
		}
		b.AddEdge(dependency, dependent)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading constraints: %w", err)
	}
	return b.Build(), nil
}

func (p ConstraintParser) fields(text string) (string, string, bool) {
	words := strings.Fields(text)
	if p.DependencyField >= len(words) || p.DependentField >= len(words) {
		return "", "", false
	}
	return words[p.DependencyField], words[p.DependentField], true
}
