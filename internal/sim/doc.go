// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package sim generates random step graphs for property tests and provides a
// reference scheduler to check results against. A plan is a set of steps
// named like spreadsheet columns ("A", "B", ..., "Z", "AA", ...) together with
// precedence constraints that are acyclic by construction unless a cycle is
// requested. The reference scheduler follows the one-second tick loop
// literally, comparing step names directly, so that it shares no code or
// data structures with the package under test.
package sim
