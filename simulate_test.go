// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/petenewcomb/stepsched-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSimulateWorkedExample(t *testing.T) {
	chk := require.New(t)
	g := exampleGraph(t)

	s, err := stepsched.Simulate(g, stepsched.ExampleConfig())
	chk.NoError(err)
	chk.Equal(15, s.Makespan)
	chk.Equal("CABFDE", s.Order.String())
	chk.Equal([]stepsched.Assignment{
		{Node: "C", Slot: 0, Start: 0, End: 3},
		{Node: "F", Slot: 0, Start: 3, End: 9},
		{Node: "A", Slot: 1, Start: 3, End: 4},
		{Node: "B", Slot: 1, Start: 4, End: 6},
		{Node: "D", Slot: 1, Start: 6, End: 10},
		{Node: "E", Slot: 0, Start: 10, End: 15},
	}, s.Assignments)

	s, err = stepsched.Simulate(g, stepsched.ProductionConfig())
	chk.NoError(err)
	chk.Equal(253, s.Makespan)
}

func TestSimulateIsDeterministic(t *testing.T) {
	chk := require.New(t)
	g := exampleGraph(t)

	first, err := stepsched.Simulate(g, stepsched.ExampleConfig())
	chk.NoError(err)
	for range 20 {
		again, err := stepsched.Simulate(g, stepsched.ExampleConfig())
		chk.NoError(err)
		chk.Equal(first.Makespan, again.Makespan)
		chk.Equal(first.Order, again.Order)
		chk.Equal(first.Assignments, again.Assignments)
	}
}

func TestSimulateMoreWorkersOnWorkedExample(t *testing.T) {
	chk := require.New(t)
	g := exampleGraph(t)

	length, _, err := stepsched.CriticalPath(g, stepsched.AlphabetDuration(0))
	chk.NoError(err)
	chk.Equal(14, length)

	previous := -1
	for workers := 1; workers <= 8; workers++ {
		s, err := stepsched.Simulate(g, stepsched.Config{Workers: workers})
		chk.NoError(err)
		if previous >= 0 {
			chk.LessOrEqual(s.Makespan, previous, "workers=%d", workers)
		}
		chk.GreaterOrEqual(s.Makespan, length)
		previous = s.Makespan
	}
	chk.Equal(length, previous)

	serial, err := stepsched.Simulate(g, stepsched.Config{Workers: 1})
	chk.NoError(err)
	chk.Equal(21, serial.Makespan)
	chk.Equal("CABDFE", serial.Order.String())
}

func TestSimulateTrivialGraphs(t *testing.T) {
	chk := require.New(t)

	var b stepsched.Builder
	s, err := stepsched.Simulate(b.Build(), stepsched.ProductionConfig())
	chk.NoError(err)
	chk.Zero(s.Makespan)
	chk.Empty(s.Order)
	chk.Zero(s.Peak())
	chk.Zero(s.Utilization())

	b.AddNode("B")
	s, err = stepsched.Simulate(b.Build(), stepsched.Config{Workers: 1000, BaseDuration: 10})
	chk.NoError(err)
	chk.Equal(12, s.Makespan)
	chk.Equal(1, s.Peak())
}

func TestSimulateRejectsInvalidConfig(t *testing.T) {
	chk := require.New(t)
	g := exampleGraph(t)

	_, err := stepsched.Simulate(g, stepsched.Config{Workers: 0})
	chk.ErrorIs(err, stepsched.ErrInvalidConfig)

	_, err = stepsched.Simulate(g, stepsched.Config{Workers: 1, BaseDuration: -1})
	chk.ErrorIs(err, stepsched.ErrInvalidConfig)
}

func TestSimulateRejectsInvalidDuration(t *testing.T) {
	chk := require.New(t)

	_, err := stepsched.Simulate(graphOf(stepsched.Edge{Dependency: "a", Dependent: "B"}), stepsched.ExampleConfig())
	chk.ErrorIs(err, stepsched.ErrInvalidDuration)

	_, err = stepsched.Simulate(exampleGraph(t), stepsched.Config{
		Workers:  2,
		Duration: func(string) (int, error) { return 0, nil },
	})
	chk.ErrorIs(err, stepsched.ErrInvalidDuration)

	boom := errors.New("boom")
	_, err = stepsched.Simulate(exampleGraph(t), stepsched.Config{
		Workers:  2,
		Duration: func(string) (int, error) { return 0, boom },
	})
	chk.ErrorIs(err, boom)
}

func TestSimulateCustomDuration(t *testing.T) {
	chk := require.New(t)

	s, err := stepsched.Simulate(exampleGraph(t), stepsched.Config{
		Workers:  2,
		Duration: func(string) (int, error) { return 1, nil },
	})
	chk.NoError(err)
	// C; A F; B D; E
	chk.Equal(4, s.Makespan)
}

func TestSimulateDetectsCycle(t *testing.T) {
	chk := require.New(t)

	g := graphOf(
		stepsched.Edge{Dependency: "A", Dependent: "B"},
		stepsched.Edge{Dependency: "B", Dependent: "A"},
		stepsched.Edge{Dependency: "C", Dependent: "D"},
	)
	s, err := stepsched.Simulate(g, stepsched.ExampleConfig())
	chk.Nil(s)
	chk.ErrorIs(err, stepsched.ErrCycleDetected)

	var ce *stepsched.CycleError
	chk.True(errors.As(err, &ce))
	chk.Equal([]string{"A", "B"}, ce.Stuck)
	// C runs 0-3, then D runs 3-7.
	chk.Equal(7, ce.Clock)
}

func TestSimulateLogsProgress(t *testing.T) {
	chk := require.New(t)

	core, logs := observer.New(zapcore.DebugLevel)
	_, err := stepsched.Simulate(exampleGraph(t), stepsched.ExampleConfig(),
		stepsched.WithLogger(zap.New(core)))
	chk.NoError(err)

	chk.Equal(6, logs.FilterMessage("step started").Len())
	chk.Equal(6, logs.FilterMessage("step done").Len())
	finished := logs.FilterMessage("simulation finished").All()
	chk.Len(finished, 1)
	chk.Equal(int64(15), finished[0].ContextMap()["clock"])

	first := logs.FilterMessage("step started").All()[0].ContextMap()
	chk.Equal("C", first["step"])
	chk.Equal(int64(0), first["slot"])
}

func TestScheduleQueries(t *testing.T) {
	chk := require.New(t)

	s, err := stepsched.Simulate(exampleGraph(t), stepsched.ExampleConfig())
	chk.NoError(err)

	chk.Equal(2, s.Peak())
	chk.Equal(21, s.Busy())
	chk.InDelta(21.0/30.0, s.Utilization(), 1e-9)

	a, ok := s.Assignment("F")
	chk.True(ok)
	chk.Equal(6, a.Duration())
	_, ok = s.Assignment("Q")
	chk.False(ok)

	for _, tc := range []struct {
		node   string
		at     int
		status stepsched.Status
	}{
		{"E", 0, stepsched.Blocked},
		{"C", 0, stepsched.InProgress},
		{"A", 0, stepsched.Blocked},
		{"A", 3, stepsched.InProgress},
		{"C", 3, stepsched.Done},
		{"D", 4, stepsched.Ready},
		{"D", 5, stepsched.Ready},
		{"D", 6, stepsched.InProgress},
		{"E", 9, stepsched.Blocked},
		{"E", 10, stepsched.InProgress},
		{"E", 15, stepsched.Done},
	} {
		t.Run(fmt.Sprintf("%s@%d", tc.node, tc.at), func(t *testing.T) {
			status, ok := s.StatusAt(tc.node, tc.at)
			require.True(t, ok)
			require.Equal(t, tc.status, status, "got %v", status)
		})
	}
	_, ok = s.StatusAt("Q", 0)
	chk.False(ok)
}

func TestStatusString(t *testing.T) {
	chk := require.New(t)
	chk.Equal("blocked", stepsched.Blocked.String())
	chk.Equal("ready", stepsched.Ready.String())
	chk.Equal("in-progress", stepsched.InProgress.String())
	chk.Equal("done", stepsched.Done.String())
	chk.Equal("unknown", stepsched.Status(42).String())
}
