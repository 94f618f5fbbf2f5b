package scenario_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/scenario"
)

func TestRandom_Defaults(t *testing.T) {
	m, err := scenario.Random(10, 5, 10, scenario.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, 10, m.Size())
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 0}, m.Start())
	assert.Equal(t, gridgraph.Cell{Row: 9, Col: 9}, m.Goal())
	assert.Equal(t, gridgraph.TargetsBlock, m.Policy())
	assert.Len(t, m.Targets(), 5)
	assert.Len(t, m.Obstacles(), 10)
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := scenario.Random(10, 5, 15, scenario.WithSeed(7))
	require.NoError(t, err)
	b, err := scenario.Random(10, 5, 15, scenario.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	c, err := scenario.Random(10, 5, 15, scenario.WithSeed(8))
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String())
}

func TestRandom_Options(t *testing.T) {
	m, err := scenario.Random(6, 3, 3,
		scenario.WithSeed(1),
		scenario.WithStart(gridgraph.Cell{Row: 5, Col: 0}),
		scenario.WithGoal(gridgraph.Cell{Row: 0, Col: 5}),
		scenario.WithTargetPolicy(gridgraph.TargetsVisitable))
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{Row: 5, Col: 0}, m.Start())
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 5}, m.Goal())
	assert.Equal(t, gridgraph.TargetsVisitable, m.Policy())
}

func TestRandom_FillsEveryFreeCell(t *testing.T) {
	m, err := scenario.Random(3, 3, 4, scenario.WithSeed(3))
	require.NoError(t, err)
	assert.Len(t, m.Targets(), 3)
	assert.Len(t, m.Obstacles(), 4)
}

func TestRandom_Errors(t *testing.T) {
	_, err := scenario.Random(0, 0, 0, scenario.WithSeed(1))
	assert.ErrorIs(t, err, scenario.ErrTooFewCells)

	_, err = scenario.Random(3, -1, 0, scenario.WithSeed(1))
	assert.ErrorIs(t, err, scenario.ErrTooFewCells)

	_, err = scenario.Random(3, 4, 4, scenario.WithSeed(1))
	assert.ErrorIs(t, err, scenario.ErrTooFewCells)

	_, err = scenario.Random(3, 1, 1)
	assert.ErrorIs(t, err, scenario.ErrNeedRandSource)

	_, err = scenario.Random(3, 1, 1, scenario.WithSeed(1), scenario.WithGoal(gridgraph.Cell{Row: 3, Col: 3}))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	assert.Panics(t, func() { scenario.WithRand(nil) })
	assert.Panics(t, func() { scenario.WithSolvable(0) })
	assert.Panics(t, func() { scenario.WithTargetPolicy(gridgraph.TargetPolicy(5)) })
}

func TestRandom_Solvable(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		m, err := scenario.Random(8, 4, 24, scenario.WithSeed(seed), scenario.WithSolvable(500))
		require.NoError(t, err, "seed %d", seed)
		assert.True(t, m.Connected(m.Start(), m.Goal()), "seed %d", seed)
	}
}

// Both neighbors of the start are the only free cells, so every sample
// walls the start off.
func TestRandom_SolvableExhausted(t *testing.T) {
	_, err := scenario.Random(2, 0, 2, scenario.WithSeed(1), scenario.WithSolvable(5))
	assert.ErrorIs(t, err, scenario.ErrConstructFailed)
}
