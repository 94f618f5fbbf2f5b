package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// TestReachable_WalledGoal: the goal is sealed on all four sides.
//
//	S....
//	.....
//	..#..
//	.#G#.
//	..#..
func TestReachable_WalledGoal(t *testing.T) {
	m, err := gridgraph.Parse(`
		S....
		.....
		..#..
		.#G#.
		..#..`, gridgraph.TargetsBlock)
	require.NoError(t, err)

	reach := m.Reachable(m.Start())
	assert.Len(t, reach, 25-4-1)
	assert.Equal(t, m.Start(), reach[0])
	assert.False(t, m.Connected(m.Start(), m.Goal()))
	assert.Equal(t, []gridgraph.Cell{m.Goal()}, m.Reachable(m.Goal()))
}

// TestReachable_TargetsRespectPolicy: a target wall separates start from goal
// only when targets block.
func TestReachable_TargetsRespectPolicy(t *testing.T) {
	text := `
		S.T
		.T.
		T.G`
	blocking, err := gridgraph.Parse(text, gridgraph.TargetsBlock)
	require.NoError(t, err)
	visitable, err := gridgraph.Parse(text, gridgraph.TargetsVisitable)
	require.NoError(t, err)

	assert.False(t, blocking.Connected(blocking.Start(), blocking.Goal()))
	assert.True(t, visitable.Connected(visitable.Start(), visitable.Goal()))
}

func TestReachable_OutOfBounds(t *testing.T) {
	m, err := gridgraph.New(gridgraph.Layout{Size: 2})
	require.NoError(t, err)
	assert.Nil(t, m.Reachable(gridgraph.Cell{2, 0}))
	assert.False(t, m.Connected(gridgraph.Cell{0, 0}, gridgraph.Cell{0, 2}))
}
