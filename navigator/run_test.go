package navigator_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/navigator"
	"github.com/katalvlaran/gridnav/obstacle"
)

func openNavigator(t *testing.T) *navigator.Navigator {
	t.Helper()
	n, err := navigator.New(navigator.Config{
		Size: 5, Start: cell(0, 0), Goal: cell(4, 4),
		Obstacles: []gridgraph.Cell{cell(2, 2)},
		Wrap:      obstacle.Stay,
	})
	require.NoError(t, err)
	return n
}

func TestRun_ReachesGoal(t *testing.T) {
	n := openNavigator(t)
	ticks, changes := 0, 0
	s, err := navigator.Run(context.Background(), n, 0, navigator.WithOnTick(func(_ navigator.Snapshot, changed bool) {
		ticks++
		if changed {
			changes++
		}
	}))
	require.NoError(t, err)
	assert.Equal(t, navigator.GoalReached, s.Status)
	assert.Equal(t, 9, ticks)
	assert.Equal(t, 1, changes)
}

func TestRun_Interval(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := navigator.Run(ctx, openNavigator(t), time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, navigator.GoalReached, s.Status)
}

func TestRun_MaxTicks(t *testing.T) {
	s, err := navigator.Run(context.Background(), openNavigator(t), 0, navigator.WithMaxTicks(3))
	require.NoError(t, err)
	assert.Equal(t, navigator.Navigating, s.Status)
	assert.Equal(t, 3, s.Tick)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := navigator.Run(ctx, openNavigator(t), 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, s.Tick)

	s, err = navigator.Run(ctx, openNavigator(t), time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, s.Tick)
}

func TestRun_Feed(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var feed navigator.PositionFeed
	feed.Publish(cell(4, 0))

	n := openNavigator(t)
	s, err := navigator.Run(context.Background(), n, 0,
		navigator.WithFeed(&feed), navigator.WithRunLogger(logger), navigator.WithMaxTicks(1))
	require.NoError(t, err)
	assert.Equal(t, cell(4, 0), s.Grid.Start())
	assert.Equal(t, cell(4, 1), s.Agent)
	assert.Equal(t, 1, s.Tick)

	// The obstacle cell is rejected and the run continues unchanged.
	feed.Publish(cell(2, 2))
	s, err = navigator.Run(context.Background(), n, 0,
		navigator.WithFeed(&feed), navigator.WithRunLogger(logger), navigator.WithMaxTicks(1))
	require.NoError(t, err)
	assert.Equal(t, cell(4, 2), s.Agent)
	assert.Contains(t, buf.String(), "position sample rejected")
}

func TestRunOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { navigator.WithMaxTicks(-1) })
	assert.Panics(t, func() { navigator.WithOnTick(nil) })
	assert.Panics(t, func() { navigator.WithFeed(nil) })
	assert.Panics(t, func() { navigator.WithRunLogger(nil) })
}
