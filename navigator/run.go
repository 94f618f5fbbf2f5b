// SPDX-License-Identifier: MIT

package navigator

import (
	"context"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Controller is a tick-driven navigation state machine.
// Navigator and Sweep implement it.
type Controller interface {
	Tick() (Snapshot, bool)
	Snapshot() Snapshot
}

// Repositioner is implemented by controllers that can restart from a live
// position.
type Repositioner interface {
	ResetAt(c gridgraph.Cell) error
}

var (
	_ Controller   = (*Navigator)(nil)
	_ Controller   = (*Sweep)(nil)
	_ Repositioner = (*Navigator)(nil)
	_ Repositioner = (*Sweep)(nil)
)

type runConfig struct {
	maxTicks int
	onTick   func(Snapshot, bool)
	feed     *PositionFeed
	logger   *slog.Logger
}

// RunOption customizes Run.
type RunOption func(*runConfig)

// WithMaxTicks stops Run after n ticks; 0 means no limit. Panics if n < 0.
func WithMaxTicks(n int) RunOption {
	if n < 0 {
		panic("navigator: WithMaxTicks(n < 0)")
	}
	return func(c *runConfig) { c.maxTicks = n }
}

// WithOnTick registers an observer called after every tick with the
// snapshot and the status-changed flag. Panics on nil.
func WithOnTick(fn func(Snapshot, bool)) RunOption {
	if fn == nil {
		panic("navigator: WithOnTick(nil)")
	}
	return func(c *runConfig) { c.onTick = fn }
}

// WithFeed makes Run restart the controller from every new feed sample
// before the next tick. The controller must implement Repositioner; samples
// are ignored otherwise. Panics on nil.
func WithFeed(f *PositionFeed) RunOption {
	if f == nil {
		panic("navigator: WithFeed(nil)")
	}
	return func(c *runConfig) { c.feed = f }
}

// WithRunLogger sets the logger Run reports rejected feed samples to.
// Panics on nil.
func WithRunLogger(l *slog.Logger) RunOption {
	if l == nil {
		panic("navigator: WithRunLogger(nil)")
	}
	return func(c *runConfig) { c.logger = l }
}

// Run ticks c once per interval until the goal is reached, the tick limit
// is hit, or ctx is done. interval <= 0 ticks back to back.
// It returns the last snapshot, and ctx.Err() when cancelled.
func Run(ctx context.Context, c Controller, interval time.Duration, opts ...RunOption) (Snapshot, error) {
	cfg := runConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	var tc <-chan time.Time
	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tc = t.C
	}

	snap := c.Snapshot()
	var seen uint64
	for ticks := 0; cfg.maxTicks == 0 || ticks < cfg.maxTicks; ticks++ {
		if tc != nil {
			select {
			case <-ctx.Done():
				return snap, ctx.Err()
			case <-tc:
			}
		} else if err := ctx.Err(); err != nil {
			return snap, err
		}

		if cfg.feed != nil {
			seen = reposition(c, cfg, seen)
		}

		var changed bool
		snap, changed = c.Tick()
		if cfg.onTick != nil {
			cfg.onTick(snap, changed)
		}
		if snap.Status == GoalReached {
			return snap, nil
		}
	}

	return snap, nil
}

// reposition applies the feed sample newer than seen, if any, and returns
// the version consumed.
func reposition(c Controller, cfg runConfig, seen uint64) uint64 {
	cell, v, ok := cfg.feed.Latest()
	if !ok || v == seen {
		return seen
	}
	r, ok := c.(Repositioner)
	if !ok {
		return v
	}
	if err := r.ResetAt(cell); err != nil {
		cfg.logger.Warn("position sample rejected",
			slog.String("cell", cell.String()),
			slog.Uint64("version", v),
			slog.Any("err", err))
	}

	return v
}
