// SPDX-License-Identifier: MIT

package navigator

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridnav/astar"
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/obstacle"
)

// Navigator is the A*-driven controller. Targets block, obstacles move once
// per tick, and the agent advances at most one cell per tick.
type Navigator struct {
	model  *gridgraph.Model
	mover  *obstacle.Mover
	mode   Mode
	maxExp int
	logger *slog.Logger

	runID  uuid.UUID
	tick   int
	plans  int
	pos    gridgraph.Cell
	path   []gridgraph.Cell
	step   int
	status Status
}

// New validates cfg, builds the model (targets block) and an obstacle mover
// seeded with cfg.Seed, and computes the initial plan. opts are applied after
// the settings derived from cfg, so WithRand overrides the seed.
func New(cfg Config, opts ...Option) (*Navigator, error) {
	if cfg.Mode != ModeReactive && cfg.Mode != ModeStaticPlan {
		return nil, fmt.Errorf("%w: mode %d", ErrBadSetting, int(cfg.Mode))
	}
	if cfg.Wrap < obstacle.Clamp || cfg.Wrap > obstacle.Stay {
		return nil, fmt.Errorf("%w: wrap %d", ErrBadSetting, int(cfg.Wrap))
	}
	if cfg.MaxExpansions < 0 {
		return nil, fmt.Errorf("%w: max expansions %d", ErrBadSetting, cfg.MaxExpansions)
	}
	m, err := gridgraph.New(gridgraph.Layout{
		Size:      cfg.Size,
		Start:     cfg.Start,
		Goal:      cfg.Goal,
		Obstacles: cfg.Obstacles,
		Targets:   cfg.Targets,
		Policy:    gridgraph.TargetsBlock,
	})
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithMode(cfg.Mode),
		WithWrap(cfg.Wrap),
		WithSeed(cfg.Seed),
		WithMaxExpansions(cfg.MaxExpansions),
	}

	return NewFromModel(m, append(base, opts...)...)
}

// NewFromModel builds a Navigator over an existing model. The model must use
// TargetsBlock. Unless the wrap policy is obstacle.Stay, WithSeed or WithRand
// is required.
func NewFromModel(m *gridgraph.Model, opts ...Option) (*Navigator, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	moverOpts := []obstacle.Option{obstacle.WithPolicy(s.wrap), obstacle.WithLogger(s.logger)}
	if s.rng != nil {
		moverOpts = append(moverOpts, obstacle.WithRand(s.rng))
	}
	mover, err := obstacle.NewMover(moverOpts...)
	if err != nil {
		return nil, fmt.Errorf("navigator: %w", err)
	}
	n := &Navigator{
		mover:  mover,
		mode:   s.mode,
		maxExp: s.maxExpansions,
		logger: s.logger,
	}
	if err := n.Reset(m); err != nil {
		return nil, err
	}

	return n, nil
}

// Reset replaces the model and restarts the run from its start cell with a
// new RunID. On error the Navigator is left unchanged.
func (n *Navigator) Reset(m *gridgraph.Model) error {
	if m == nil {
		return ErrNilModel
	}
	if m.Policy() != gridgraph.TargetsBlock {
		return fmt.Errorf("%w: got %v", ErrTargetPolicy, m.Policy())
	}
	n.model = m
	n.runID = uuid.New()
	n.tick = 0
	n.plans = 0
	n.pos = m.Start()
	n.status = Navigating
	n.plan()
	n.logger.Info("run reset",
		slog.String("run_id", n.runID.String()),
		slog.String("start", n.pos.String()),
		slog.String("goal", m.Goal().String()),
		slog.String("mode", n.mode.String()))

	return nil
}

// ResetAt restarts the run from c on the current model (obstacles keep their
// present cells). c must be in bounds and free of obstacles and targets.
func (n *Navigator) ResetAt(c gridgraph.Cell) error {
	m, err := n.model.WithStart(c)
	if err != nil {
		return err
	}
	return n.Reset(m)
}

// Tick performs one step and reports whether the status changed.
//
// Order: a goal check on the agent's cell (GoalReached is terminal and
// absorbs further ticks), then one obstacle move, then planning per Mode,
// then at most one step along the plan. Without a path the agent holds its
// cell and the status becomes Stuck.
func (n *Navigator) Tick() (Snapshot, bool) {
	if n.status == GoalReached {
		return n.Snapshot(), false
	}
	before := n.status
	n.tick++

	if n.pos == n.model.Goal() {
		n.status = GoalReached
	} else {
		n.advance()
	}

	changed := n.status != before
	if changed {
		n.logger.Info("status changed",
			slog.String("run_id", n.runID.String()),
			slog.Int("tick", n.tick),
			slog.String("from", before.String()),
			slog.String("to", n.status.String()),
			slog.String("agent", n.pos.String()))
	}

	return n.Snapshot(), changed
}

func (n *Navigator) advance() {
	moved, err := n.mover.Advance(n.model, n.pos)
	if err != nil {
		// Keep the previous layout; an obstacle move never yields an invalid model.
		n.logger.Error("obstacle move rejected", slog.Any("err", err))
	} else {
		n.model = moved
	}

	if n.mode == ModeReactive || n.planInvalid() {
		if !n.plan() {
			n.status = Stuck
			return
		}
	}
	n.status = Navigating
	if n.step+1 < len(n.path) {
		n.step++
		n.pos = n.path[n.step]
	}
}

// planInvalid reports whether the held plan cannot be followed this tick.
func (n *Navigator) planInvalid() bool {
	return n.path == nil || n.step+1 >= len(n.path) || n.model.IsBlocked(n.path[n.step+1])
}

// plan searches from the agent's cell to the goal and installs the result.
// It reports whether a path was found.
func (n *Navigator) plan() bool {
	n.plans++
	res, err := astar.FindPath(n.model, n.pos, n.model.Goal(), astar.WithMaxExpansions(n.maxExp))
	if err != nil {
		n.logger.Error("plan failed", slog.Any("err", err))
		n.path, n.step = nil, 0
		return false
	}
	n.logger.Debug("planned",
		slog.Int("tick", n.tick),
		slog.Bool("found", res.Found),
		slog.Int("cost", res.Cost),
		slog.Int("expanded", res.Expanded),
		slog.Bool("truncated", res.Truncated))
	if !res.Found {
		n.path, n.step = nil, 0
		return false
	}
	n.path, n.step = res.Path, 0

	return true
}

// Snapshot returns the current state without mutating anything.
func (n *Navigator) Snapshot() Snapshot {
	var path []gridgraph.Cell
	if n.path != nil {
		path = append([]gridgraph.Cell(nil), n.path...)
	}
	return Snapshot{
		RunID:     n.runID,
		Tick:      n.tick,
		Grid:      n.model,
		Agent:     n.pos,
		Path:      path,
		StepIndex: n.step,
		Plans:     n.plans,
		Status:    n.status,
	}
}

// Mode returns the planning mode.
func (n *Navigator) Mode() Mode { return n.mode }
