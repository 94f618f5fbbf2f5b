// SPDX-License-Identifier: MIT

package obstacle

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Mover advances obstacles one step per call. A Mover is not safe for
// concurrent use because it owns its RNG stream.
type Mover struct {
	policy WrapPolicy
	rng    *rand.Rand
	logger *slog.Logger
}

// NewMover applies opts in order. Default policy is Clamp.
// Returns ErrNeedRandSource unless the policy is Stay or an RNG was given.
func NewMover(opts ...Option) (*Mover, error) {
	cfg := moverConfig{policy: Clamp}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil && cfg.policy != Stay {
		return nil, ErrNeedRandSource
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	return &Mover{policy: cfg.policy, rng: cfg.rng, logger: cfg.logger}, nil
}

// Policy returns the edge policy.
func (mv *Mover) Policy() WrapPolicy { return mv.policy }

// Advance returns the model after one obstacle step. agent is the cell the
// navigating agent currently occupies; no obstacle may enter it.
//
// Obstacles are processed in row-major order against a working occupancy
// set: each one is lifted, a free adjacent cell is drawn uniformly from the
// candidates (in Directions order), and it is placed again. An obstacle
// without candidates stays and the event is logged at debug level.
//
// The returned error is non-nil only for a nil model or a broken invariant.
func (mv *Mover) Advance(m *gridgraph.Model, agent gridgraph.Cell) (*gridgraph.Model, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if mv.policy == Stay || len(m.Obstacles()) == 0 {
		return m, nil
	}

	occupied := m.ObstacleSet()
	current := m.Obstacles()
	next := make([]gridgraph.Cell, 0, len(current))
	candidates := make([]gridgraph.Cell, 0, len(gridgraph.Directions))

	for _, from := range current {
		occupied.Remove(from)
		candidates = mv.candidates(candidates[:0], m, occupied, from, agent)

		to := from
		if len(candidates) > 0 {
			to = candidates[mv.rng.Intn(len(candidates))]
		} else {
			mv.logger.Debug("obstacle stays", slog.String("cell", from.String()))
		}
		occupied.Add(to)
		next = append(next, to)
	}

	moved, err := m.WithObstacles(next)
	if err != nil {
		return nil, fmt.Errorf("obstacle: advance produced invalid layout: %w", err)
	}

	return moved, nil
}

// candidates appends the distinct legal destinations of from to dst.
func (mv *Mover) candidates(dst []gridgraph.Cell, m *gridgraph.Model, occupied gridgraph.CellSet, from, agent gridgraph.Cell) []gridgraph.Cell {
	n := m.Size()
	for _, d := range gridgraph.Directions {
		to := from.Add(d)
		if mv.policy == Wrap {
			to = gridgraph.Cell{Row: (to.Row + n) % n, Col: (to.Col + n) % n}
		}
		if to == from || !m.InBounds(to) {
			continue
		}
		if to == agent || to == m.Start() || to == m.Goal() || m.IsTarget(to) || occupied.Has(to) {
			continue
		}
		if contains(dst, to) {
			continue
		}
		dst = append(dst, to)
	}

	return dst
}

func contains(cells []gridgraph.Cell, c gridgraph.Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}
