// SPDX-License-Identifier: MIT
// Package: gridnav/scenario
//
// random.go - Random(size, targets, obstacles).
//
// Contract:
//   - size ≥ 1, targets ≥ 0, obstacles ≥ 0 (else ErrTooFewCells).
//   - targets+obstacles must fit in the cells other than start and goal.
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Without WithSolvable a single sample is returned as is.
//
// Determinism:
//   - The candidate pool is built in row-major order and shuffled with
//     cfg.rng; targets take the first slots and obstacles the next ones.

package scenario

import (
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

const methodRandom = "Random"

// Random samples a layout on a size×size grid.
func Random(size, targets, obstacles int, opts ...Option) (*gridgraph.Model, error) {
	cfg := newConfig(opts...)

	if size < 1 || targets < 0 || obstacles < 0 {
		return nil, fmt.Errorf("%s: size=%d targets=%d obstacles=%d: %w",
			methodRandom, size, targets, obstacles, ErrTooFewCells)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	start := gridgraph.Cell{}
	if cfg.start != nil {
		start = *cfg.start
	}
	goal := gridgraph.Cell{Row: size - 1, Col: size - 1}
	if cfg.goal != nil {
		goal = *cfg.goal
	}

	// Validates start and goal against the size before sampling.
	base, err := gridgraph.New(gridgraph.Layout{Size: size, Start: start, Goal: goal, Policy: cfg.policy})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}

	pool := make([]gridgraph.Cell, 0, size*size)
	for idx := 0; idx < size*size; idx++ {
		c := base.Coordinate(idx)
		if c != start && c != goal {
			pool = append(pool, c)
		}
	}
	if targets+obstacles > len(pool) {
		return nil, fmt.Errorf("%s: %d targets + %d obstacles > %d free cells: %w",
			methodRandom, targets, obstacles, len(pool), ErrTooFewCells)
	}

	for attempt := 0; attempt < cfg.attempts; attempt++ {
		cfg.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		m, err := gridgraph.New(gridgraph.Layout{
			Size:      size,
			Start:     start,
			Goal:      goal,
			Targets:   pool[:targets],
			Obstacles: pool[targets : targets+obstacles],
			Policy:    cfg.policy,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, err)
		}
		if !cfg.solvable || m.Connected(start, goal) {
			return m, nil
		}
	}

	return nil, fmt.Errorf("%s: goal unreachable after %d attempts: %w",
		methodRandom, cfg.attempts, ErrConstructFailed)
}
