// SPDX-License-Identifier: MIT
// Package: gridnav/scenario
//
// options.go - functional options for Random.
//
// Option constructors validate what they can and panic on meaningless
// input. Cell options are bounds-checked by Random, which knows the size.

package scenario

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// config aggregates the knobs of Random. Nil start/goal mean the corners.
type config struct {
	rng      *rand.Rand
	start    *gridgraph.Cell
	goal     *gridgraph.Cell
	policy   gridgraph.TargetPolicy
	solvable bool
	attempts int
}

func newConfig(opts ...Option) config {
	cfg := config{policy: gridgraph.TargetsBlock, attempts: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option customizes Random.
type Option func(*config)

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("scenario: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithStart overrides the start cell (default (0,0)).
func WithStart(cell gridgraph.Cell) Option {
	return func(c *config) { c.start = &cell }
}

// WithGoal overrides the goal cell (default (N-1,N-1)).
func WithGoal(cell gridgraph.Cell) Option {
	return func(c *config) { c.goal = &cell }
}

// WithTargetPolicy sets the policy of the generated model (default TargetsBlock).
// Panics on an undefined policy.
func WithTargetPolicy(p gridgraph.TargetPolicy) Option {
	if p != gridgraph.TargetsBlock && p != gridgraph.TargetsVisitable {
		panic(fmt.Sprintf("scenario: WithTargetPolicy(%d)", int(p)))
	}
	return func(c *config) { c.policy = p }
}

// WithSolvable requires the goal to be reachable from the start, resampling
// up to attempts times. Panics if attempts < 1.
func WithSolvable(attempts int) Option {
	if attempts < 1 {
		panic("scenario: WithSolvable(attempts < 1)")
	}
	return func(c *config) {
		c.solvable = true
		c.attempts = attempts
	}
}
