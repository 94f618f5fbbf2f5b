// SPDX-License-Identifier: MIT
// Package: gridnav/obstacle
//
// options.go - functional options for Mover.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package obstacle

import (
	"fmt"
	"log/slog"
	"math/rand"
)

// WrapPolicy selects how moves at the grid edge are handled.
type WrapPolicy int

const (
	// Clamp discards moves that would leave the grid.
	Clamp WrapPolicy = iota
	// Wrap moves modulo the grid size.
	Wrap
	// Stay keeps every obstacle in place.
	Stay
)

// String returns the policy name used by ParseWrapPolicy.
func (p WrapPolicy) String() string {
	switch p {
	case Clamp:
		return "clamp"
	case Wrap:
		return "wrap"
	case Stay:
		return "stay"
	default:
		return fmt.Sprintf("WrapPolicy(%d)", int(p))
	}
}

// ParseWrapPolicy maps "clamp", "wrap" or "stay" to a WrapPolicy.
func ParseWrapPolicy(s string) (WrapPolicy, error) {
	for _, p := range []WrapPolicy{Clamp, Wrap, Stay} {
		if p.String() == s {
			return p, nil
		}
	}
	return Clamp, fmt.Errorf("obstacle: unknown wrap policy %q", s)
}

type moverConfig struct {
	policy WrapPolicy
	rng    *rand.Rand
	logger *slog.Logger
}

// Option customizes a Mover.
type Option func(*moverConfig)

// WithPolicy sets the edge policy. Panics on an undefined value.
func WithPolicy(p WrapPolicy) Option {
	if p < Clamp || p > Stay {
		panic(fmt.Sprintf("obstacle: WithPolicy(%d)", int(p)))
	}
	return func(c *moverConfig) { c.policy = p }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("obstacle: WithRand(nil)")
	}
	return func(c *moverConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *moverConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger routes recoverable events (an obstacle with no free move) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("obstacle: WithLogger(nil)")
	}
	return func(c *moverConfig) { c.logger = l }
}
