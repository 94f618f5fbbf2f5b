// SPDX-License-Identifier: MIT

// Package obstacle relocates moving obstacles between simulation ticks.
//
// Each tick, Mover.Advance visits the obstacles of a gridgraph.Model in
// row-major order and moves each one to a randomly chosen adjacent cell, or
// leaves it in place when no adjacent cell is free. The result is a new
// Model; the input is never modified.
//
// Edge handling is a WrapPolicy:
//
//   - Clamp: moves that would leave the grid are discarded.
//   - Wrap:  moves wrap modulo N (toroidal grid).
//   - Stay:  obstacles never move.
//
// Hard invariants of Advance (violations are defects, not outcomes):
//
//   - no two obstacles share a cell;
//   - no obstacle lands on the agent, the start, the goal or a target;
//   - every obstacle stays in bounds.
//
// Randomness comes only from the *rand.Rand supplied through WithSeed or
// WithRand, so a fixed seed reproduces the exact same motion.
package obstacle
