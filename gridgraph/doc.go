// SPDX-License-Identifier: MIT

// Package gridgraph models a square N×N occupancy grid as an implicit
// 4-connected graph for the navigator.
//
// What:
//
//   - Cell is an immutable (Row, Col) value usable as a map key.
//   - Model holds the start cell, the goal cell, a set of obstacles and a
//     set of targets. Membership is bitset-backed (row-major index), so every
//     query is O(1).
//   - Targets are interpreted through a TargetPolicy: TargetsBlock makes them
//     impassable (A*-driven navigation), TargetsVisitable leaves them
//     traversable (raster sweep).
//   - Reachable/Connected run a BFS flood fill over unblocked cells.
//   - Parse/String convert a model to and from a compact ASCII form used by
//     fixtures and the CLI.
//
// Invariants:
//
//   - start, goal, every obstacle and every target lie inside the grid.
//   - obstacles, targets and {start, goal} are pairwise disjoint. start and
//     goal may coincide (the degenerate "already there" scenario).
//
// A Model is immutable once built. Relocating obstacles (WithObstacles) or
// moving the start (WithStart) returns a new Model, so a search running over
// one Model never observes a concurrent change.
//
// Complexity:
//
//   - New, WithObstacles, WithStart: O(N² / 64 + k), k = number of special cells.
//   - IsBlocked, InBounds, Index, Coordinate: O(1).
//   - Reachable, Connected: O(N²) time and memory.
//
// Errors:
//
//   - ErrInvalidConfiguration: umbrella sentinel for any rejected layout.
//   - ErrBadSize: N < 1, or non-square text input.
//   - ErrOutOfBounds: a special cell lies outside the grid.
//   - ErrOverlap: two special cells share a position.
//   - ErrMalformed: unreadable ASCII grid.
package gridgraph
