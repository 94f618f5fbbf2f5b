// SPDX-License-Identifier: MIT

// Package astar finds shortest 4-connected paths on a gridgraph.Model with
// the A* algorithm and a Manhattan-distance heuristic.
//
// Overview:
//
//   - Edge cost is uniformly 1 and the Manhattan heuristic is admissible and
//     consistent on such a grid, so every returned path is optimal.
//   - A neighbor is a candidate iff it is in bounds and not blocked in the
//     Model (obstacles always block, targets block under TargetsBlock).
//   - The frontier is a min-heap ordered by (f = g + h, discovery sequence):
//     among equal f the entry pushed first is expanded first. Together with the
//     fixed neighbor order (up, down, left, right) this makes FindPath fully
//     deterministic for a given Model, start and goal.
//   - Search stops as soon as the goal is popped; its neighbors are not
//     expanded.
//
// Outcomes:
//
//   - Result.Found == true: Result.Path runs from start to goal inclusive.
//   - Result.Found == false: the goal is unreachable from start (or the
//     optional expansion cap was hit, see Result.Truncated). This is a value,
//     not an error.
//
// Errors are reserved for malformed calls:
//
//   - ErrNilModel:    the model pointer is nil.
//   - ErrStartBounds: start lies outside the grid.
//   - ErrGoalBounds:  goal lies outside the grid.
//
// Complexity:
//
//   - Time:  O(E log E) with E ≤ 4·N² frontier pushes (lazy decrease-key).
//   - Space: O(N²) for cost, predecessor and closed arrays.
//
// Every call owns its search state; nothing is shared across calls, so
// concurrent FindPath calls over the same immutable Model are safe.
package astar
