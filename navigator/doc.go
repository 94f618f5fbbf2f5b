// SPDX-License-Identifier: MIT

// Package navigator drives an agent across a gridgraph.Model one tick at a
// time.
//
// Two controller variants implement Controller:
//
//   - Navigator: A*-driven. Each tick it moves the obstacles (obstacle.Mover),
//     plans from the agent's cell to the goal (astar.FindPath) and advances
//     one cell along the plan. Targets block. Two planning modes exist:
//     ModeReactive replans every tick; ModeStaticPlan keeps its plan and
//     replans only when the next cell became blocked or no plan is held.
//   - Sweep: raster mode. The agent walks the grid in row-major order from
//     the start cell, ignores obstacles, marks targets it enters as visited
//     and completes on the last cell. Targets are visitable.
//
// Navigator states:
//
//	Navigating ──(agent on goal at tick start)──▶ GoalReached (terminal)
//	    │  ▲
//	    ▼  │ path reappears
//	  Stuck   (no path this tick; the agent holds its cell)
//
// Both controllers are single-goroutine objects: Tick mutates state exactly
// once per call and must not be called concurrently. The only concurrent
// input is a PositionFeed, which hands over the latest live cell through a
// single atomic snapshot; Run consumes it between ticks via ResetAt.
package navigator
