// Package gridnav is a grid navigation toolkit: an agent crosses an N×N
// occupancy grid toward a goal while obstacles wander, replanning with A*
// as the map changes.
//
// 🚀 What is in gridnav?
//
//	• Grid model: immutable occupancy grid with targets, obstacles, start & goal
//	• Path finding: A* with the Manhattan heuristic and deterministic ties
//	• Obstacle motion: one random unit step per tick, clamp/wrap/stay edges
//	• Navigation: reactive or static-plan controllers, plus a raster sweep
//	• Scenarios: seeded random layouts, optionally guaranteed solvable
//
// ✨ Why choose gridnav?
//
//   - Deterministic: every random choice flows from an explicit seed
//   - Explicit errors: sentinel errors, checked with errors.Is
//   - Observable: structured log/slog events for every status change
//
// Packages:
//
//	gridgraph/   Cell, CellSet, Model, ASCII Parse/String, reachability
//	astar/       FindPath on a Model
//	obstacle/    Mover: one obstacle step per tick
//	navigator/   Navigator, Sweep, PositionFeed and the Run loop
//	scenario/    Random layouts
//	cmd/gridnav  terminal simulation
//
// Quick ASCII example (S start, G goal, # obstacle, T target):
//
//	S..
//	.#T
//	..G
//
// Targets block the A* navigator and are visitable for the sweep.
//
//	go run github.com/katalvlaran/gridnav/cmd/gridnav -size 10 -mode reactive
package gridnav
