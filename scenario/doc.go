// SPDX-License-Identifier: MIT

// Package scenario generates gridgraph layouts for simulations, demos and
// tests.
//
// Random places the start and goal (by default the top-left and
// bottom-right corners), then samples the requested number of targets and
// obstacles from the remaining cells, targets first. Sampling is driven by
// an explicit *rand.Rand (WithSeed or WithRand), so a seed reproduces a
// layout exactly.
//
// WithSolvable(k) retries up to k samples until the goal is reachable from
// the start under the chosen TargetPolicy; ErrConstructFailed reports that
// every attempt was walled off.
package scenario
