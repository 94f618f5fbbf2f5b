// SPDX-License-Identifier: MIT
// Package: gridnav/scenario
//
// errors.go - sentinel errors for the scenario package.
//
// Callers branch with errors.Is. Context is attached with %w at the call
// site; option constructors are the only code that panics.

package scenario

import "errors"

// ErrTooFewCells indicates a size below 1, a negative count, or more
// targets and obstacles than free cells.
var ErrTooFewCells = errors.New("scenario: too few cells")

// ErrNeedRandSource indicates Random was called without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("scenario: rng is required")

// ErrConstructFailed indicates WithSolvable exhausted its attempts.
var ErrConstructFailed = errors.New("scenario: construction failed")
