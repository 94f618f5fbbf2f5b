// SPDX-License-Identifier: MIT

package obstacle

import "errors"

var (
	// ErrNeedRandSource indicates a moving policy without a *rand.Rand
	// (set WithSeed or WithRand).
	ErrNeedRandSource = errors.New("obstacle: rng is required")

	// ErrNilModel indicates Advance was called with a nil model.
	ErrNilModel = errors.New("obstacle: model is nil")
)
