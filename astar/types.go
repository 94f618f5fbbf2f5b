// SPDX-License-Identifier: MIT

package astar

import (
	"errors"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilModel indicates that a nil *gridgraph.Model was passed.
	ErrNilModel = errors.New("astar: model is nil")

	// ErrStartBounds indicates that the start cell is outside the grid.
	ErrStartBounds = errors.New("astar: start out of bounds")

	// ErrGoalBounds indicates that the goal cell is outside the grid.
	ErrGoalBounds = errors.New("astar: goal out of bounds")
)

// Result is the outcome of one FindPath call.
type Result struct {
	// Path lists the cells from start to goal inclusive; nil unless Found.
	Path []gridgraph.Cell
	// Found is false when the goal could not be reached.
	Found bool
	// Cost is len(Path)-1 when Found.
	Cost int
	// Expanded counts cells popped and expanded (closed) by the search.
	Expanded int
	// Truncated is true when the search stopped at Options.MaxExpansions.
	Truncated bool
}

// Options configures FindPath.
//
// MaxExpansions – cap on expanded cells; 0 means unlimited. A capped search
// that has not reached the goal reports Found=false, Truncated=true.
// OnExpand      – optional hook called with each expanded cell, in order.
type Options struct {
	MaxExpansions int
	OnExpand      func(gridgraph.Cell)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns unlimited expansions and no hook.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxExpansions bounds the number of expanded cells.
// Panics if n < 0.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic("astar: WithMaxExpansions(n < 0)")
	}
	return func(o *Options) { o.MaxExpansions = n }
}

// WithOnExpand registers a hook observing every expanded cell.
// Panics on nil.
func WithOnExpand(fn func(gridgraph.Cell)) Option {
	if fn == nil {
		panic("astar: WithOnExpand(nil)")
	}
	return func(o *Options) { o.OnExpand = fn }
}

// Heuristic is the Manhattan distance between a and b.
func Heuristic(a, b gridgraph.Cell) int {
	return gridgraph.Manhattan(a, b)
}
