// SPDX-License-Identifier: MIT

package navigator

import (
	"sync/atomic"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// PositionFeed carries the most recent live position of the agent from any
// number of producers to one consumer. Only the latest sample is kept.
// The zero value is ready to use.
type PositionFeed struct {
	latest atomic.Pointer[sample]
}

type sample struct {
	cell    gridgraph.Cell
	version uint64
}

// Publish stores c as the latest position and returns its version.
// Versions start at 1 and increase by one per Publish.
func (f *PositionFeed) Publish(c gridgraph.Cell) uint64 {
	for {
		old := f.latest.Load()
		var v uint64 = 1
		if old != nil {
			v = old.version + 1
		}
		if f.latest.CompareAndSwap(old, &sample{cell: c, version: v}) {
			return v
		}
	}
}

// Latest returns the most recent position and its version; ok is false
// until the first Publish.
func (f *PositionFeed) Latest() (c gridgraph.Cell, version uint64, ok bool) {
	s := f.latest.Load()
	if s == nil {
		return gridgraph.Cell{}, 0, false
	}
	return s.cell, s.version, true
}
