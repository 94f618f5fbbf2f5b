// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"math/bits"
)

// Cell is a 0-indexed (Row, Col) grid coordinate.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the component-wise sum c + d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Cell) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Directions lists the 4-connected neighbor offsets in the fixed order
// up, down, left, right. Every traversal in this module uses this order,
// which keeps search output deterministic.
var Directions = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// TargetPolicy selects how target cells interact with movement.
type TargetPolicy int

const (
	// TargetsBlock makes targets impassable, like obstacles that never move.
	TargetsBlock TargetPolicy = iota
	// TargetsVisitable lets the agent enter target cells (raster sweep).
	TargetsVisitable
)

// String returns the policy name.
func (p TargetPolicy) String() string {
	switch p {
	case TargetsBlock:
		return "block"
	case TargetsVisitable:
		return "visitable"
	default:
		return fmt.Sprintf("TargetPolicy(%d)", int(p))
	}
}

// Layout is the construction input for New.
type Layout struct {
	Size      int   // N, the grid is N×N
	Start     Cell  // agent start
	Goal      Cell  // destination
	Obstacles []Cell
	Targets   []Cell
	Policy    TargetPolicy
}

// CellSet is a bitset of cells on an N×N grid, keyed by row-major index.
// The zero value is unusable; build one with NewCellSet.
type CellSet struct {
	size  int
	words []uint64
}

// NewCellSet returns an empty set for an N×N grid.
func NewCellSet(size int) CellSet {
	return CellSet{size: size, words: make([]uint64, (size*size+63)/64)}
}

func (s CellSet) index(c Cell) int { return c.Row*s.size + c.Col }

// Has reports membership. Out-of-bounds cells are never members.
func (s CellSet) Has(c Cell) bool {
	if c.Row < 0 || c.Col < 0 || c.Row >= s.size || c.Col >= s.size {
		return false
	}
	i := s.index(c)
	return s.words[i>>6]&(1<<(uint(i)&63)) != 0
}

// Add inserts c. The caller guarantees c is in bounds.
func (s CellSet) Add(c Cell) {
	i := s.index(c)
	s.words[i>>6] |= 1 << (uint(i) & 63)
}

// Remove deletes c if present.
func (s CellSet) Remove(c Cell) {
	if !s.Has(c) {
		return
	}
	i := s.index(c)
	s.words[i>>6] &^= 1 << (uint(i) & 63)
}

// Len returns the number of members.
func (s CellSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Cells returns the members in row-major order.
func (s CellSet) Cells() []Cell {
	out := make([]Cell, 0, s.Len())
	for wi, w := range s.words {
		for w != 0 {
			i := wi*64 + bits.TrailingZeros64(w)
			out = append(out, Cell{Row: i / s.size, Col: i % s.size})
			w &= w - 1
		}
	}
	return out
}

// Clone returns an independent copy.
func (s CellSet) Clone() CellSet {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return CellSet{size: s.size, words: words}
}
