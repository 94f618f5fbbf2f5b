// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"strings"
)

// ASCII symbols understood by Parse and produced by String.
const (
	SymbolFree     = '.'
	SymbolObstacle = '#'
	SymbolTarget   = 'T'
	SymbolStart    = 'S'
	SymbolGoal     = 'G'
)

// Parse reads a square grid such as
//
//	S..
//	.#T
//	..G
//
// Blank lines and surrounding whitespace are ignored. Exactly one S and one G
// are required. The returned Model is validated exactly like New.
func Parse(text string, policy TargetPolicy) (*Model, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrBadSize)
	}

	l := Layout{Size: n, Policy: policy}
	var haveStart, haveGoal bool
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadSize, r, len(row), n)
		}
		for c := 0; c < n; c++ {
			cell := Cell{Row: r, Col: c}
			switch row[c] {
			case SymbolFree:
			case SymbolObstacle:
				l.Obstacles = append(l.Obstacles, cell)
			case SymbolTarget:
				l.Targets = append(l.Targets, cell)
			case SymbolStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second start at %v", ErrMalformed, cell)
				}
				haveStart, l.Start = true, cell
			case SymbolGoal:
				if haveGoal {
					return nil, fmt.Errorf("%w: second goal at %v", ErrMalformed, cell)
				}
				haveGoal, l.Goal = true, cell
			default:
				return nil, fmt.Errorf("%w: unknown symbol %q at %v", ErrMalformed, row[c], cell)
			}
		}
	}
	if !haveStart || !haveGoal {
		return nil, fmt.Errorf("%w: start and goal are both required", ErrMalformed)
	}

	return New(l)
}

// String renders the model with the Parse symbols, one row per line.
// When start and goal coincide the cell is shown as the goal.
func (m *Model) String() string {
	var b strings.Builder
	b.Grow(m.size * (m.size + 1))
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			b.WriteByte(m.symbol(Cell{Row: r, Col: c}))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *Model) symbol(c Cell) byte {
	switch {
	case c == m.goal:
		return SymbolGoal
	case c == m.start:
		return SymbolStart
	case m.obstacles.Has(c):
		return SymbolObstacle
	case m.targets.Has(c):
		return SymbolTarget
	default:
		return SymbolFree
	}
}
