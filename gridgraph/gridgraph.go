// SPDX-License-Identifier: MIT

package gridgraph

import "fmt"

// Model is an immutable N×N occupancy grid. Obstacles and targets are stored
// as bitsets; start and goal are single cells.
type Model struct {
	size      int
	start     Cell
	goal      Cell
	obstacles CellSet
	targets   CellSet
	policy    TargetPolicy
}

// New validates l and builds a Model from it. The input slices are copied.
// Returns ErrBadSize if l.Size < 1, ErrOutOfBounds if any special cell lies
// outside the grid, ErrOverlap if special cells coincide (start == goal is
// the one allowed coincidence).
// Complexity: O(N²/64 + k) time and memory.
func New(l Layout) (*Model, error) {
	if l.Size < 1 {
		return nil, fmt.Errorf("%w: size=%d", ErrBadSize, l.Size)
	}
	m := &Model{
		size:      l.Size,
		start:     l.Start,
		goal:      l.Goal,
		obstacles: NewCellSet(l.Size),
		targets:   NewCellSet(l.Size),
		policy:    l.Policy,
	}
	if !m.InBounds(l.Start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, l.Start)
	}
	if !m.InBounds(l.Goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrOutOfBounds, l.Goal)
	}
	for _, c := range l.Targets {
		if err := m.claim(m.targets, c, "target"); err != nil {
			return nil, err
		}
	}
	for _, c := range l.Obstacles {
		if err := m.claim(m.obstacles, c, "obstacle"); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// claim adds c to set after checking bounds and disjointness against every
// cell already placed.
func (m *Model) claim(set CellSet, c Cell, kind string) error {
	if !m.InBounds(c) {
		return fmt.Errorf("%w: %s %v", ErrOutOfBounds, kind, c)
	}
	if c == m.start || c == m.goal || m.obstacles.Has(c) || m.targets.Has(c) {
		return fmt.Errorf("%w: %s %v", ErrOverlap, kind, c)
	}
	set.Add(c)

	return nil
}

// Size returns N.
func (m *Model) Size() int { return m.size }

// Start returns the start cell.
func (m *Model) Start() Cell { return m.start }

// Goal returns the goal cell.
func (m *Model) Goal() Cell { return m.goal }

// Policy returns how targets are treated.
func (m *Model) Policy() TargetPolicy { return m.policy }

// InBounds reports whether 0 ≤ row, col < N.
func (m *Model) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < m.size && c.Col >= 0 && c.Col < m.size
}

// IsObstacle reports whether c currently holds an obstacle.
func (m *Model) IsObstacle(c Cell) bool { return m.obstacles.Has(c) }

// IsTarget reports whether c is a target cell.
func (m *Model) IsTarget(c Cell) bool { return m.targets.Has(c) }

// IsBlocked reports whether c is an obstacle or, under TargetsBlock, a target.
func (m *Model) IsBlocked(c Cell) bool {
	if m.obstacles.Has(c) {
		return true
	}
	return m.policy == TargetsBlock && m.targets.Has(c)
}

// Obstacles returns the obstacle cells in row-major order.
func (m *Model) Obstacles() []Cell { return m.obstacles.Cells() }

// Targets returns the target cells in row-major order.
func (m *Model) Targets() []Cell { return m.targets.Cells() }

// ObstacleSet returns a private copy of the obstacle bitset.
func (m *Model) ObstacleSet() CellSet { return m.obstacles.Clone() }

// Neighbors appends to dst the in-bounds, unblocked 4-neighbors of c in
// Directions order and returns the extended slice.
func (m *Model) Neighbors(dst []Cell, c Cell) []Cell {
	for _, d := range Directions {
		n := c.Add(d)
		if m.InBounds(n) && !m.IsBlocked(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Index maps c to its row-major index Row*N + Col.
// Complexity: O(1).
func (m *Model) Index(c Cell) int {
	return c.Row*m.size + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (m *Model) Coordinate(idx int) Cell {
	return Cell{Row: idx / m.size, Col: idx % m.size}
}

// WithObstacles returns a copy of m whose obstacle set is replaced by cells.
// Targets, start, goal and policy are shared by value. The same validation
// as New applies, so an invalid relocation never produces a Model.
func (m *Model) WithObstacles(cells []Cell) (*Model, error) {
	next := &Model{
		size:      m.size,
		start:     m.start,
		goal:      m.goal,
		obstacles: NewCellSet(m.size),
		targets:   m.targets,
		policy:    m.policy,
	}
	for _, c := range cells {
		if err := next.claim(next.obstacles, c, "obstacle"); err != nil {
			return nil, err
		}
	}

	return next, nil
}

// WithStart returns a copy of m with the start cell moved to c.
// Fails with ErrOutOfBounds or ErrOverlap when c is outside the grid or is
// occupied by an obstacle or target.
func (m *Model) WithStart(c Cell) (*Model, error) {
	if !m.InBounds(c) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, c)
	}
	if m.obstacles.Has(c) || m.targets.Has(c) {
		return nil, fmt.Errorf("%w: start %v", ErrOverlap, c)
	}
	next := *m
	next.start = c

	return &next, nil
}
