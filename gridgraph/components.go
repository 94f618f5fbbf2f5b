// SPDX-License-Identifier: MIT

package gridgraph

// Reachable returns every cell 4-connected to from through unblocked cells,
// in BFS discovery order. from itself is always the first element when it
// is in bounds, even if blocked; an out-of-bounds from yields nil.
//
// Time:   O(N²·4).
// Memory: O(N²) for visited flags and the queue.
func (m *Model) Reachable(from Cell) []Cell {
	if !m.InBounds(from) {
		return nil
	}
	seen := make([]bool, m.size*m.size)
	queue := []int{m.Index(from)}
	seen[queue[0]] = true

	for qi := 0; qi < len(queue); qi++ {
		u := m.Coordinate(queue[qi])
		for _, d := range Directions {
			v := u.Add(d)
			if !m.InBounds(v) || m.IsBlocked(v) {
				continue
			}
			vi := m.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	out := make([]Cell, len(queue))
	for i, idx := range queue {
		out[i] = m.Coordinate(idx)
	}
	return out
}

// Connected reports whether b can be reached from a through unblocked cells.
func (m *Model) Connected(a, b Cell) bool {
	if !m.InBounds(b) {
		return false
	}
	for _, c := range m.Reachable(a) {
		if c == b {
			return true
		}
	}
	return false
}
