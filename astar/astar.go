// SPDX-License-Identifier: MIT

package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// FindPath runs A* on m from start to goal.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilModel).
//  2. start must be in bounds (ErrStartBounds).
//  3. goal must be in bounds (ErrGoalBounds).
//
// start == goal yields Path=[start], Cost=0 after a single expansion.
// An unreachable goal yields Found=false and a nil error.
func FindPath(m *gridgraph.Model, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if m == nil {
		return Result{}, ErrNilModel
	}
	if !m.InBounds(start) {
		return Result{}, fmt.Errorf("%w: %v", ErrStartBounds, start)
	}
	if !m.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: %v", ErrGoalBounds, goal)
	}

	r := newRunner(m, start, goal, cfg)
	r.init()

	return r.process(), nil
}

// runner holds the mutable search state of a single FindPath call.
// Cells are addressed by their row-major index.
type runner struct {
	m       *gridgraph.Model
	start   gridgraph.Cell
	goal    gridgraph.Cell
	opts    Options
	cost    []int  // best known g per cell, -1 = undiscovered
	prev    []int  // predecessor index, -1 = none
	closed  []bool // expanded cells
	pq      nodePQ
	seq     uint64 // discovery counter for FIFO tie-breaking
	scratch []gridgraph.Cell
}

func newRunner(m *gridgraph.Model, start, goal gridgraph.Cell, opts Options) *runner {
	n := m.Size() * m.Size()
	r := &runner{
		m:       m,
		start:   start,
		goal:    goal,
		opts:    opts,
		cost:    make([]int, n),
		prev:    make([]int, n),
		closed:  make([]bool, n),
		pq:      make(nodePQ, 0, 4*m.Size()),
		scratch: make([]gridgraph.Cell, 0, len(gridgraph.Directions)),
	}
	for i := range r.cost {
		r.cost[i] = -1
		r.prev[i] = -1
	}

	return r
}

// init seeds the frontier with start at g=0.
func (r *runner) init() {
	si := r.m.Index(r.start)
	r.cost[si] = 0
	heap.Init(&r.pq)
	r.push(si, 0, Heuristic(r.start, r.goal))
}

func (r *runner) push(idx, g, f int) {
	heap.Push(&r.pq, &nodeItem{idx: idx, g: g, f: f, seq: r.seq})
	r.seq++
}

// process pops cells in (f, seq) order until the goal is popped, the
// frontier empties, or the expansion cap is reached.
func (r *runner) process() Result {
	gi := r.m.Index(r.goal)
	expanded := 0
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		// Stale entry superseded by a cheaper push.
		if r.closed[item.idx] || item.g > r.cost[item.idx] {
			continue
		}
		if r.opts.MaxExpansions > 0 && expanded >= r.opts.MaxExpansions {
			return Result{Expanded: expanded, Truncated: true}
		}
		r.closed[item.idx] = true
		expanded++

		cur := r.m.Coordinate(item.idx)
		if r.opts.OnExpand != nil {
			r.opts.OnExpand(cur)
		}
		if item.idx == gi {
			path := r.reconstruct(gi)
			return Result{Path: path, Found: true, Cost: len(path) - 1, Expanded: expanded}
		}
		r.relax(cur, item.g)
	}

	return Result{Expanded: expanded}
}

// relax pushes every unblocked neighbor of cur whose cost improves.
func (r *runner) relax(cur gridgraph.Cell, g int) {
	ci := r.m.Index(cur)
	r.scratch = r.m.Neighbors(r.scratch[:0], cur)
	for _, nb := range r.scratch {
		ni := r.m.Index(nb)
		if r.closed[ni] {
			continue
		}
		ng := g + 1
		// Strictly better only; equal-cost rediscovery keeps the earlier parent.
		if old := r.cost[ni]; old >= 0 && ng >= old {
			continue
		}
		r.cost[ni] = ng
		r.prev[ni] = ci
		r.push(ni, ng, ng+Heuristic(nb, r.goal))
	}
}

// reconstruct walks prev from the goal back to start and reverses the result.
func (r *runner) reconstruct(gi int) []gridgraph.Cell {
	si := r.m.Index(r.start)
	path := make([]gridgraph.Cell, 0, r.cost[gi]+1)
	for cur := gi; ; cur = r.prev[cur] {
		path = append(path, r.m.Coordinate(cur))
		if cur == si || r.prev[cur] < 0 {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is a frontier entry. seq records discovery order.
type nodeItem struct {
	idx int
	g   int
	f   int
	seq uint64
}

// nodePQ is a min-heap of *nodeItem ordered by f, then by seq (FIFO among
// equal f). Superseded entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
