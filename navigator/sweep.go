// SPDX-License-Identifier: MIT

package navigator

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Sweep is the raster controller: the agent visits cells in row-major order
// from the start cell and finishes on (N-1, N-1). Obstacles are neither
// avoided nor moved; targets entered are recorded as visited.
type Sweep struct {
	model  *gridgraph.Model
	logger *slog.Logger

	runID   uuid.UUID
	tick    int
	pos     gridgraph.Cell
	visited gridgraph.CellSet
	status  Status
}

// NewSweep builds a Sweep over m, which must use TargetsVisitable.
// Only WithLogger is meaningful here; other options are ignored.
func NewSweep(m *gridgraph.Model, opts ...Option) (*Sweep, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	sw := &Sweep{logger: s.logger}
	if err := sw.Reset(m); err != nil {
		return nil, err
	}

	return sw, nil
}

// Reset replaces the model and restarts the sweep from its start cell.
// On error the Sweep is left unchanged.
func (sw *Sweep) Reset(m *gridgraph.Model) error {
	if m == nil {
		return ErrNilModel
	}
	if m.Policy() != gridgraph.TargetsVisitable {
		return fmt.Errorf("%w: got %v", ErrTargetPolicy, m.Policy())
	}
	sw.model = m
	sw.runID = uuid.New()
	sw.tick = 0
	sw.pos = m.Start()
	sw.visited = gridgraph.NewCellSet(m.Size())
	sw.status = Navigating
	sw.visit(sw.pos)

	return nil
}

// ResetAt restarts the sweep from c. c must be in bounds and free of
// obstacles and targets.
func (sw *Sweep) ResetAt(c gridgraph.Cell) error {
	m, err := sw.model.WithStart(c)
	if err != nil {
		return err
	}
	return sw.Reset(m)
}

// Tick advances one cell in row-major order and reports whether the status
// changed. Reaching the last cell is detected at the start of the following
// tick, as for Navigator.
func (sw *Sweep) Tick() (Snapshot, bool) {
	if sw.status == GoalReached {
		return sw.Snapshot(), false
	}
	sw.tick++
	last := sw.model.Size()*sw.model.Size() - 1
	idx := sw.model.Index(sw.pos)
	if idx >= last {
		sw.status = GoalReached
		sw.logger.Info("sweep complete",
			slog.String("run_id", sw.runID.String()),
			slog.Int("tick", sw.tick),
			slog.Int("visited", sw.visited.Len()))
		return sw.Snapshot(), true
	}
	sw.pos = sw.model.Coordinate(idx + 1)
	sw.visit(sw.pos)

	return sw.Snapshot(), false
}

func (sw *Sweep) visit(c gridgraph.Cell) {
	if sw.model.IsTarget(c) && !sw.visited.Has(c) {
		sw.visited.Add(c)
		sw.logger.Debug("target visited", slog.String("cell", c.String()))
	}
}

// Snapshot returns the current state. Path is always nil for a sweep.
func (sw *Sweep) Snapshot() Snapshot {
	return Snapshot{
		RunID:     sw.runID,
		Tick:      sw.tick,
		Grid:      sw.model,
		Agent:     sw.pos,
		StepIndex: sw.model.Index(sw.pos),
		Visited:   sw.visited.Cells(),
		Status:    sw.status,
	}
}
