// SPDX-License-Identifier: MIT

package navigator

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/obstacle"
)

// ErrInvalidConfiguration is gridgraph.ErrInvalidConfiguration; every
// construction or reset failure in this package matches it.
var ErrInvalidConfiguration = gridgraph.ErrInvalidConfiguration

var (
	// ErrNilModel indicates a nil model passed to a constructor or Reset.
	ErrNilModel = fmt.Errorf("%w: navigator: model is nil", ErrInvalidConfiguration)
	// ErrTargetPolicy indicates a model whose TargetPolicy does not match the
	// controller (Navigator needs TargetsBlock, Sweep needs TargetsVisitable).
	ErrTargetPolicy = fmt.Errorf("%w: navigator: target policy does not match controller", ErrInvalidConfiguration)
	// ErrBadSetting indicates an undefined mode, wrap policy or a negative expansion cap.
	ErrBadSetting = fmt.Errorf("%w: navigator: bad setting", ErrInvalidConfiguration)
)

// Status is the controller state.
type Status int

const (
	// Navigating: the agent is moving (or about to move) toward the goal.
	Navigating Status = iota
	// GoalReached is terminal: further ticks do nothing.
	GoalReached
	// Stuck: no path existed on the last tick. Not terminal.
	Stuck
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Navigating:
		return "navigating"
	case GoalReached:
		return "goal-reached"
	case Stuck:
		return "stuck"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Mode selects when Navigator replans.
type Mode int

const (
	// ModeReactive replans from the agent's cell on every tick.
	ModeReactive Mode = iota
	// ModeStaticPlan follows the held plan and replans only when its next
	// cell is blocked after the obstacle move, or no plan is held.
	ModeStaticPlan
)

// String returns the mode name used by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeReactive:
		return "reactive"
	case ModeStaticPlan:
		return "static"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "reactive" or "static" to a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeReactive, ModeStaticPlan} {
		if m.String() == s {
			return m, nil
		}
	}
	return ModeReactive, fmt.Errorf("%w: mode %q", ErrBadSetting, s)
}

// Snapshot is a read-only view of a controller after a tick. Grid is the
// immutable model in force; Path is a private copy.
type Snapshot struct {
	RunID     uuid.UUID
	Tick      int
	Grid      *gridgraph.Model
	Agent     gridgraph.Cell
	Path      []gridgraph.Cell // planned path from Path[0]; nil when none is held
	StepIndex int              // index of Agent within Path; raster index for Sweep
	Visited   []gridgraph.Cell // targets entered so far (Sweep only)
	Plans     int              // PathFinder invocations in this run
	Status    Status
}

// Remaining returns the part of Path from the agent's cell to the goal.
func (s Snapshot) Remaining() []gridgraph.Cell {
	if s.StepIndex >= len(s.Path) {
		return nil
	}
	return s.Path[s.StepIndex:]
}

// Config is the construction tuple of a Navigator.
type Config struct {
	Size          int
	Start, Goal   gridgraph.Cell
	Obstacles     []gridgraph.Cell
	Targets       []gridgraph.Cell
	Wrap          obstacle.WrapPolicy
	Seed          int64
	Mode          Mode
	MaxExpansions int // 0 = unlimited
}

type settings struct {
	mode          Mode
	wrap          obstacle.WrapPolicy
	rng           *rand.Rand
	maxExpansions int
	logger        *slog.Logger
}

func defaultSettings() settings {
	return settings{
		mode:   ModeReactive,
		wrap:   obstacle.Clamp,
		logger: slog.New(slog.DiscardHandler),
	}
}

// Option customizes a controller. Constructors panic on meaningless input.
type Option func(*settings)

// WithMode selects the planning mode (Navigator only).
func WithMode(m Mode) Option {
	if m != ModeReactive && m != ModeStaticPlan {
		panic(fmt.Sprintf("navigator: WithMode(%d)", int(m)))
	}
	return func(s *settings) { s.mode = m }
}

// WithWrap selects the obstacle edge policy (Navigator only).
func WithWrap(p obstacle.WrapPolicy) Option {
	if p < obstacle.Clamp || p > obstacle.Stay {
		panic(fmt.Sprintf("navigator: WithWrap(%d)", int(p)))
	}
	return func(s *settings) { s.wrap = p }
}

// WithSeed seeds the obstacle RNG.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the obstacle RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("navigator: WithRand(nil)")
	}
	return func(s *settings) { s.rng = r }
}

// WithMaxExpansions caps each search; 0 means unlimited. Panics if n < 0.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic("navigator: WithMaxExpansions(n < 0)")
	}
	return func(s *settings) { s.maxExpansions = n }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("navigator: WithLogger(nil)")
	}
	return func(s *settings) { s.logger = l }
}
