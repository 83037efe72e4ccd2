// Package sim drives a life.Engine through a bounded run: a GO action starts
// stepping, each tick advances one epoch, and the run ends when the engine
// reports a terminal state.
package sim

import (
	"fmt"

	"lifeboard/internal/core"
	"lifeboard/internal/life"
)

// Status messages shown to the user.
const (
	StatusWelcome  = "WELCOME"
	StatusFinished = "Simulation finished!"
	StatusAllDead  = "All cells are dead"
)

// Outcome describes how the last run ended.
type Outcome int

const (
	// OutcomeNone means no run has finished since the last reset.
	OutcomeNone Outcome = iota
	// OutcomeEpochs means the epoch limit was reached.
	OutcomeEpochs
	// OutcomeExtinct means every cell died before the limit.
	OutcomeExtinct
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEpochs:
		return "epochs"
	case OutcomeExtinct:
		return "extinct"
	default:
		return "none"
	}
}

// Frame is an immutable view of the session handed to renderers.
type Frame struct {
	Size       core.Size
	Cells      []uint8
	Generation int
	Epochs     int
	Population int
	Status     string
	Running    bool
}

// Alive reports whether (x, y) is alive in the frame.
func (f Frame) Alive(x, y int) bool {
	if x < 0 || y < 0 || x >= f.Size.W || y >= f.Size.H {
		return false
	}
	return f.Cells[y*f.Size.W+x] != 0
}

// Session wraps an engine with the run state a user interface needs.
type Session struct {
	engine        *life.Engine
	resetOnFinish bool

	running     bool
	status      string
	outcome     Outcome
	generations int
}

// NewSession creates a session around engine. When resetOnFinish is set the
// board is cleared once a run ends.
func NewSession(engine *life.Engine, resetOnFinish bool) *Session {
	return &Session{engine: engine, resetOnFinish: resetOnFinish, status: StatusWelcome}
}

// Engine exposes the wrapped engine.
func (s *Session) Engine() *life.Engine { return s.engine }

// Running reports whether a run is in progress.
func (s *Session) Running() bool { return s.running }

// Status returns the current status line.
func (s *Session) Status() string { return s.status }

// Outcome returns how the most recent run ended.
func (s *Session) Outcome() Outcome { return s.outcome }

// Generations returns the number of steps taken by the most recent run. It
// survives the reset that follows a finished run.
func (s *Session) Generations() int { return s.generations }

// Start begins a run. It is a no-op while a run is already in progress. A
// board left over from a finished run starts again from generation 0 with
// whatever cells it currently holds.
func (s *Session) Start() {
	if s.running {
		return
	}
	if s.engine.IsTerminal() {
		s.engine.Rewind()
	}
	s.running = true
	s.outcome = OutcomeNone
	s.generations = 0
}

// Toggle flips a cell. Painting is allowed while a run is in progress.
func (s *Session) Toggle(x, y int) error {
	return s.engine.Toggle(x, y)
}

// Reset stops any run and clears the board.
func (s *Session) Reset() {
	s.running = false
	s.engine.Reset()
}

// Advance performs one tick of the run and reports whether a step was taken.
// When the engine is terminal the run is finished instead.
func (s *Session) Advance() bool {
	if !s.running {
		return false
	}
	if !s.engine.IsTerminal() {
		s.status = fmt.Sprintf("Epoch n°%d/%d", s.engine.Generation()+1, s.engine.Epochs())
		s.engine.Step()
		s.generations = s.engine.Generation()
		return true
	}
	s.finish()
	return false
}

func (s *Session) finish() {
	s.running = false
	s.status = StatusFinished
	s.outcome = OutcomeEpochs
	if s.engine.AllDead() {
		s.status = StatusAllDead + "\n" + StatusFinished
		s.outcome = OutcomeExtinct
	}
	if s.resetOnFinish {
		s.engine.Reset()
	}
}

// Frame captures the current board and status.
func (s *Session) Frame() Frame {
	return Frame{
		Size:       s.engine.Size(),
		Cells:      s.engine.Snapshot(),
		Generation: s.engine.Generation(),
		Epochs:     s.engine.Epochs(),
		Population: s.engine.Population(),
		Status:     s.status,
		Running:    s.running,
	}
}
