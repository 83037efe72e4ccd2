// Package life implements Conway's Game of Life (B3/S23) on a bounded grid.
package life

import (
	"lifeboard/internal/core"
)

const (
	// Dead is the value of an empty cell.
	Dead uint8 = 0
	// Alive is the value of a live cell.
	Alive uint8 = 1
)

// Engine owns a fixed-size grid and advances it one generation at a time.
// Edges are clamped: cells outside the grid never count as neighbors.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid

	generation int
	epochs     int
	allDead    bool
}

// New returns an empty Engine with the given dimensions and epoch limit.
func New(w, h, epochs int) *Engine {
	if epochs < 0 {
		epochs = 0
	}
	cur := core.NewByteGrid(w, h)
	return &Engine{cur: cur, nxt: core.NewByteGrid(cur.W, cur.H), epochs: epochs}
}

// NewWithConfig returns an Engine configured from cfg.
func NewWithConfig(cfg Config) *Engine {
	return New(cfg.Width, cfg.Height, cfg.Epochs)
}

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.cur.Size() }

// Cells exposes the current grid in row-major order. Callers must not modify it.
func (e *Engine) Cells() []uint8 { return e.cur.Cells() }

// Snapshot returns a copy of the current grid.
func (e *Engine) Snapshot() []uint8 {
	return append([]uint8(nil), e.cur.Cells()...)
}

// Alive reports whether (x, y) holds a live cell. Out-of-range cells are dead.
func (e *Engine) Alive(x, y int) bool { return e.cur.At(x, y) == Alive }

// Generation returns the number of completed steps since the last reset.
func (e *Engine) Generation() int { return e.generation }

// Epochs returns the configured epoch limit.
func (e *Engine) Epochs() int { return e.epochs }

// AllDead reports whether a step produced an empty grid.
func (e *Engine) AllDead() bool { return e.allDead }

// Population returns the number of live cells.
func (e *Engine) Population() int { return e.cur.Count() }

// Toggle flips the state of cell (x, y).
func (e *Engine) Toggle(x, y int) error {
	if !e.cur.InBounds(x, y) {
		return outOfBounds("Toggle", x, y, e.cur.W, e.cur.H)
	}
	idx := e.cur.Index(x, y)
	e.cur.Cells()[idx] ^= Alive
	return nil
}

// Step advances the grid by one generation and reports whether any cell was
// alive before the step. The next state is computed into a separate buffer so
// no cell observes a value updated in the same step.
func (e *Engine) Step() bool {
	w, h := e.cur.W, e.cur.H
	prev := e.cur.Cells()
	next := e.nxt.Cells()
	anyAlive := false
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			alive := prev[idx] == Alive
			if alive {
				anyAlive = true
			}
			next[idx] = Dead
			if nextState(alive, e.cur.Neighbors(x, y)) {
				next[idx] = Alive
			}
		}
	}
	e.cur, e.nxt = e.nxt, e.cur

	if e.generation < e.epochs {
		e.generation++
	}
	if !e.cur.Any() {
		e.allDead = true
	}
	return anyAlive
}

// Reset clears the grid, the generation counter and the termination flag.
func (e *Engine) Reset() {
	e.cur.Clear()
	e.nxt.Clear()
	e.generation = 0
	e.allDead = false
}

// Rewind clears the generation counter and the termination flag but keeps
// the cells, so a finished board can be run again from where it stopped.
func (e *Engine) Rewind() {
	e.generation = 0
	e.allDead = false
}

// IsTerminal reports whether the epoch limit was reached or the grid died out.
func (e *Engine) IsTerminal() bool {
	return e.generation >= e.epochs || e.allDead
}

// Randomize fills the grid using a deterministic seed. Each cell is alive
// with probability density. Counters are left untouched.
func (e *Engine) Randomize(seed int64, density float64) {
	core.NewRNG(seed).FillBinary(e.cur.Cells(), density)
}

// nextState applies B3/S23 to a single cell.
func nextState(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
