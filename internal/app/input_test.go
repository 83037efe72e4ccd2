package app

import (
	"errors"
	"testing"

	"lifeboard/internal/life"
	"lifeboard/internal/sim"
	"lifeboard/internal/ui"
)

func TestHandleClick(t *testing.T) {
	e := life.New(20, 20, 5)
	s := sim.NewSession(e, false)
	l := ui.NewLayout(600, 20, 20)

	cell := l.CellRect(4, 7)
	action, err := HandleClick(s, l, cell.Min.X+1, cell.Min.Y+1)
	if err != nil || action != ui.ActionNone {
		t.Fatalf("board click: action=%v err=%v", action, err)
	}
	if !e.Alive(4, 7) {
		t.Fatal("board click must toggle the cell under the pointer")
	}

	action, _ = HandleClick(s, l, l.GoButton.Min.X+1, l.GoButton.Min.Y+1)
	if action != ui.ActionGo || !s.Running() {
		t.Fatal("GO click must start the run")
	}

	action, _ = HandleClick(s, l, l.ResetButton.Min.X+1, l.ResetButton.Min.Y+1)
	if action != ui.ActionReset || s.Running() || e.Population() != 0 {
		t.Fatal("RESET click must stop the run and clear the board")
	}

	// Menu background outside the buttons does nothing.
	action, err = HandleClick(s, l, l.StatusArea.Min.X+5, 5)
	if err != nil || action != ui.ActionNone || e.Population() != 0 {
		t.Fatal("clicking the status area must be ignored")
	}
}

func TestHandleClickBoardLargerThanEngine(t *testing.T) {
	e := life.New(5, 5, 5)
	s := sim.NewSession(e, false)
	l := ui.NewLayout(600, 10, 10)

	cell := l.CellRect(8, 8)
	_, err := HandleClick(s, l, cell.Min.X, cell.Min.Y)
	if !errors.Is(err, life.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}
