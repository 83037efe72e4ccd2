package life

import (
	"errors"
	"slices"
	"testing"
)

func liveSet(e *Engine) map[[2]int]bool {
	out := map[[2]int]bool{}
	size := e.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if e.Alive(x, y) {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func expectLive(t *testing.T, e *Engine, want ...[2]int) {
	t.Helper()
	got := liveSet(e)
	if len(got) != len(want) {
		t.Fatalf("expected %d live cells, got %d: %v", len(want), len(got), got)
	}
	for _, p := range want {
		if !got[p] {
			t.Fatalf("cell (%d,%d) should be alive, live cells: %v", p[0], p[1], got)
		}
	}
}

func mustToggle(t *testing.T, e *Engine, pts ...[2]int) {
	t.Helper()
	for _, p := range pts {
		if err := e.Toggle(p[0], p[1]); err != nil {
			t.Fatalf("toggle (%d,%d): %v", p[0], p[1], err)
		}
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	e := New(6, 4, 10)
	if e.Step() {
		t.Fatal("Step on an empty grid must report no prior life")
	}
	expectLive(t, e)
}

func TestLoneCellDies(t *testing.T) {
	e := New(5, 5, 10)
	mustToggle(t, e, [2]int{2, 2})

	if !e.Step() {
		t.Fatal("Step must report the prior grid had life")
	}
	expectLive(t, e)
	if !e.AllDead() || !e.IsTerminal() {
		t.Fatal("an emptied grid must set the termination flag")
	}
}

func TestBlockIsStillLife(t *testing.T) {
	e := New(4, 4, 10)
	mustToggle(t, e, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})
	before := e.Snapshot()

	for i := 0; i < 3; i++ {
		e.Step()
		if !slices.Equal(before, e.Cells()) {
			t.Fatalf("block changed after step %d", i+1)
		}
	}
}

func TestBlinkerOnThreeByThree(t *testing.T) {
	e := New(3, 3, 10)
	mustToggle(t, e, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})

	e.Step()
	expectLive(t, e, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1})
}

func TestBlinkerOscillation(t *testing.T) {
	e := New(5, 5, 10)
	mustToggle(t, e, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	start := e.Snapshot()

	e.Step()
	expectLive(t, e, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	e.Step()
	if !slices.Equal(start, e.Cells()) {
		t.Fatal("blinker must return to its starting phase after two steps")
	}
}

func TestEdgesDoNotWrap(t *testing.T) {
	// Horizontal blinker along the top edge. On a torus the cells on the
	// bottom row would be born; on a bounded board only the column survives
	// clipped at the top.
	e := New(5, 5, 10)
	mustToggle(t, e, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0})

	e.Step()
	expectLive(t, e, [2]int{2, 0}, [2]int{2, 1})
}

func TestToggleIsInvolution(t *testing.T) {
	e := New(3, 2, 1)
	before := e.Snapshot()
	mustToggle(t, e, [2]int{2, 1})
	if !e.Alive(2, 1) {
		t.Fatal("first toggle must set the cell alive")
	}
	mustToggle(t, e, [2]int{2, 1})
	if !slices.Equal(before, e.Cells()) {
		t.Fatal("toggling twice must restore the grid")
	}
}

func TestToggleOutOfBounds(t *testing.T) {
	e := New(3, 3, 1)
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, 3}, {0, -1}} {
		err := e.Toggle(p[0], p[1])
		if err == nil {
			t.Fatalf("toggle (%d,%d) should fail", p[0], p[1])
		}
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds, got %v", err)
		}
	}
	expectLive(t, e)
}

func TestCellsStayBinary(t *testing.T) {
	e := New(8, 8, 50)
	e.Randomize(3, 0.4)
	for i := 0; i < 20; i++ {
		e.Step()
		for _, c := range e.Cells() {
			if c != Dead && c != Alive {
				t.Fatalf("cell value %d is not binary", c)
			}
		}
	}
}

func TestGenerationCappedAtEpochs(t *testing.T) {
	e := New(4, 4, 3)
	mustToggle(t, e, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})

	for i := 1; i <= 3; i++ {
		if e.IsTerminal() {
			t.Fatalf("terminal too early at generation %d", e.Generation())
		}
		e.Step()
		if e.Generation() != i {
			t.Fatalf("expected generation %d, got %d", i, e.Generation())
		}
	}
	if !e.IsTerminal() {
		t.Fatal("expected terminal after reaching the epoch limit")
	}
	e.Step()
	if e.Generation() != 3 {
		t.Fatalf("generation must not exceed the epoch limit, got %d", e.Generation())
	}
}

func TestResetClearsState(t *testing.T) {
	e := New(4, 4, 5)
	mustToggle(t, e, [2]int{0, 0})
	e.Step()
	if !e.IsTerminal() {
		t.Fatal("lone cell should end the run")
	}

	e.Reset()
	if e.IsTerminal() {
		t.Fatal("Reset must clear terminal state")
	}
	if e.Generation() != 0 || e.AllDead() || e.Population() != 0 {
		t.Fatalf("Reset left state behind: gen=%d allDead=%v pop=%d", e.Generation(), e.AllDead(), e.Population())
	}
}

func TestZeroEpochsIsTerminalAfterReset(t *testing.T) {
	e := New(2, 2, 0)
	e.Reset()
	if !e.IsTerminal() {
		t.Fatal("epoch limit 0 must be terminal immediately")
	}
	if New(2, 2, -4).Epochs() != 0 {
		t.Fatal("negative epochs must clamp to 0")
	}
}

func TestRewindKeepsCells(t *testing.T) {
	e := New(5, 5, 2)
	_ = e.Toggle(2, 2)
	e.Step()
	if !e.AllDead() {
		t.Fatal("lone cell must leave an empty board")
	}
	for _, x := range []int{1, 2, 3} {
		_ = e.Toggle(x, 2)
	}
	e.Rewind()
	if e.IsTerminal() || e.Generation() != 0 || e.AllDead() {
		t.Fatalf("rewind must clear counters, gen=%d allDead=%v", e.Generation(), e.AllDead())
	}
	if e.Population() != 3 {
		t.Fatalf("rewind must keep cells, population %d", e.Population())
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	e := New(2, 2, 1)
	snap := e.Snapshot()
	snap[0] = Alive
	if e.Alive(0, 0) {
		t.Fatal("mutating a snapshot must not affect the engine")
	}
}
