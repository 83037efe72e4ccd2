package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"lifeboard/internal/core"
	"lifeboard/internal/sim"
)

// Terminal layout: status on row 0, key help on row 1, board from row 2.
const (
	termBoardTop  = 2
	termCellWidth = 2
	termHelp      = "click: toggle  g/enter: go  r: reset  q/esc: quit"
)

var (
	termAliveStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	termDeadStyle   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	termStatusStyle = tcell.StyleDefault.Bold(true)
	termHelpStyle   = tcell.StyleDefault.Dim(true)
)

// ScreenRenderer draws frames onto a tcell screen, two columns per cell.
type ScreenRenderer struct {
	screen tcell.Screen
	size   core.Size
}

// NewScreenRenderer returns a renderer for an initialised screen.
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Render clears the screen and draws the status lines and the board. tcell
// reports no drawing errors, so it always returns nil.
func (r *ScreenRenderer) Render(f sim.Frame) error {
	r.size = f.Size
	r.screen.Clear()

	status := fmt.Sprintf("%s | Gen %d/%d | Living %d",
		strings.ReplaceAll(f.Status, "\n", " - "), f.Generation, f.Epochs, f.Population)
	r.drawText(0, 0, status, termStatusStyle)
	r.drawText(0, 1, termHelp, termHelpStyle)

	for y := 0; y < f.Size.H; y++ {
		for x := 0; x < f.Size.W; x++ {
			style := termDeadStyle
			if f.Alive(x, y) {
				style = termAliveStyle
			}
			col := x * termCellWidth
			row := termBoardTop + y
			for i := 0; i < termCellWidth; i++ {
				r.screen.SetContent(col+i, row, ' ', nil, style)
			}
		}
	}
	r.screen.Show()
	return nil
}

// CellAt maps a screen position to a board cell of the last rendered frame.
func (r *ScreenRenderer) CellAt(col, row int) (int, int, bool) {
	if col < 0 || row < termBoardTop {
		return 0, 0, false
	}
	x := col / termCellWidth
	y := row - termBoardTop
	if x >= r.size.W || y >= r.size.H {
		return 0, 0, false
	}
	return x, y, true
}

// CheckScreenSize returns an error when the screen is too small for a board
// of size s. Cells past the screen edge could not be drawn or clicked.
func CheckScreenSize(screen tcell.Screen, s core.Size) error {
	needW, needH := MinScreenSize(s)
	w, h := screen.Size()
	if w < needW || h < needH {
		return errors.Errorf("terminal is %dx%d, a %dx%d board needs at least %dx%d",
			w, h, s.W, s.H, needW, needH)
	}
	return nil
}

// MinScreenSize returns the terminal size needed to show a board of size s.
func MinScreenSize(s core.Size) (int, int) {
	return max(s.W*termCellWidth, len(termHelp)), s.H + termBoardTop
}

func (r *ScreenRenderer) drawText(x, y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	for _, ch := range s {
		if x >= w {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
