// Package ui holds the window geometry shared by the desktop front end: a
// menu strip with GO and RESET buttons above a board of square-ish cells.
package ui

import "image"

// Action is what a click on the menu strip asks for.
type Action int

const (
	ActionNone Action = iota
	ActionGo
	ActionReset
)

const (
	// MenuHeight is the height of the strip above the board.
	MenuHeight = 60

	buttonTop      = 10
	buttonHeight   = 40
	goButtonX      = 10
	goButtonWidth  = 48
	resetWidth     = 70
	resetFromRight = 80
)

// Layout maps between window pixels and board cells.
type Layout struct {
	Window      image.Point
	Cols, Rows  int
	CellW       int
	CellH       int
	Board       image.Rectangle
	GoButton    image.Rectangle
	ResetButton image.Rectangle
	StatusArea  image.Rectangle
}

// NewLayout computes the geometry of a square window of windowSize pixels
// showing a cols x rows board below the menu strip.
func NewLayout(windowSize, cols, rows int) Layout {
	cols = max(cols, 1)
	rows = max(rows, 1)
	cellW := max(windowSize/cols, 1)
	cellH := max((windowSize-MenuHeight)/rows, 1)

	l := Layout{
		Cols:  cols,
		Rows:  rows,
		CellW: cellW,
		CellH: cellH,
		Board: image.Rect(0, MenuHeight, cols*cellW, MenuHeight+rows*cellH),
	}
	l.Window = image.Pt(max(windowSize, l.Board.Max.X), max(windowSize, l.Board.Max.Y))
	l.GoButton = image.Rect(goButtonX, buttonTop, goButtonX+goButtonWidth, buttonTop+buttonHeight)
	resetX := max(l.Window.X-resetFromRight, l.GoButton.Max.X+1)
	l.ResetButton = image.Rect(resetX, buttonTop, resetX+resetWidth, buttonTop+buttonHeight)
	l.StatusArea = image.Rect(l.GoButton.Max.X, 0, l.ResetButton.Min.X, MenuHeight)
	return l
}

// CellAt returns the board cell under window pixel (px, py).
func (l Layout) CellAt(px, py int) (int, int, bool) {
	if !image.Pt(px, py).In(l.Board) {
		return 0, 0, false
	}
	return (px - l.Board.Min.X) / l.CellW, (py - l.Board.Min.Y) / l.CellH, true
}

// CellRect returns the pixel rectangle covered by cell (x, y).
func (l Layout) CellRect(x, y int) image.Rectangle {
	x0 := l.Board.Min.X + x*l.CellW
	y0 := l.Board.Min.Y + y*l.CellH
	return image.Rect(x0, y0, x0+l.CellW, y0+l.CellH)
}

// Hit reports which menu button lies under window pixel (px, py).
func (l Layout) Hit(px, py int) Action {
	p := image.Pt(px, py)
	switch {
	case p.In(l.GoButton):
		return ActionGo
	case p.In(l.ResetButton):
		return ActionReset
	default:
		return ActionNone
	}
}
