//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	menuBackground = color.RGBA{R: 236, G: 236, B: 236, A: 255}
	buttonFill     = color.RGBA{R: 214, G: 214, B: 218, A: 255}
	buttonPressed  = color.RGBA{R: 180, G: 180, B: 188, A: 255}
	buttonBorder   = color.RGBA{R: 120, G: 120, B: 128, A: 255}
	labelColor     = color.RGBA{R: 20, G: 20, B: 24, A: 255}
)

const statusLineHeight = 14

// Menu draws the strip above the board: GO and RESET buttons and the status
// text between them.
type Menu struct {
	layout Layout
	pixel  *ebiten.Image

	status  string
	pressed Action
}

// NewMenu constructs a Menu for the given layout.
func NewMenu(l Layout) *Menu {
	m := &Menu{layout: l}
	m.pixel = ebiten.NewImage(1, 1)
	m.pixel.Fill(color.White)
	return m
}

// SetStatus replaces the status text. Newlines start a new line.
func (m *Menu) SetStatus(s string) { m.status = s }

// SetPressed highlights the button for action a, or none for ActionNone.
func (m *Menu) SetPressed(a Action) { m.pressed = a }

// Draw paints the menu strip onto screen.
func (m *Menu) Draw(screen *ebiten.Image) {
	m.fill(screen, image.Rect(0, 0, m.layout.Window.X, MenuHeight), menuBackground)
	m.drawButton(screen, m.layout.GoButton, "GO", m.pressed == ActionGo)
	m.drawButton(screen, m.layout.ResetButton, "RESET", m.pressed == ActionReset)
	m.drawStatus(screen)
}

func (m *Menu) drawStatus(screen *ebiten.Image) {
	face := basicfont.Face7x13
	lines := strings.Split(m.status, "\n")
	area := m.layout.StatusArea
	top := area.Min.Y + (area.Dy()-len(lines)*statusLineHeight)/2 + statusLineHeight - 2
	for i, line := range lines {
		bounds := text.BoundString(face, line)
		x := area.Min.X + (area.Dx()-bounds.Dx())/2
		text.Draw(screen, line, face, x, top+i*statusLineHeight, labelColor)
	}
}

func (m *Menu) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, pressed bool) {
	fill := buttonFill
	if pressed {
		fill = buttonPressed
	}
	m.fill(screen, rect, buttonBorder)
	m.fill(screen, rect.Inset(1), fill)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, labelColor)
}

func (m *Menu) fill(dst *ebiten.Image, rect image.Rectangle, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(m.pixel, op)
}
