//go:build ebiten

package app

import (
	"image/color"
	"log"

	"lifeboard/internal/core"
	"lifeboard/internal/render"
	"lifeboard/internal/sim"
	"lifeboard/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sim.Session to the ebiten.Game interface.
type Game struct {
	session *sim.Session
	layout  ui.Layout
	painter *render.GridPainter
	menu    *ui.Menu
	timer   *core.FixedStep
}

// New constructs a Game for the provided session.
func New(session *sim.Session, cfg *Config) *Game {
	size := session.Engine().Size()
	layout := ui.NewLayout(cfg.WindowSize, size.W, size.H)
	return &Game{
		session: session,
		layout:  layout,
		painter: render.NewGridPainter(size.W, size.H),
		menu:    ui.NewMenu(layout),
		timer:   core.NewFixedStep(cfg.Interval),
	}
}

// WindowSize returns the window dimensions in pixels.
func (g *Game) WindowSize() (int, int) { return g.layout.Window.X, g.layout.Window.Y }

func (g *Game) start() {
	if g.session.Running() {
		return
	}
	g.session.Start()
	g.timer.Rearm()
}

// Update handles input and advances the run at the configured interval.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		wasRunning := g.session.Running()
		action, err := HandleClick(g.session, g.layout, mx, my)
		if err != nil {
			log.Printf("toggle at (%d,%d): %v", mx, my, err)
		}
		if action == ui.ActionGo && !wasRunning {
			g.timer.Rearm()
		}
	}
	pressed := ui.ActionNone
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		pressed = g.layout.Hit(mx, my)
	}
	g.menu.SetPressed(pressed)

	if g.session.Running() && g.timer.ShouldStep() {
		g.session.Advance()
	}
	g.menu.SetStatus(g.session.Status())
	return nil
}

// Draw renders the menu strip and the board.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	b := g.layout.Board
	g.painter.Blit(screen, g.session.Engine().Cells(), b.Min.X, b.Min.Y, g.layout.CellW, g.layout.CellH)
	g.menu.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Window.X, g.layout.Window.Y
}
