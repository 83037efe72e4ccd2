package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"lifeboard/internal/app"
	"lifeboard/internal/life"
	"lifeboard/internal/render"
	"lifeboard/internal/sim"
)

var errQuit = errors.New("quit")

func main() {
	cfg := app.NewConfig()
	cfg.Cells = 20
	var seed app.SeedOptions
	seed.Bind(flag.CommandLine)
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	engine := life.NewWithConfig(cfg.LifeConfig())
	if err := seed.Apply(engine); err != nil {
		log.Fatalf("seed: %v", err)
	}
	session := sim.NewSession(engine, cfg.ResetOnFinish)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()
	if err = render.CheckScreenSize(screen, engine.Size()); err != nil {
		fini()
		log.Fatalf("screen: %v", err)
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event)
	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		// Fini unblocks PollEvent so the input goroutine can exit.
		defer fini()
		return loop(ctx, screen, session, events, cfg.Interval)
	})

	err = g.Wait()
	fini()
	if err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("last run: %d generations, outcome %s", session.Generations(), session.Outcome())
}

// loop owns the session: every engine call happens on this goroutine.
func loop(ctx context.Context, screen tcell.Screen, session *sim.Session, events <-chan tcell.Event, interval time.Duration) error {
	renderer := render.NewScreenRenderer(screen)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c := &controller{session: session, renderer: renderer}
	if err := renderer.Render(session.Frame()); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if c.handle(ev) {
				return errQuit
			}
		case <-ticker.C:
			if !session.Running() {
				continue
			}
			session.Advance()
		}
		if err := renderer.Render(session.Frame()); err != nil {
			return err
		}
	}
}

type cellLocator interface {
	CellAt(col, row int) (int, int, bool)
}

// controller maps terminal input onto session actions.
type controller struct {
	session  *sim.Session
	renderer cellLocator
	held     bool
}

// handle applies ev and reports whether the user asked to quit.
func (c *controller) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyEnter:
			c.session.Start()
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'g':
				c.session.Start()
			case 'r':
				c.session.Reset()
			}
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !c.held {
			col, row := ev.Position()
			if x, y, ok := c.renderer.CellAt(col, row); ok {
				if err := c.session.Toggle(x, y); err != nil {
					log.Printf("toggle (%d,%d): %v", x, y, err)
				}
			}
		}
		c.held = pressed
	}
	return false
}
