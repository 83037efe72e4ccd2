//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifeboard/internal/app"
	"lifeboard/internal/life"
	"lifeboard/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	engine := life.NewWithConfig(cfg.LifeConfig())
	session := sim.NewSession(engine, cfg.ResetOnFinish)
	game := app.New(session, cfg)

	ebiten.SetWindowTitle("GameOfLife")
	ebiten.SetWindowSize(game.WindowSize())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
