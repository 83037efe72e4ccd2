package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifeboard/internal/app"
	"lifeboard/internal/life"
	"lifeboard/internal/render"
	"lifeboard/internal/sim"
)

func main() {
	cfg := app.NewConfig()
	cfg.Cells = 20
	cfg.Epochs = 30
	cfg.ResetOnFinish = false
	var seed app.SeedOptions
	seed.Pattern = "glider"
	seed.Bind(flag.CommandLine)
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	engine := life.NewWithConfig(cfg.LifeConfig())
	if err := seed.Apply(engine); err != nil {
		log.Fatalf("seed: %v", err)
	}
	session := sim.NewSession(engine, cfg.ResetOnFinish)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := sim.Run(ctx, session, render.NewTextRenderer(os.Stdout), sim.RealClock{}, cfg.Interval)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("finished after %d generations (%s)", session.Generations(), session.Outcome())
}
