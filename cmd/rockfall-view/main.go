//go:build ebiten

package main

import (
	"errors"
	"flag"

	"rockfall/internal/app"
	"rockfall/internal/core"
	_ "rockfall/internal/sims/rockfall"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		log.Fatal("unknown sim", "sim", cfg.Sim, "available", core.Names())
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatal("viewer failed", "err", err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("rockfall — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+app.PanelWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("viewer failed", "err", err)
	}
}
