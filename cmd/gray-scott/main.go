//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"gray-scott/internal/app"
	"gray-scott/internal/core"
	"gray-scott/internal/lut"
	"gray-scott/internal/sims/grayscott"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := buildSim(cfg)
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	mgr := lut.NewManager()
	if cfg.LutDir != "" {
		mgr = lut.NewDirManager(cfg.LutDir)
	}

	game, err := app.New(sim, mgr, cfg)
	if err != nil {
		log.Fatal(err)
	}
	size := sim.Size()

	ebiten.SetWindowTitle("gray-scott — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func buildSim(cfg *app.Config) (*grayscott.System, error) {
	if cfg.File != "" {
		sc, err := grayscott.LoadConfig(cfg.File)
		if err != nil {
			return nil, err
		}
		if cfg.Workers > 0 {
			sc.Workers = cfg.Workers
		}
		return grayscott.NewWithConfig(sc), nil
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	params := map[string]string{
		"seed":    strconv.FormatInt(cfg.Seed, 10),
		"workers": strconv.Itoa(cfg.Workers),
	}
	gs, ok := factory(params).(*grayscott.System)
	if !ok {
		log.Fatalf("sim %q is not a Gray-Scott system", cfg.Sim)
	}
	return gs, nil
}
