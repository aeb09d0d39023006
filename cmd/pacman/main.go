package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-pacman-ghosts/pkg/assets"
	"github.com/lao-tseu-is-alive/go-pacman-ghosts/pkg/game"
	"github.com/lao-tseu-is-alive/go-pacman-ghosts/pkg/simulation"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "configs/config.json", "path to the JSON configuration")
	schemaFile := flag.String("schema", "", "JSON schema overriding the built-in one")
	debug := flag.Bool("debug", false, "log actor and world events to stdout")
	flag.Parse()

	ctx := context.Background()
	var logger golog.Logger = golog.DiscardLogger
	if *debug {
		logger = golog.New(golog.DebugLevel, os.Stdout)
	}

	cfg, found, err := simulation.LoadConfigOrDefault(*configFile, *schemaFile)
	if err != nil {
		log.Fatal(err)
	}
	if !found {
		log.Printf("No configuration at %s, using defaults", *configFile)
	}
	manifest, found, err := assets.LoadOrDefault(cfg.AssetsFile)
	if err != nil {
		log.Fatal(err)
	}
	if !found {
		log.Printf("No assets manifest at %s, using built-in sprites", cfg.AssetsFile)
	}

	world := simulation.NewWorld(cfg, simulation.SpritesFrom(manifest))

	ebiten.SetWindowSize(int(cfg.CanvasWidth), int(cfg.CanvasHeight))
	ebiten.SetWindowTitle("Pacman Ghosts: flocking and scripted walks")

	g, err := game.New(ctx, cfg, world, manifest.BackgroundImage(), logger)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Stop()
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
