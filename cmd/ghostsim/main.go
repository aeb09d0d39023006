package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lao-tseu-is-alive/go-pacman-ghosts/pkg/assets"
	"github.com/lao-tseu-is-alive/go-pacman-ghosts/pkg/simulation"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "path to the JSON configuration (defaults are used when empty)")
	ticks := flag.Int("ticks", 1200, "number of world ticks to run")
	dt := flag.Duration("dt", 50*time.Millisecond, "simulated time per tick")
	scripted := flag.Bool("scripted", false, "run the fleet in scripted mode instead of flocking")
	dump := flag.Bool("dump", false, "print the final snapshot as JSON")
	debug := flag.Bool("debug", false, "log actor and world events to stdout")
	flag.Parse()

	ctx := context.Background()
	var logger golog.Logger = golog.DefaultLogger
	if *debug {
		logger = golog.New(golog.DebugLevel, os.Stdout)
	}

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile, ""); err != nil {
			log.Fatal(err)
		}
	}

	world := simulation.NewWorld(cfg, simulation.SpritesFrom(assets.Default()))
	engine, err := simulation.StartEngine(ctx, world, nil, logger)
	if err != nil {
		log.Fatal(err)
	}

	if *scripted {
		if err := engine.SetScripted(ctx, true); err != nil {
			log.Fatal(err)
		}
	}
	start := time.Now()
	for i := 0; i < *ticks; i++ {
		if err := engine.Advance(ctx, *dt); err != nil {
			log.Fatal(err)
		}
	}
	snap, err := engine.Snapshot(ctx, 10*time.Second)
	if err != nil {
		log.Fatal(err)
	}
	logger.Infof("Simulated %s in %d ticks (%s wall time): moved %d, blocked %d, retargeted %d, forced %d",
		time.Duration(snap.ElapsedMs)*time.Millisecond, snap.Tick, time.Since(start).Round(time.Millisecond),
		snap.Totals.Moved, snap.Totals.Blocked, snap.Totals.Retargeted, snap.Totals.Fallbacks)

	if *dump {
		s, err := snap.JSON()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(s)
	}
	if err := engine.Stop(ctx); err != nil {
		log.Fatal(err)
	}
}
