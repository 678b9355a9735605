package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/husk/assets"
	"github.com/automoto/husk/config"
	"github.com/automoto/husk/scenes"
	"github.com/automoto/husk/sim"
)

func main() {
	steps := flag.Int("steps", 600, "Number of simulation steps to run")
	seed := flag.Int64("seed", 1, "Camera shake random seed")
	arenaName := flag.String("arena", "", "Tiled arena file on disk or embedded arena name (empty = default)")
	configPath := flag.String("config", "", "YAML config overlay")
	realtime := flag.Bool("realtime", false, "Step at the configured tick rate instead of as fast as possible")
	logCombat := flag.Bool("log-combat", false, "Log combat transitions")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Config error: %v", err)
		}
	}
	if *logCombat {
		config.Debug.LogCombat = true
	}

	name := config.Arena.Default
	if *arenaName != "" {
		name = *arenaName
	}
	arena, err := assets.FindArena(name)
	if err != nil {
		log.Fatalf("Arena error: %v", err)
	}

	world, err := scenes.NewArena(arena, *seed)
	if err != nil {
		log.Fatalf("Scene error: %v", err)
	}
	loop := sim.NewLoop(world, config.C.TicksPerSecond)

	log.Printf("[sim] arena %q (%dx%d, %d spawns), %d steps of %.4fs",
		arena.Name, arena.Width, arena.Height, len(arena.Spawns), *steps, config.C.DeltaTime)

	if *realtime {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("[sim] shutting down...")
			loop.Stop()
		}()
		loop.Run(*steps)
	} else {
		loop.RunSteps(*steps)
	}

	loop.Summary().Log()
}
