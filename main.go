package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/husk/assets"
	"github.com/automoto/husk/config"
	"github.com/automoto/husk/scenes"
	"github.com/automoto/husk/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(arena *assets.Arena, seed int64) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(arena, seed),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML config overlay")
	arenaName := flag.String("arena", "", "Tiled arena file on disk or embedded arena name (empty = default)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Camera shake random seed")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Config error: %v", err)
		}
	}
	// The window steps once per tick, so the simulation step follows the tick rate.
	config.C.DeltaTime = 1 / float64(config.C.TicksPerSecond)
	ebiten.SetTPS(config.C.TicksPerSecond)

	name := config.Arena.Default
	if *arenaName != "" {
		name = *arenaName
	}
	arena, err := assets.FindArena(name)
	if err != nil {
		log.Fatalf("Arena error: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("husk")

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := ebiten.RunGame(NewGame(arena, *seed)); err != nil {
		log.Fatal(err)
	}
}
