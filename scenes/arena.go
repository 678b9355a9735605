package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/husk/assets"
	"github.com/automoto/husk/components"
	cfg "github.com/automoto/husk/config"
	"github.com/automoto/husk/systems"
	"github.com/automoto/husk/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// NewArena builds a combat world for arena. Systems passed in run before
// the combat systems every step; front ends use them to poll input.
func NewArena(arena *assets.Arena, seed int64, before ...ecs.System) (*ecs.ECS, error) {
	if err := arena.Validate(); err != nil {
		return nil, err
	}
	e := ecs.NewECS(donburi.NewWorld())

	for _, system := range before {
		e.AddSystem(system)
	}
	systems.AddCombatSystems(e)

	e.AddRenderer(cfg.Default, systems.DrawCharacters)
	e.AddRenderer(cfg.Default, systems.DrawHitboxes)
	e.AddRenderer(cfg.Overlay, systems.DrawDebug)

	factory.CreateScene(e, cfg.C.DeltaTime)
	factory.CreateSpace(e, arena.Width, arena.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)
	factory.CreateCamera(e, math.Vec2{X: float64(arena.Width) / 2, Y: float64(arena.Height) / 2}, seed)

	for _, spawn := range arena.Spawns {
		var err error
		switch spawn.Faction {
		case components.FactionPlayer:
			_, err = factory.CreatePlayer(e, spawn.X, spawn.Y, systems.InputMovement{}, systems.InputTrigger{})
		case components.FactionEnemy:
			var trigger *systems.IntervalTrigger
			trigger, err = systems.NewIntervalTrigger(cfg.Enemy.AttackRate)
			if err == nil {
				_, err = factory.CreateEnemy(e, spawn.X, spawn.Y,
					systems.ChaseMovement{Proximity: cfg.Enemy.AttackProximity}, trigger)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("spawn %q in arena %s: %w", spawn.Name, arena.Name, err)
		}
	}

	return e, nil
}

// ArenaScene runs an arena in the ebiten window.
type ArenaScene struct {
	ecs   *ecs.ECS
	arena *assets.Arena
	seed  int64
	once  sync.Once
}

func NewArenaScene(arena *assets.Arena, seed int64) *ArenaScene {
	return &ArenaScene{arena: arena, seed: seed}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	e, err := NewArena(as.arena, as.seed, systems.UpdateInput, systems.UpdateSettings)
	if err != nil {
		panic(err)
	}
	as.ecs = e
}
