package systems

import (
	"log"

	"github.com/automoto/husk/components"
	cfg "github.com/automoto/husk/config"
	"github.com/automoto/husk/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AddCombatSystems registers the per-step systems in their fixed order.
// The pause snapshot is taken first so every later system sees the pause
// state the step started with.
func AddCombatSystems(e *ecs.ECS) {
	e.AddSystem(UpdatePauseInput)
	e.AddSystem(UpdateScenePause)
	e.AddSystem(UpdateStatusEffects)
	e.AddSystem(UpdateCharacters)
	e.AddSystem(UpdateAttacks)
	e.AddSystem(UpdateCamera)
	e.AddSystem(UpdateHits)
	e.AddSystem(UpdateObjects)
	e.AddSystem(UpdateSimulation)
}

// UpdateSimulation closes the step. A timed pause runs out here, after the
// step it last held, so the next step starts unpaused.
func UpdateSimulation(ecs *ecs.ECS) {
	sim := GetOrCreateSimulation(ecs)
	if !sim.ScenePaused {
		sim.Time += sim.DeltaTime
	}
	countDownScenePause(ecs)
	sim.Step++
}

func sceneEntry(ecs *ecs.ECS) *donburi.Entry {
	entry, ok := components.Simulation.First(ecs.World)
	if !ok {
		entry = factory.CreateScene(ecs, cfg.C.DeltaTime)
	}
	return entry
}

// GetOrCreateSimulation returns the step context singleton, creating it
// with the configured delta time if needed.
func GetOrCreateSimulation(ecs *ecs.ECS) *components.SimulationData {
	return components.Simulation.Get(sceneEntry(ecs))
}

// GetOrCreateScenePause returns the scene pause singleton.
func GetOrCreateScenePause(ecs *ecs.ECS) *components.ScenePauseData {
	return components.ScenePause.Get(sceneEntry(ecs))
}

// GetOrCreateInput returns the input sink the front end writes into.
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	return components.Input.Get(sceneEntry(ecs))
}

func deltaTime(ecs *ecs.ECS) float64 {
	return GetOrCreateSimulation(ecs).DeltaTime
}

// debugf logs combat transitions when combat logging is switched on.
func debugf(format string, args ...any) {
	if cfg.Debug.LogCombat {
		log.Printf(format, args...)
	}
}
