package factory

import (
	"github.com/automoto/husk/archetypes"
	"github.com/automoto/husk/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScene spawns the scene singleton holding the step context, the
// scene pause flag and the input sink.
func CreateScene(ecs *ecs.ECS, deltaTime float64) *donburi.Entry {
	scene := archetypes.Scene.Spawn(ecs)
	components.Simulation.SetValue(scene, components.SimulationData{
		DeltaTime: deltaTime,
	})
	return scene
}
