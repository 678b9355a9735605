package factory

import (
	"math/rand"

	"github.com/automoto/husk/archetypes"
	"github.com/automoto/husk/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the scene camera at rest position pos. The seed fixes
// the sequence of shake directions.
func CreateCamera(ecs *ecs.ECS, pos math.Vec2, seed int64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: pos,
		Rand:     rand.New(rand.NewSource(seed)),
	})
	components.Pausable.SetValue(camera, components.PausableData{Paused: scenePaused(ecs)})
	return camera
}
