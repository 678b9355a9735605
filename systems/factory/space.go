package factory

import (
	"github.com/automoto/husk/archetypes"
	"github.com/automoto/husk/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the scene's collision space if there is one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// scenePaused is used to give new pausable entities the current pause flag.
func scenePaused(ecs *ecs.ECS) bool {
	if entry, ok := components.ScenePause.First(ecs.World); ok {
		return components.ScenePause.Get(entry).IsPaused()
	}
	return false
}
