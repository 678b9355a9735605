package systems

import (
	"github.com/automoto/husk/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes every object's cell membership in the space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
