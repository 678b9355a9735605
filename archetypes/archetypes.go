package archetypes

import (
	"github.com/automoto/husk/components"
	cfg "github.com/automoto/husk/config"
	"github.com/automoto/husk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Character,
		components.Object,
		components.Status,
		components.Tint,
		components.Pausable,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Character,
		components.Object,
		components.Status,
		components.Tint,
		components.Pausable,
	)
	Attack = newArchetype(
		tags.Attack,
		components.Attack,
		components.Object,
		components.Pausable,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
		components.Pausable,
	)
	Scene = newArchetype(
		tags.Scene,
		components.Simulation,
		components.ScenePause,
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
