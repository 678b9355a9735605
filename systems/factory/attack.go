package factory

import (
	"math"

	"github.com/automoto/husk/archetypes"
	"github.com/automoto/husk/components"
	"github.com/automoto/husk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAttack spawns an attack instance for owner in its windup stage with
// the hitbox placed along the owner's current heading. The config is
// expected to be valid already.
func CreateAttack(ecs *ecs.ECS, owner *donburi.Entry, c components.AttackConfig) *donburi.Entry {
	character := components.Character.Get(owner)
	ownerObj := components.Object.Get(owner)

	attack := archetypes.Attack.Spawn(ecs)
	data := components.AttackData{
		Owner:       owner.Entity(),
		Faction:     character.Faction,
		DamageGroup: character.Faction.Opposite(),
		Config:      c,
		Stage:       components.StageWindup,
		Facing:      character.Heading,
		Rotation:    math.Atan2(-character.Heading.X, character.Heading.Y) * 180 / math.Pi,
	}

	center := data.HitboxCenter(ownerObj.Center())
	obj := resolv.NewObject(center.X-c.Width/2, center.Y-c.Height/2, c.Width, c.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, c.Width, c.Height))
	obj.AddTags(tags.ResolvHitbox)
	obj.Data = attack.Entity()

	components.Attack.SetValue(attack, data)
	components.Object.SetValue(attack, components.ObjectData{Object: obj})
	components.Pausable.SetValue(attack, components.PausableData{Paused: scenePaused(ecs)})
	addToSpace(ecs, obj)

	return attack
}
