package factory

import (
	"fmt"

	"github.com/automoto/husk/archetypes"
	"github.com/automoto/husk/components"
	cfg "github.com/automoto/husk/config"
	"github.com/automoto/husk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a player-faction character centered on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64, movement components.MovementPolicy, trigger components.TriggerPolicy) (*donburi.Entry, error) {
	return CreateCharacter(ecs, components.FactionPlayer, x, y, cfg.Player, movement, trigger)
}

// CreateEnemy spawns an enemy-faction character centered on (x, y).
func CreateEnemy(ecs *ecs.ECS, x, y float64, movement components.MovementPolicy, trigger components.TriggerPolicy) (*donburi.Entry, error) {
	return CreateCharacter(ecs, components.FactionEnemy, x, y, cfg.Enemy.CharacterConfig, movement, trigger)
}

// CreateCharacter spawns a combat entity of the given faction. Its attack
// config is validated up front so every later SpawnAttack can trust it.
func CreateCharacter(ecs *ecs.ECS, faction components.Faction, x, y float64, c cfg.CharacterConfig,
	movement components.MovementPolicy, trigger components.TriggerPolicy) (*donburi.Entry, error) {
	if err := c.Attack.Validate(); err != nil {
		return nil, fmt.Errorf("%s attack: %w", faction, err)
	}
	if !(c.Width > 0) || !(c.Height > 0) || c.MoveSpeed < 0 || c.Weight < 0 {
		return nil, fmt.Errorf("%s body %vx%v speed %v weight %v: %w",
			faction, c.Width, c.Height, c.MoveSpeed, c.Weight, components.ErrInvalidConfiguration)
	}

	archetype, tag := archetypes.Player, tags.ResolvPlayer
	if faction == components.FactionEnemy {
		archetype, tag = archetypes.Enemy, tags.ResolvEnemy
	}
	character := archetype.Spawn(ecs)

	obj := resolv.NewObject(x-c.Width/2, y-c.Height/2, c.Width, c.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, c.Width, c.Height))
	obj.AddTags(tags.ResolvCharacter, tag)
	obj.Data = character.Entity()
	components.Object.SetValue(character, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Character.SetValue(character, components.CharacterData{
		Faction:      faction,
		Heading:      components.Vector{X: 0, Y: 1},
		MoveSpeed:    c.MoveSpeed,
		Weight:       c.Weight,
		Attack:       c.Attack,
		Movement:     movement,
		Trigger:      trigger,
		ActiveAttack: donburi.Null,
	})
	components.Tint.SetValue(character, components.TintData{
		Default: c.Tint,
		Current: c.Tint,
	})
	components.Pausable.SetValue(character, components.PausableData{Paused: scenePaused(ecs)})

	return character, nil
}
