package components

import "github.com/yohamta/donburi"

// MovementPolicy decides where a character wants to go this step. Move is
// the desired direction scaled to at most 1; Face is the direction the
// character should turn to (zero keeps the current heading).
type MovementPolicy interface {
	Steer(w donburi.World, self *donburi.Entry) (move, face Vector)
}

// TriggerPolicy decides when a character starts an attack.
type TriggerPolicy interface {
	ShouldAttack(w donburi.World, self *donburi.Entry, dt float64) bool
	// Damaged is called after the character accepted a hit.
	Damaged()
}

// CharacterData is shared by every combat entity. Players and enemies
// differ only in faction, tuning and the injected policies.
type CharacterData struct {
	Faction   Faction
	Heading   Vector // unit length, never zero
	MoveSpeed float64
	Weight    float64 // knockback decay in units per second

	Attack   AttackConfig
	Movement MovementPolicy
	Trigger  TriggerPolicy

	// ActiveAttack is the handle of the live attack instance, or
	// donburi.Null.
	ActiveAttack donburi.Entity
}

var Character = donburi.NewComponentType[CharacterData]()
