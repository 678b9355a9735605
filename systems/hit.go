package systems

import (
	"github.com/automoto/husk/components"
	"github.com/automoto/husk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type hitCandidate struct {
	attack *donburi.Entry
	target *donburi.Entry
}

// UpdateHits applies every enabled hitbox to the opposing characters it
// overlaps. It runs every step the overlap lasts; the target's
// invincibility is what keeps one swing from landing twice.
func UpdateHits(ecs *ecs.ECS) {
	if GetOrCreateSimulation(ecs).ScenePaused {
		return
	}

	var candidates []hitCandidate
	tags.Attack.Each(ecs.World, func(e *donburi.Entry) {
		attack := components.Attack.Get(e)
		if !attack.HitboxEnabled || IsPaused(e) {
			return
		}
		hitbox := components.Object.Get(e)
		check := hitbox.Check(0, 0, tags.ResolvCharacter)
		if check == nil {
			return
		}
		for _, obj := range check.Objects {
			handle, ok := obj.Data.(donburi.Entity)
			if !ok || handle == attack.Owner || !ecs.World.Valid(handle) {
				continue
			}
			if !hitbox.Overlaps(obj) {
				continue
			}
			target := ecs.World.Entry(handle)
			if components.Character.Get(target).Faction != attack.DamageGroup {
				continue
			}
			candidates = append(candidates, hitCandidate{attack: e, target: target})
		}
	})

	for _, c := range candidates {
		if !c.attack.Valid() || !c.target.Valid() {
			continue
		}
		if _, err := Damage(ecs, c.target, c.attack); err != nil {
			debugf("[combat] hit %v by %v: %v", c.target.Entity(), c.attack.Entity(), err)
		}
	}
}
