package systems

import (
	"fmt"

	"github.com/automoto/husk/components"
	cfg "github.com/automoto/husk/config"
	"github.com/automoto/husk/systems/factory"
	"github.com/automoto/husk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ActiveAttack returns the live attack owned by owner.
func ActiveAttack(ecs *ecs.ECS, owner *donburi.Entry) (*donburi.Entry, bool) {
	handle := components.Character.Get(owner).ActiveAttack
	if handle == donburi.Null || !ecs.World.Valid(handle) {
		return nil, false
	}
	return ecs.World.Entry(handle), true
}

// SpawnAttack starts a new attack for owner. Only one attack may be alive
// per owner at a time.
func SpawnAttack(ecs *ecs.ECS, owner *donburi.Entry, c components.AttackConfig) (*donburi.Entry, error) {
	if _, ok := ActiveAttack(ecs, owner); ok {
		return nil, fmt.Errorf("spawn attack for entity %v: attack already alive: %w", owner.Entity(), components.ErrInvalidOperation)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	attack := factory.CreateAttack(ecs, owner, c)
	components.Character.Get(owner).ActiveAttack = attack.Entity()

	if IsColorFlashing(owner) {
		if err := StopColorFlashing(owner); err != nil {
			return nil, err
		}
	}
	if err := FlashColorInOut(owner, cfg.Combat.AttackFlashColor, c.Windup, c.Active(), c.Cooldown); err != nil {
		return nil, err
	}
	components.Attack.Get(attack).OwnerFlash = components.Status.Get(owner).Flash

	GetOrCreateSimulation(ecs).AttacksSpawned++
	debugf("[attack] entity %v spawned attack %v facing (%.2f, %.2f)",
		owner.Entity(), attack.Entity(), components.Attack.Get(attack).Facing.X, components.Attack.Get(attack).Facing.Y)

	if c.Windup == 0 {
		if err := enterActive(ecs, attack); err != nil {
			return attack, err
		}
	}
	return attack, nil
}

// CancelAttack destroys owner's live attack and takes back the root and
// flash it applied. Effects that something else has replaced since are kept.
func CancelAttack(ecs *ecs.ECS, owner *donburi.Entry) error {
	attack, ok := ActiveAttack(ecs, owner)
	if !ok {
		return fmt.Errorf("cancel attack for entity %v: no attack alive: %w", owner.Entity(), components.ErrInvalidOperation)
	}
	data := components.Attack.Get(attack)
	status := components.Status.Get(owner)
	root, flash := data.OwnerRoot, data.OwnerFlash
	destroyAttack(ecs, attack)

	if root != nil && status.Frozen == root {
		status.Frozen = nil
	}
	if flash != nil && status.Flash == flash {
		return StopColorFlashing(owner)
	}
	return nil
}

func Stage(attack *donburi.Entry) components.AttackStage {
	return components.Attack.Get(attack).Stage
}

func IsHitboxEnabled(attack *donburi.Entry) bool {
	return components.Attack.Get(attack).HitboxEnabled
}

// UpdateAttacks advances every unpaused attack and fires its stage
// transitions. Several transitions may fire in one step; each fires once.
func UpdateAttacks(ecs *ecs.ECS) {
	dt := deltaTime(ecs)

	var attacks []*donburi.Entry
	tags.Attack.Each(ecs.World, func(e *donburi.Entry) {
		attacks = append(attacks, e)
	})

	for _, e := range attacks {
		if !e.Valid() || IsPaused(e) {
			continue
		}
		attack := components.Attack.Get(e)
		if !ecs.World.Valid(attack.Owner) {
			destroyAttack(ecs, e)
			continue
		}
		attack.Elapsed += dt
		followOwner(ecs, e)

		if attack.Stage == components.StageWindup && attack.Elapsed >= attack.Config.Windup {
			if err := enterActive(ecs, e); err != nil {
				debugf("[attack] activate %v: %v", e.Entity(), err)
			}
		}
		if attack.Stage == components.StageActive && attack.Elapsed >= attack.Config.ActiveEnd() {
			attack.Stage = components.StageCooldown
			attack.HitboxEnabled = false
			debugf("[attack] %v cooldown at %.3fs", e.Entity(), attack.Elapsed)
		}
		if attack.Elapsed >= attack.Config.Duration {
			destroyAttack(ecs, e)
		}
	}
}

// enterActive switches the hitbox on and roots the owner for the active
// window. The root is part of the attack, so the owner's own invincibility
// does not block it.
func enterActive(ecs *ecs.ECS, e *donburi.Entry) error {
	attack := components.Attack.Get(e)
	attack.Stage = components.StageActive
	attack.HitboxEnabled = true
	debugf("[attack] %v active at %.3fs", e.Entity(), attack.Elapsed)

	owner := ecs.World.Entry(attack.Owner)
	if err := freezeBypassingInvincibility(owner, attack.Config.Active()); err != nil {
		return err
	}
	attack.OwnerRoot = components.Status.Get(owner).Frozen
	if attack.Config.ShakeMagnitude > 0 && attack.Faction == components.FactionEnemy {
		if _, ok := components.Camera.First(ecs.World); ok {
			return Shake(ecs, attack.Config.Active(), attack.Config.ShakeMagnitude)
		}
	}
	return nil
}

func followOwner(ecs *ecs.ECS, e *donburi.Entry) {
	attack := components.Attack.Get(e)
	owner := components.Object.Get(ecs.World.Entry(attack.Owner))
	components.Object.Get(e).MoveTo(attack.HitboxCenter(owner.Center()))
}

// destroyAttack removes the attack and its hitbox. The owner may already be
// gone, in which case only the attack is cleaned up.
func destroyAttack(ecs *ecs.ECS, e *donburi.Entry) {
	attack := components.Attack.Get(e)
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
	}
	if ecs.World.Valid(attack.Owner) {
		owner := components.Character.Get(ecs.World.Entry(attack.Owner))
		if owner.ActiveAttack == e.Entity() {
			owner.ActiveAttack = donburi.Null
		}
	}
	debugf("[attack] %v destroyed at %.3fs", e.Entity(), attack.Elapsed)
	ecs.World.Remove(e.Entity())
}
