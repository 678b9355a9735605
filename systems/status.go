package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/husk/components"
	cfg "github.com/automoto/husk/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Hit is everything a successful attack does to its target.
type Hit struct {
	Knockback      components.Vector
	Invincibility  float64
	Stagger        float64
	ShakeMagnitude float64
	HitStutter     float64
}

func (h Hit) validate() error {
	for _, v := range []float64{h.Invincibility, h.Stagger, h.ShakeMagnitude, h.HitStutter} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("hit parameter %v must be finite and non-negative: %w", v, components.ErrInvalidConfiguration)
		}
	}
	return nil
}

// IsFrozen reports whether e is held in place, either by a manual freeze or
// by a knockback it has not finished riding out.
func IsFrozen(e *donburi.Entry) bool {
	status := components.Status.Get(e)
	return status.Frozen != nil || !status.Knockback.IsZero()
}

func IsInvincible(e *donburi.Entry) bool {
	return components.Status.Get(e).Invincibility > 0
}

func IsColorFlashing(e *donburi.Entry) bool {
	return components.Status.Get(e).Flash != nil
}

// IsPaused reports the pause flag last broadcast to e.
func IsPaused(e *donburi.Entry) bool {
	if !e.HasComponent(components.Pausable) {
		return false
	}
	return components.Pausable.Get(e).Paused
}

// Freeze holds e in place for d seconds, replacing any manual freeze.
// Invincible entities cannot be frozen.
func Freeze(e *donburi.Entry, d float64) error {
	status := components.Status.Get(e)
	if status.Invincibility > 0 {
		return fmt.Errorf("freeze entity %v while invincible: %w", e.Entity(), components.ErrInvalidOperation)
	}
	if !(d > 0) {
		return fmt.Errorf("freeze duration %v: %w: %w", d, components.ErrInvalidOperation, components.ErrInvalidConfiguration)
	}
	timer, err := components.NewTimer(d)
	if err != nil {
		return err
	}
	status.Frozen = timer
	return nil
}

func Unfreeze(e *donburi.Entry) error {
	status := components.Status.Get(e)
	if status.Frozen == nil {
		return fmt.Errorf("unfreeze entity %v: not frozen: %w", e.Entity(), components.ErrInvalidOperation)
	}
	status.Frozen = nil
	return nil
}

// freezeBypassingInvincibility applies a freeze that belongs to the same hit
// or attack that made e invincible. The remaining invincibility is set aside
// for the call and restored untouched.
func freezeBypassingInvincibility(e *donburi.Entry, d float64) error {
	status := components.Status.Get(e)
	invincibility := status.Invincibility
	status.Invincibility = 0
	err := Freeze(e, d)
	status.Invincibility = invincibility
	return err
}

// ApplyHit damages e. It reports false without changing anything while e is
// invincible.
func ApplyHit(ecs *ecs.ECS, e *donburi.Entry, h Hit) (bool, error) {
	if err := h.validate(); err != nil {
		return false, err
	}
	if IsInvincible(e) {
		return false, nil
	}
	status := components.Status.Get(e)

	// A hit without knockback has nothing to ride out: stagger now.
	if h.Knockback.IsZero() && h.Stagger > 0 {
		if err := Freeze(e, h.Stagger); err != nil {
			return false, err
		}
	}

	status.Knockback = h.Knockback
	status.Invincibility = h.Invincibility
	status.PendingStagger = h.Stagger

	if h.ShakeMagnitude > 0 && h.Invincibility > 0 {
		if _, ok := components.Camera.First(ecs.World); ok {
			if err := Shake(ecs, h.Invincibility, h.ShakeMagnitude); err != nil {
				return true, err
			}
		}
	}

	if h.HitStutter > 0 && !IsScenePaused(ecs) {
		if err := PauseSceneFor(ecs, h.HitStutter); err != nil {
			return true, err
		}
	}

	if IsColorFlashing(e) {
		if err := StopColorFlashing(e); err != nil {
			return true, err
		}
	}
	if err := FlashColor(e, cfg.Combat.DamageFlashColor, cfg.Combat.DamageFlashDuration); err != nil {
		return true, err
	}

	if character := components.Character.Get(e); character.Trigger != nil {
		character.Trigger.Damaged()
	}

	GetOrCreateSimulation(ecs).HitsApplied++
	debugf("[combat] hit entity %v knockback=(%.2f, %.2f) invincibility=%.2f stagger=%.2f",
		e.Entity(), h.Knockback.X, h.Knockback.Y, h.Invincibility, h.Stagger)
	return true, nil
}

// Damage applies the hit carried by attack to target, pushing it along the
// attacker's current heading.
func Damage(ecs *ecs.ECS, target, attack *donburi.Entry) (bool, error) {
	data := components.Attack.Get(attack)
	heading := data.Facing
	if ecs.World.Valid(data.Owner) {
		heading = components.Character.Get(ecs.World.Entry(data.Owner)).Heading
	}
	return ApplyHit(ecs, target, Hit{
		Knockback:      heading.Scale(data.Config.KnockbackForce),
		Invincibility:  data.Config.Invincibility,
		Stagger:        data.Config.Stagger,
		ShakeMagnitude: data.Config.ShakeMagnitude,
		HitStutter:     data.Config.HitStutter,
	})
}

// FlashColor sets e's tint to c and holds it for d seconds.
func FlashColor(e *donburi.Entry, c color.RGBA, d float64) error {
	return startFlash(e, c, 0, d, 0)
}

// FlashColorIn blends e's tint to c over to seconds and holds it for hold
// seconds.
func FlashColorIn(e *donburi.Entry, c color.RGBA, to, hold float64) error {
	return startFlash(e, c, to, hold, 0)
}

// FlashColorInOut blends to c, holds it, then blends back to the default
// tint over from seconds.
func FlashColorInOut(e *donburi.Entry, c color.RGBA, to, hold, from float64) error {
	return startFlash(e, c, to, hold, from)
}

func startFlash(e *donburi.Entry, c color.RGBA, to, hold, from float64) error {
	if IsColorFlashing(e) {
		return fmt.Errorf("flash entity %v: already flashing: %w", e.Entity(), components.ErrInvalidOperation)
	}
	flash, err := components.NewColorFlash(c, to, hold, from)
	if err != nil {
		return err
	}
	tint := components.Tint.Get(e)
	if flash.Done() {
		tint.Current = tint.Default
		return nil
	}
	components.Status.Get(e).Flash = flash
	tint.Current = flash.Tint(tint.Default)
	return nil
}

// StopColorFlashing cancels the flash and restores the default tint.
func StopColorFlashing(e *donburi.Entry) error {
	status := components.Status.Get(e)
	if status.Flash == nil {
		return fmt.Errorf("stop flashing entity %v: not flashing: %w", e.Entity(), components.ErrInvalidOperation)
	}
	status.Flash = nil
	tint := components.Tint.Get(e)
	tint.Current = tint.Default
	return nil
}

// UpdateStatusEffects advances every unpaused entity's timed effects.
func UpdateStatusEffects(ecs *ecs.ECS) {
	dt := deltaTime(ecs)

	components.Status.Each(ecs.World, func(e *donburi.Entry) {
		if IsPaused(e) {
			return
		}
		status := components.Status.Get(e)

		status.Invincibility = math.Max(status.Invincibility-dt, 0)

		if status.Frozen != nil {
			status.Frozen.Advance(dt, false)
			if status.Frozen.IsComplete() {
				status.Frozen = nil
			}
		}

		if !status.Knockback.IsZero() {
			updateKnockback(e, status, dt)
		}

		if status.Flash != nil {
			tint := components.Tint.Get(e)
			if status.Flash.Advance(dt, false) {
				status.Flash = nil
				tint.Current = tint.Default
			} else {
				tint.Current = status.Flash.Tint(tint.Default)
			}
		}
	})
}

func updateKnockback(e *donburi.Entry, status *components.StatusData, dt float64) {
	components.Object.Get(e).Translate(status.Knockback.Scale(dt))

	weight := components.Character.Get(e).Weight
	magnitude := status.Knockback.Len() - weight*dt
	if magnitude >= cfg.Combat.KnockbackRestThreshold {
		status.Knockback = status.Knockback.WithLen(magnitude)
		return
	}

	status.Knockback = components.Vector{}
	if status.PendingStagger > 0 {
		if err := freezeBypassingInvincibility(e, status.PendingStagger); err != nil {
			debugf("[combat] stagger entity %v: %v", e.Entity(), err)
		}
	}
	status.PendingStagger = 0
}
