package components

import (
	"fmt"
	"math"

	"github.com/yohamta/donburi"
)

// AttackConfig is the authored tuning of one attack. Durations are seconds.
type AttackConfig struct {
	Duration float64 `yaml:"duration"`
	Windup   float64 `yaml:"windup"`
	Cooldown float64 `yaml:"cooldown"`

	KnockbackForce float64 `yaml:"knockback"`
	Stagger        float64 `yaml:"stagger"`
	Invincibility  float64 `yaml:"invincibility"` // granted to the target on hit
	ShakeMagnitude float64 `yaml:"shakeMagnitude"`
	HitStutter     float64 `yaml:"hitStutter"`

	// Hitbox placement: centered Reach units along the owner's heading.
	Reach  float64 `yaml:"reach"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Active is the length of the window in which the hitbox is enabled.
func (c AttackConfig) Active() float64 {
	return c.Duration - c.Windup - c.Cooldown
}

// ActiveEnd is the elapsed time at which the hitbox switches off.
func (c AttackConfig) ActiveEnd() float64 {
	return c.Duration - c.Cooldown
}

// Validate reports ErrInvalidConfiguration unless the active window is
// strictly positive and every other parameter is usable.
func (c AttackConfig) Validate() error {
	for name, v := range map[string]float64{
		"duration":       c.Duration,
		"windup":         c.Windup,
		"cooldown":       c.Cooldown,
		"knockback":      c.KnockbackForce,
		"stagger":        c.Stagger,
		"invincibility":  c.Invincibility,
		"shakeMagnitude": c.ShakeMagnitude,
		"hitStutter":     c.HitStutter,
		"reach":          c.Reach,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("attack %s %v must be finite and non-negative: %w", name, v, ErrInvalidConfiguration)
		}
	}
	if c.Windup+c.Cooldown >= c.Duration {
		return fmt.Errorf("attack windup %v + cooldown %v must be less than duration %v: %w",
			c.Windup, c.Cooldown, c.Duration, ErrInvalidConfiguration)
	}
	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("attack hitbox %vx%v must have a positive size: %w", c.Width, c.Height, ErrInvalidConfiguration)
	}
	return nil
}

type AttackStage int

const (
	StageWindup AttackStage = iota
	StageActive
	StageCooldown
)

func (s AttackStage) String() string {
	switch s {
	case StageWindup:
		return "windup"
	case StageActive:
		return "active"
	case StageCooldown:
		return "cooldown"
	}
	return "unknown"
}

// AttackData is one live attack instance. Owner is a handle, never a
// pointer, and is not changed after creation.
type AttackData struct {
	Owner       donburi.Entity
	Faction     Faction // owner's faction
	DamageGroup Faction // faction this attack may damage
	Config      AttackConfig

	Stage         AttackStage
	Elapsed       float64
	HitboxEnabled bool

	Facing   Vector  // owner heading at spawn time
	Rotation float64 // degrees, for renderers

	// The freeze and flash this attack put on its owner. They are compared
	// by identity, so an effect that has since been replaced is left alone
	// when the attack is cancelled.
	OwnerRoot  *Timer
	OwnerFlash *ColorFlash
}

var Attack = donburi.NewComponentType[AttackData]()

// HitboxCenter places the hitbox Reach units from the owner's center along
// the facing captured at spawn.
func (a *AttackData) HitboxCenter(owner Vector) Vector {
	return owner.Add(a.Facing.Scale(a.Config.Reach))
}
