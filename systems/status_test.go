package systems

import (
	"testing"

	"github.com/automoto/husk/components"
	cfg "github.com/automoto/husk/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFrozenMatchesState(t *testing.T) {
	tests := []struct {
		name      string
		manual    bool
		knockback components.Vector
	}{
		{name: "idle"},
		{name: "manual freeze", manual: true},
		{name: "knockback", knockback: components.Vector{X: 3}},
		{name: "manual freeze and knockback", manual: true, knockback: components.Vector{Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestArena(t, 0.1)
			entity := spawnCharacter(t, e, components.FactionPlayer, 100, 100, testCharacter(1))
			status := components.Status.Get(entity)
			if tt.manual {
				require.NoError(t, Freeze(entity, 1))
			}
			status.Knockback = tt.knockback

			assert.Equal(t, tt.manual || !tt.knockback.IsZero(), IsFrozen(entity))
			assert.Equal(t, status.Frozen != nil || !status.Knockback.IsZero(), IsFrozen(entity))
		})
	}
}

func TestApplyHitIgnoredWhileInvincible(t *testing.T) {
	e := newTestArena(t, 0.1)
	target := spawnCharacter(t, e, components.FactionEnemy, 100, 100, testCharacter(1))
	status := components.Status.Get(target)
	status.Invincibility = 0.5
	before := *status
	tintBefore := *components.Tint.Get(target)

	applied, err := ApplyHit(e, target, Hit{
		Knockback:      components.Vector{X: 10},
		Invincibility:  1,
		Stagger:        0.5,
		ShakeMagnitude: 2,
		HitStutter:     0.1,
	})
	require.NoError(t, err)
	assert.False(t, applied)

	assert.Equal(t, before, *status)
	assert.Equal(t, tintBefore, *components.Tint.Get(target))
	assert.False(t, IsScenePaused(e))
	assert.False(t, IsShaking(e))
	assert.Zero(t, GetOrCreateSimulation(e).HitsApplied)
}

func TestApplyHit(t *testing.T) {
	e := newTestArena(t, 0.1)
	target := spawnCharacter(t, e, components.FactionEnemy, 100, 100, testCharacter(1))

	applied, err := ApplyHit(e, target, Hit{
		Knockback:      components.Vector{X: 10},
		Invincibility:  1,
		Stagger:        0.5,
		ShakeMagnitude: 2,
		HitStutter:     0.1,
	})
	require.NoError(t, err)
	require.True(t, applied)

	status := components.Status.Get(target)
	assert.Equal(t, components.Vector{X: 10}, status.Knockback)
	assert.Equal(t, 1.0, status.Invincibility)
	assert.Equal(t, 0.5, status.PendingStagger)
	assert.Nil(t, status.Frozen, "a hit with knockback staggers only after it dies out")
	assert.True(t, IsFrozen(target))

	assert.True(t, IsShaking(e))
	assert.True(t, IsScenePaused(e))
	assert.Equal(t, components.PauseTimed, GetOrCreateScenePause(e).State)

	assert.True(t, IsColorFlashing(target))
	assert.Equal(t, cfg.Combat.DamageFlashColor, components.Tint.Get(target).Current)
	assert.Equal(t, 1, GetOrCreateSimulation(e).HitsApplied)
}

func TestApplyHitRestartsFlash(t *testing.T) {
	e := newTestArena(t, 0.1)
	target := spawnCharacter(t, e, components.FactionEnemy, 100, 100, testCharacter(1))
	require.NoError(t, FlashColor(target, cfg.White, 5))

	_, err := ApplyHit(e, target, Hit{Invincibility: 1})
	require.NoError(t, err)
	assert.Equal(t, cfg.Combat.DamageFlashColor, components.Tint.Get(target).Current)
	assert.Equal(t, cfg.Combat.DamageFlashDuration, components.Status.Get(target).Flash.Remaining())
}

// The stagger that follows a knockback must land even though the same hit
// made the target invincible, and must not eat into that invincibility.
func TestKnockbackStaggerBypassesInvincibility(t *testing.T) {
	e := newTestArena(t, 0.25)
	target := spawnCharacter(t, e, components.FactionEnemy, 100, 100, testCharacter(3))

	_, err := ApplyHit(e, target, Hit{
		Knockback:     components.Vector{X: 10},
		Invincibility: 5,
		Stagger:       0.5,
	})
	require.NoError(t, err)
	status := components.Status.Get(target)

	// 10 units decaying at 3 units/s in 0.25s steps: 0.75 per step.
	step(e, 13)
	assert.InDelta(t, 0.25, status.Knockback.Len(), 1e-9)
	assert.Nil(t, status.Frozen)
	assert.True(t, IsFrozen(target))
	assert.InDelta(t, 1.75, status.Invincibility, 1e-9)

	step(e, 1)
	assert.True(t, status.Knockback.IsZero())
	require.NotNil(t, status.Frozen, "stagger applied while invincible")
	assert.Equal(t, 0.5, status.Frozen.Duration())
	assert.InDelta(t, 1.5, status.Invincibility, 1e-9, "invincibility restored after the stagger")
	assert.Zero(t, status.PendingStagger)
	assert.InDelta(t, 117.9375, components.Object.Get(target).Center().X, 1e-9)

	step(e, 1)
	assert.True(t, IsFrozen(target))
	assert.InDelta(t, 1.25, status.Invincibility, 1e-9)

	step(e, 1)
	assert.False(t, IsFrozen(target))
	assert.InDelta(t, 1.0, status.Invincibility, 1e-9)
	assert.True(t, IsInvincible(target))
}

func TestStaticHitFreezesImmediately(t *testing.T) {
	e := newTestArena(t, 0.1)
	target := spawnCharacter(t, e, components.FactionEnemy, 100, 100, testCharacter(1))

	_, err := ApplyHit(e, target, Hit{Stagger: 0.4})
	require.NoError(t, err)

	status := components.Status.Get(target)
	require.NotNil(t, status.Frozen)
	assert.Equal(t, 0.4, status.Frozen.Duration())

	for i := 0; i < 3; i++ {
		step(e, 1)
		assert.True(t, status.Knockback.IsZero())
		assert.True(t, IsFrozen(target), "step %d", i+1)
	}
	step(e, 1)
	assert.True(t, status.Knockback.IsZero())
	assert.False(t, IsFrozen(target))
}

func TestFreeze(t *testing.T) {
	e := newTestArena(t, 0.25)
	entity := spawnCharacter(t, e, components.FactionPlayer, 100, 100, testCharacter(1))

	t.Run("rejects non-positive durations", func(t *testing.T) {
		for _, d := range []float64{0, -1} {
			err := Freeze(entity, d)
			assert.ErrorIs(t, err, components.ErrInvalidOperation)
			assert.ErrorIs(t, err, components.ErrInvalidConfiguration)
		}
		assert.False(t, IsFrozen(entity))
	})

	t.Run("unfreeze leaves no timer", func(t *testing.T) {
		require.NoError(t, Freeze(entity, 1))
		require.NoError(t, Unfreeze(entity))
		assert.Nil(t, components.Status.Get(entity).Frozen)
		assert.False(t, IsFrozen(entity))
		assert.ErrorIs(t, Unfreeze(entity), components.ErrInvalidOperation)
	})

	t.Run("replaces the current freeze", func(t *testing.T) {
		require.NoError(t, Freeze(entity, 1))
		step(e, 1)
		require.NoError(t, Freeze(entity, 0.5))
		assert.Equal(t, 0.0, components.Status.Get(entity).Frozen.Elapsed())
		step(e, 2)
		assert.False(t, IsFrozen(entity))
	})

	t.Run("rejected while invincible", func(t *testing.T) {
		components.Status.Get(entity).Invincibility = 1
		assert.ErrorIs(t, Freeze(entity, 1), components.ErrInvalidOperation)
		assert.False(t, IsFrozen(entity))
	})
}

func TestFlashColor(t *testing.T) {
	e := newTestArena(t, 0.25)
	entity := spawnCharacter(t, e, components.FactionPlayer, 100, 100, testCharacter(1))
	tint := components.Tint.Get(entity)

	require.NoError(t, FlashColor(entity, cfg.Red, 1))
	assert.True(t, IsColorFlashing(entity))
	assert.Equal(t, cfg.Red, tint.Current)
	assert.ErrorIs(t, FlashColor(entity, cfg.White, 1), components.ErrInvalidOperation)

	require.NoError(t, StopColorFlashing(entity))
	assert.False(t, IsColorFlashing(entity))
	assert.Equal(t, testTint, tint.Current)
	assert.ErrorIs(t, StopColorFlashing(entity), components.ErrInvalidOperation)

	assert.ErrorIs(t, FlashColorIn(entity, cfg.Red, -1, 1), components.ErrInvalidConfiguration)
	assert.False(t, IsColorFlashing(entity))

	require.NoError(t, FlashColorInOut(entity, cfg.Red, 0.25, 0.25, 0.25))
	step(e, 1)
	assert.Equal(t, cfg.Red, tint.Current)
	step(e, 2)
	assert.False(t, IsColorFlashing(entity))
	assert.Equal(t, testTint, tint.Current)
}

func TestStatusEffectsStopWhilePaused(t *testing.T) {
	e := newTestArena(t, 0.25)
	entity := spawnCharacter(t, e, components.FactionPlayer, 100, 100, testCharacter(1))
	require.NoError(t, Freeze(entity, 1))
	require.NoError(t, FlashColor(entity, cfg.Red, 1))
	status := components.Status.Get(entity)

	require.NoError(t, PauseScene(e))
	step(e, 10)
	assert.Equal(t, 0.0, status.Frozen.Elapsed())
	assert.Equal(t, 1.0, status.Flash.Remaining())

	require.NoError(t, UnpauseScene(e))
	step(e, 1)
	assert.Equal(t, 0.25, status.Frozen.Elapsed())
}
