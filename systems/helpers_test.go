package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/husk/components"
	cfg "github.com/automoto/husk/config"
	"github.com/automoto/husk/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var testTint = color.RGBA{R: 10, G: 20, B: 30, A: 255}

// newTestArena builds a world with the combat systems, a collision space and
// a camera resting at (320, 320).
func newTestArena(t *testing.T, dt float64) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	AddCombatSystems(e)
	factory.CreateScene(e, dt)
	factory.CreateSpace(e, 640, 640, 16, 16)
	factory.CreateCamera(e, math.Vec2{X: 320, Y: 320}, 1)
	return e
}

func testAttack(windup, cooldown, duration float64) components.AttackConfig {
	return components.AttackConfig{
		Duration: duration,
		Windup:   windup,
		Cooldown: cooldown,
		Width:    16,
		Height:   16,
	}
}

func testCharacter(weight float64) cfg.CharacterConfig {
	return cfg.CharacterConfig{
		Weight: weight,
		Width:  16,
		Height: 16,
		Tint:   testTint,
		Attack: testAttack(0.2, 0.1, 0.6),
	}
}

func spawnCharacter(t *testing.T, e *ecs.ECS, faction components.Faction, x, y float64, c cfg.CharacterConfig) *donburi.Entry {
	t.Helper()
	entry, err := factory.CreateCharacter(e, faction, x, y, c, nil, nil)
	require.NoError(t, err)
	return entry
}

func step(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		e.Update()
	}
}
