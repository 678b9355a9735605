package scenes

import (
	"testing"

	"github.com/automoto/husk/assets"
	"github.com/automoto/husk/components"
	"github.com/automoto/husk/systems"
	"github.com/automoto/husk/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestNewArena(t *testing.T) {
	arena, err := assets.LoadEmbeddedArena("pit")
	require.NoError(t, err)

	e, err := NewArena(arena, 7)
	require.NoError(t, err)

	players, enemies := 0, 0
	tags.Player.Each(e.World, func(*donburi.Entry) { players++ })
	tags.Enemy.Each(e.World, func(*donburi.Entry) { enemies++ })
	assert.Equal(t, 1, players)
	assert.Equal(t, 3, enemies)
	_, ok := components.Camera.First(e.World)
	assert.True(t, ok)
	_, ok = components.Space.First(e.World)
	assert.True(t, ok)

	e.Update()
	assert.Equal(t, 1, systems.GetOrCreateSimulation(e).Step)
}

func TestNewArenaRejectsBadArena(t *testing.T) {
	tests := []struct {
		name  string
		arena *assets.Arena
	}{
		{name: "nil"},
		{name: "no area", arena: &assets.Arena{Spawns: []assets.Spawn{{Faction: components.FactionPlayer}}}},
		{name: "no player", arena: &assets.Arena{Width: 100, Height: 100, Spawns: []assets.Spawn{{Faction: components.FactionEnemy}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewArena(tt.arena, 1)
			assert.ErrorIs(t, err, components.ErrInvalidConfiguration)
		})
	}
}
