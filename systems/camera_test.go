package systems

import (
	"math"
	"testing"

	"github.com/automoto/husk/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

var testRest = dmath.Vec2{X: 320, Y: 320}

func TestShakeRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name                string
		duration, magnitude float64
	}{
		{"zero duration", 0, 1},
		{"negative duration", -1, 1},
		{"zero magnitude", 1, 0},
		{"negative magnitude", 1, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestArena(t, 0.25)
			assert.ErrorIs(t, Shake(e, tt.duration, tt.magnitude), components.ErrInvalidConfiguration)
			assert.False(t, IsShaking(e))
		})
	}
}

func TestShakeAlternatesAndRestores(t *testing.T) {
	e := newTestArena(t, 0.25)
	entry, ok := components.Camera.First(e.World)
	require.True(t, ok)

	require.NoError(t, Shake(e, 1, 2))
	assert.True(t, IsShaking(e))

	for i, displaced := range []bool{true, false, true} {
		step(e, 1)
		pos := components.Camera.Get(entry).Position
		if displaced {
			offset := math.Hypot(pos.X-testRest.X, pos.Y-testRest.Y)
			assert.InDelta(t, 2, offset, 1e-9, "step %d", i+1)
		} else {
			assert.Equal(t, testRest, pos, "step %d", i+1)
		}
	}

	step(e, 1)
	assert.False(t, IsShaking(e))
	assert.Equal(t, testRest, components.Camera.Get(entry).Position)
}

func TestShakeRestartAndStop(t *testing.T) {
	e := newTestArena(t, 0.25)
	entry, ok := components.Camera.First(e.World)
	require.True(t, ok)

	assert.ErrorIs(t, StopShaking(e), components.ErrInvalidOperation)

	require.NoError(t, Shake(e, 1, 2))
	step(e, 1)
	require.NotEqual(t, testRest, components.Camera.Get(entry).Position)

	require.NoError(t, Shake(e, 1, 4))
	assert.Equal(t, testRest, components.Camera.Get(entry).Position, "restart begins at rest")
	assert.Equal(t, 4.0, components.ScreenShake.Get(entry).Magnitude)

	step(e, 1)
	require.NoError(t, StopShaking(e))
	assert.False(t, IsShaking(e))
	assert.Equal(t, testRest, components.Camera.Get(entry).Position)
}

func TestShakeFreezesWithScene(t *testing.T) {
	e := newTestArena(t, 0.25)
	entry, ok := components.Camera.First(e.World)
	require.True(t, ok)

	require.NoError(t, Shake(e, 1, 2))
	require.NoError(t, PauseSceneFor(e, 1))
	step(e, 3)
	assert.Equal(t, testRest, components.Camera.Get(entry).Position)
	assert.Equal(t, 0.0, components.ScreenShake.Get(entry).Timer.Elapsed())
	assert.True(t, IsShaking(e))
}
