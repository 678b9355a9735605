package systems

import (
	"fmt"

	"github.com/automoto/husk/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PauseScene pauses the scene until UnpauseScene is called.
func PauseScene(ecs *ecs.ECS) error {
	pause := GetOrCreateScenePause(ecs)
	if pause.IsPaused() {
		return fmt.Errorf("pause scene: already %s: %w", pause.State, components.ErrInvalidOperation)
	}
	pause.State = components.PauseIndefinite
	pause.Remaining = 0
	broadcastPause(ecs, true)
	debugf("[pause] scene paused")
	return nil
}

// PauseSceneFor pauses the scene for d seconds of step time.
func PauseSceneFor(ecs *ecs.ECS, d float64) error {
	if !(d > 0) {
		return fmt.Errorf("pause scene for %v: %w", d, components.ErrInvalidConfiguration)
	}
	pause := GetOrCreateScenePause(ecs)
	if pause.IsPaused() {
		return fmt.Errorf("pause scene: already %s: %w", pause.State, components.ErrInvalidOperation)
	}
	pause.State = components.PauseTimed
	pause.Remaining = d
	broadcastPause(ecs, true)
	debugf("[pause] scene paused for %.3fs", d)
	return nil
}

func UnpauseScene(ecs *ecs.ECS) error {
	pause := GetOrCreateScenePause(ecs)
	if !pause.IsPaused() {
		return fmt.Errorf("unpause scene: not paused: %w", components.ErrInvalidOperation)
	}
	pause.State = components.PauseNone
	pause.Remaining = 0
	broadcastPause(ecs, false)
	debugf("[pause] scene unpaused")
	return nil
}

func IsScenePaused(ecs *ecs.ECS) bool {
	return GetOrCreateScenePause(ecs).IsPaused()
}

// broadcastPause writes the flag to every pausable entity before returning.
func broadcastPause(ecs *ecs.ECS, paused bool) {
	components.Pausable.Each(ecs.World, func(e *donburi.Entry) {
		components.Pausable.Get(e).Paused = paused
	})
}

// pauseEpsilon absorbs float residue when a timed pause is counted down.
const pauseEpsilon = 1e-9

// UpdateScenePause records the pause flag the rest of the step works with.
func UpdateScenePause(ecs *ecs.ECS) {
	GetOrCreateSimulation(ecs).ScenePaused = IsScenePaused(ecs)
}

// countDownScenePause charges a step that ran paused against a timed pause
// and unpauses once the full duration has been spent paused. A pause that
// starts partway through a step is counted from the next step.
func countDownScenePause(ecs *ecs.ECS) {
	sim := GetOrCreateSimulation(ecs)
	pause := GetOrCreateScenePause(ecs)
	if !sim.ScenePaused || pause.State != components.PauseTimed {
		return
	}
	pause.Remaining -= sim.DeltaTime
	if pause.Remaining <= pauseEpsilon {
		_ = UnpauseScene(ecs)
	}
}

// UpdatePauseInput toggles an indefinite pause from the input sink.
func UpdatePauseInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	if !input.PausePressed {
		return
	}
	input.PausePressed = false

	pause := GetOrCreateScenePause(ecs)
	switch pause.State {
	case components.PauseNone:
		_ = PauseScene(ecs)
	case components.PauseIndefinite:
		_ = UnpauseScene(ecs)
	}
	// A timed hit-stutter ignores the toggle and runs out on its own.
}
