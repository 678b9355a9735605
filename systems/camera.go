package systems

import (
	"fmt"
	"math"

	"github.com/automoto/husk/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func cameraEntry(ecs *ecs.ECS) (*donburi.Entry, error) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("no camera in scene: %w", components.ErrInvalidOperation)
	}
	return entry, nil
}

// Shake starts shaking the camera for duration seconds. A shake already in
// progress is stopped first so the new one starts from the rest position.
func Shake(ecs *ecs.ECS, duration, magnitude float64) error {
	if !(duration > 0) || !(magnitude > 0) {
		return fmt.Errorf("shake duration %v magnitude %v: %w", duration, magnitude, components.ErrInvalidConfiguration)
	}
	entry, err := cameraEntry(ecs)
	if err != nil {
		return err
	}
	timer, err := components.NewTimer(duration)
	if err != nil {
		return err
	}

	if entry.HasComponent(components.ScreenShake) {
		if err := StopShaking(ecs); err != nil {
			return err
		}
	}

	camera := components.Camera.Get(entry)
	donburi.Add(entry, components.ScreenShake, &components.ScreenShakeData{
		Timer:     timer,
		Magnitude: magnitude,
		Rest:      camera.Position,
	})
	debugf("[camera] shake %.2fs magnitude %.2f", duration, magnitude)
	return nil
}

// StopShaking ends the shake and puts the camera back at rest.
func StopShaking(ecs *ecs.ECS) error {
	entry, err := cameraEntry(ecs)
	if err != nil {
		return err
	}
	if !entry.HasComponent(components.ScreenShake) {
		return fmt.Errorf("stop shaking: not shaking: %w", components.ErrInvalidOperation)
	}
	components.Camera.Get(entry).Position = components.ScreenShake.Get(entry).Rest
	entry.RemoveComponent(components.ScreenShake)
	return nil
}

func IsShaking(ecs *ecs.ECS) bool {
	entry, ok := components.Camera.First(ecs.World)
	return ok && entry.HasComponent(components.ScreenShake)
}

// UpdateCamera alternates a shaking camera between its rest position and a
// random offset, one move per unpaused step.
func UpdateCamera(ecs *ecs.ECS) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok || !entry.HasComponent(components.ScreenShake) || IsPaused(entry) {
		return
	}
	camera := components.Camera.Get(entry)
	shake := components.ScreenShake.Get(entry)

	if camera.Position == shake.Rest {
		angle := camera.Rand.Float64() * 2 * math.Pi
		camera.Position.X = shake.Rest.X + math.Cos(angle)*shake.Magnitude
		camera.Position.Y = shake.Rest.Y + math.Sin(angle)*shake.Magnitude
	} else {
		camera.Position = shake.Rest
	}

	shake.Timer.Advance(deltaTime(ecs), false)
	if shake.Timer.IsComplete() {
		camera.Position = shake.Rest
		entry.RemoveComponent(components.ScreenShake)
	}
}
