package systems

import (
	"github.com/automoto/husk/components"
	cfg "github.com/automoto/husk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Action state from the previous frame, for edge detection
var previousActions [cfg.ActionCount]bool

// UpdateInput polls keyboard and gamepads into the input sink.
// Must run BEFORE the combat systems in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	current := pollActions(gamepadIDs)

	var move components.Vector
	if current[cfg.ActionMoveLeft] {
		move.X--
	}
	if current[cfg.ActionMoveRight] {
		move.X++
	}
	if current[cfg.ActionMoveUp] {
		move.Y--
	}
	if current[cfg.ActionMoveDown] {
		move.Y++
	}
	input.Move = move.Normalized()

	// Edge-triggered actions stay set until a system consumes them.
	justPressed := func(id cfg.ActionID) bool {
		return current[id] && !previousActions[id]
	}
	if justPressed(cfg.ActionAttack) {
		input.AttackPressed = true
	}
	if justPressed(cfg.ActionPause) {
		input.PausePressed = true
	}
	if justPressed(cfg.ActionToggleDebug) {
		input.ToggleDebug = true
	}

	previousActions = current
}

func pollActions(gamepads []ebiten.GamepadID) [cfg.ActionCount]bool {
	var current [cfg.ActionCount]bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
			}
		}

		for _, gpID := range gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	left, right, up, down := getAnalogStickState(gamepads)
	current[cfg.ActionMoveLeft] = current[cfg.ActionMoveLeft] || left
	current[cfg.ActionMoveRight] = current[cfg.ActionMoveRight] || right
	current[cfg.ActionMoveUp] = current[cfg.ActionMoveUp] || up
	current[cfg.ActionMoveDown] = current[cfg.ActionMoveDown] || down

	return current
}

func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}

	return
}
