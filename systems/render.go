package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/husk/components"
	cfg "github.com/automoto/husk/config"
	"github.com/automoto/husk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cameraOffset converts world coordinates to screen coordinates.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

// DrawCharacters draws every character as a box in its current tint, with
// a short line showing its heading.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		tint := components.Tint.Get(e)
		character := components.Character.Get(e)

		x, y := obj.X+camX, obj.Y+camY
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), tint.Current, false)

		c := obj.Center()
		head := c.Add(character.Heading.Scale(obj.W))
		vector.StrokeLine(screen,
			float32(c.X+camX), float32(c.Y+camY),
			float32(head.X+camX), float32(head.Y+camY),
			1, color.Black, false)

		// Manual freezes get a bar that drains as the freeze runs out.
		if frozen := components.Status.Get(e).Frozen; frozen != nil {
			w := obj.W * (1 - frozen.Progress())
			vector.FillRect(screen, float32(x), float32(y+obj.H+2), float32(w), 2, cfg.LightBlue, false)
		}
	})
}

// DrawHitboxes outlines enabled hitboxes when the debug overlay is on.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	tags.Attack.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		x, y := obj.X+camX, obj.Y+camY
		if IsHitboxEnabled(e) {
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), cfg.HitboxOn, false)
		} else {
			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, cfg.HitboxOn, false)
		}

		// The box is axis-aligned for collision; the swing direction is drawn
		// from the attack's rotation, where 0 degrees points down.
		c := obj.Center()
		dx, dy := swingDirection(components.Attack.Get(e).Rotation)
		reach := math.Max(obj.W, obj.H) / 2
		vector.StrokeLine(screen,
			float32(c.X+camX), float32(c.Y+camY),
			float32(c.X+dx*reach+camX), float32(c.Y+dy*reach+camY),
			1, color.Black, false)
	})
}

// swingDirection turns a rotation in degrees back into a unit direction.
func swingDirection(rotation float64) (float64, float64) {
	rad := rotation * math.Pi / 180
	return -math.Sin(rad), math.Cos(rad)
}

// DrawDebug prints the step context in the top-left corner.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	sim := GetOrCreateSimulation(ecs)
	pause := GetOrCreateScenePause(ecs)

	msg := fmt.Sprintf("step %d  t=%.2fs  %s\nattacks %d  hits %d",
		sim.Step, sim.Time, pause.State, sim.AttacksSpawned, sim.HitsApplied)
	if IsShaking(ecs) {
		msg += "  shake"
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
