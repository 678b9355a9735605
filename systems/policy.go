package systems

import (
	"fmt"
	"math"

	"github.com/automoto/husk/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputMovement steers a character from the scene's input sink.
type InputMovement struct{}

func (InputMovement) Steer(w donburi.World, _ *donburi.Entry) (move, face components.Vector) {
	entry, ok := components.Input.First(w)
	if !ok {
		return components.Vector{}, components.Vector{}
	}
	move = components.Input.Get(entry).Move.ClampLen(1)
	return move, move
}

// ChaseMovement walks toward the nearest opposing character and stops
// once within Proximity of it, always facing it.
type ChaseMovement struct {
	Proximity float64
}

func (c ChaseMovement) Steer(w donburi.World, self *donburi.Entry) (move, face components.Vector) {
	faction := components.Character.Get(self).Faction
	pos := components.Object.Get(self).Center()

	var toTarget components.Vector
	best := math.Inf(1)
	components.Character.Each(w, func(e *donburi.Entry) {
		if e.Entity() == self.Entity() || components.Character.Get(e).Faction == faction {
			return
		}
		d := components.Object.Get(e).Center().Sub(pos)
		if l := d.Len(); l < best {
			best, toTarget = l, d
		}
	})
	if toTarget.IsZero() {
		return components.Vector{}, components.Vector{}
	}

	face = toTarget.Normalized()
	if best > c.Proximity {
		move = face
	}
	return move, face
}

// InputTrigger attacks when the attack button was pressed this frame.
type InputTrigger struct{}

func (InputTrigger) ShouldAttack(w donburi.World, _ *donburi.Entry, _ float64) bool {
	entry, ok := components.Input.First(w)
	return ok && components.Input.Get(entry).AttackPressed
}

func (InputTrigger) Damaged() {}

// IntervalTrigger attacks every Rate seconds of active time. Taking a hit
// starts the wait over.
type IntervalTrigger struct {
	Rate    float64
	elapsed float64
}

func NewIntervalTrigger(rate float64) (*IntervalTrigger, error) {
	if !(rate > 0) {
		return nil, fmt.Errorf("attack rate %v: %w", rate, components.ErrInvalidConfiguration)
	}
	return &IntervalTrigger{Rate: rate}, nil
}

func (t *IntervalTrigger) ShouldAttack(_ donburi.World, _ *donburi.Entry, dt float64) bool {
	t.elapsed += dt
	if t.elapsed < t.Rate {
		return false
	}
	t.elapsed = 0
	return true
}

func (t *IntervalTrigger) Damaged() {
	t.elapsed = 0
}

// Elapsed is the time since the last attack or hit.
func (t *IntervalTrigger) Elapsed() float64 {
	return t.elapsed
}

// UpdateCharacters runs the movement and trigger policies of every
// character that is free to act, then spawns the requested attacks.
func UpdateCharacters(ecs *ecs.ECS) {
	dt := deltaTime(ecs)

	var attackers []*donburi.Entry
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		if IsPaused(e) || IsFrozen(e) {
			return
		}
		character := components.Character.Get(e)

		if character.Movement != nil {
			move, face := character.Movement.Steer(ecs.World, e)
			if !face.IsZero() {
				character.Heading = face.Normalized()
			}
			if !move.IsZero() {
				components.Object.Get(e).Translate(move.ClampLen(1).Scale(character.MoveSpeed * dt))
			}
		}

		if character.Trigger != nil && character.Trigger.ShouldAttack(ecs.World, e, dt) {
			attackers = append(attackers, e)
		}
	})

	for _, e := range attackers {
		if _, alive := ActiveAttack(ecs, e); alive {
			continue
		}
		if _, err := SpawnAttack(ecs, e, components.Character.Get(e).Attack); err != nil {
			debugf("[attack] entity %v: %v", e.Entity(), err)
		}
	}

	GetOrCreateInput(ecs).AttackPressed = false
}
