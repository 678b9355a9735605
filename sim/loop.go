package sim

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/automoto/husk/components"
	"github.com/automoto/husk/systems"
	"github.com/automoto/husk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Summary is a snapshot of a running simulation.
type Summary struct {
	Steps          int
	Time           float64
	AttacksSpawned int
	HitsApplied    int
	Paused         bool
	Characters     []CharacterSummary
}

type CharacterSummary struct {
	Entity       donburi.Entity
	Faction      components.Faction
	X, Y         float64
	Frozen       bool
	Invincible   bool
	AttackActive bool
}

// Loop drives an arena one fixed step at a time.
type Loop struct {
	ecs      *ecs.ECS
	tickRate int
	running  atomic.Bool
	stopChan chan struct{}
}

func NewLoop(e *ecs.ECS, tickRate int) *Loop {
	return &Loop{
		ecs:      e,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run steps the simulation in real time until Stop is called or maxSteps
// steps have run. A maxSteps of zero means no limit.
func (l *Loop) Run(maxSteps int) {
	l.running.Store(true)
	defer l.running.Store(false)
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("[sim] loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Println("[sim] loop stopped")
			return
		case <-ticker.C:
			l.ecs.Update()
			if maxSteps > 0 && systems.GetOrCreateSimulation(l.ecs).Step >= maxSteps {
				return
			}
		}
	}
}

// RunSteps runs n steps as fast as possible.
func (l *Loop) RunSteps(n int) {
	for i := 0; i < n; i++ {
		l.ecs.Update()
	}
}

// IsRunning reports whether Run is stepping the simulation.
func (l *Loop) IsRunning() bool {
	return l.running.Load()
}

func (l *Loop) Stop() {
	close(l.stopChan)
}

func (l *Loop) Summary() Summary {
	s := systems.GetOrCreateSimulation(l.ecs)
	summary := Summary{
		Steps:          s.Step,
		Time:           s.Time,
		AttacksSpawned: s.AttacksSpawned,
		HitsApplied:    s.HitsApplied,
		Paused:         systems.IsScenePaused(l.ecs),
	}

	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.Player, tags.Enemy} {
		tag.Each(l.ecs.World, func(e *donburi.Entry) {
			_, attacking := systems.ActiveAttack(l.ecs, e)
			c := components.Object.Get(e).Center()
			summary.Characters = append(summary.Characters, CharacterSummary{
				Entity:       e.Entity(),
				Faction:      components.Character.Get(e).Faction,
				X:            c.X,
				Y:            c.Y,
				Frozen:       systems.IsFrozen(e),
				Invincible:   systems.IsInvincible(e),
				AttackActive: attacking,
			})
		})
	}
	return summary
}

// Log writes the summary the way the headless runner reports it.
func (s Summary) Log() {
	log.Printf("[sim] %d steps, %.2fs simulated, %d attacks, %d hits, paused=%v",
		s.Steps, s.Time, s.AttacksSpawned, s.HitsApplied, s.Paused)
	for _, c := range s.Characters {
		log.Printf("[sim]   %v %s at (%.1f, %.1f) frozen=%v invincible=%v attacking=%v",
			c.Entity, c.Faction, c.X, c.Y, c.Frozen, c.Invincible, c.AttackActive)
	}
}
