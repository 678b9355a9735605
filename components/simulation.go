package components

import "github.com/yohamta/donburi"

// SimulationData is the per-scene step context. Systems read the delta
// time and the pause snapshot from here instead of consulting global state.
type SimulationData struct {
	DeltaTime float64
	Step      int
	Time      float64 // unpaused simulated seconds

	// ScenePaused is the scene pause flag as it was at the start of the
	// current step.
	ScenePaused bool

	AttacksSpawned int
	HitsApplied    int
}

var Simulation = donburi.NewComponentType[SimulationData]()
