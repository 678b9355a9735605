package components

import "github.com/yohamta/donburi"

type PauseState int

const (
	PauseNone PauseState = iota
	PauseIndefinite
	PauseTimed
)

func (s PauseState) String() string {
	switch s {
	case PauseNone:
		return "unpaused"
	case PauseIndefinite:
		return "paused"
	case PauseTimed:
		return "paused (timed)"
	}
	return "unknown"
}

// ScenePauseData is the scene-wide pause flag. Only the pause systems write
// it; a timed pause counts Remaining down to zero and then unpauses.
type ScenePauseData struct {
	State     PauseState
	Remaining float64
}

func (p *ScenePauseData) IsPaused() bool {
	return p.State != PauseNone
}

var ScenePause = donburi.NewComponentType[ScenePauseData]()

// PausableData marks an entity whose timers stop while the scene is paused.
// Every entity carrying it receives the pause broadcast.
type PausableData struct {
	Paused bool
}

var Pausable = donburi.NewComponentType[PausableData]()
