package components

import "github.com/yohamta/donburi"

// InputData is the input-polling sink. A front end writes it once per
// frame; the character system consumes AttackPressed.
type InputData struct {
	Move          Vector
	AttackPressed bool
	PausePressed  bool
	ToggleDebug   bool
}

var Input = donburi.NewComponentType[InputData]()
