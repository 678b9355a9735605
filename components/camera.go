package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Rand     *rand.Rand // shake directions
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData tracks an active shake on the camera. The camera
// alternates between Rest and a random offset of Magnitude.
type ScreenShakeData struct {
	Timer     *Timer
	Magnitude float64
	Rest      math.Vec2
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
