package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// TintData is the sprite tint sink. Renderers only read Current; the
// status systems write it and restore Default when a flash ends.
type TintData struct {
	Default color.RGBA
	Current color.RGBA
}

var Tint = donburi.NewComponentType[TintData]()

// LerpColor blends linearly from a to b; t is clamped to [0, 1].
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}
