package components

import (
	"fmt"
	"image/color"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// StatusData holds every timed effect on a character.
//
// A character is frozen while Frozen is set or Knockback is non-zero, and
// invincible while Invincibility is positive.
type StatusData struct {
	Frozen         *Timer // manual freeze, nil when not frozen
	Knockback      Vector
	Invincibility  float64
	PendingStagger float64 // freeze to apply when the knockback dies out
	Flash          *ColorFlash
}

var Status = donburi.NewComponentType[StatusData]()

type FlashPhase int

const (
	FlashBlendIn FlashPhase = iota
	FlashHold
	FlashBlendOut
)

func (p FlashPhase) String() string {
	switch p {
	case FlashBlendIn:
		return "blend-in"
	case FlashHold:
		return "hold"
	case FlashBlendOut:
		return "blend-out"
	}
	return "unknown"
}

// ColorFlash drives a phased tint: blend (or jump) to Color, hold it, then
// optionally blend back to the base tint. Zero-length phases are skipped.
type ColorFlash struct {
	Color color.RGBA
	Phase FlashPhase

	durations [3]float64
	timer     *Timer
	blend     *gween.Tween
	progress  float32
	done      bool
}

// NewColorFlash builds a flash with the given phase durations in seconds.
// A flash whose phases are all zero is done immediately.
func NewColorFlash(c color.RGBA, in, hold, out float64) (*ColorFlash, error) {
	for _, d := range []float64{in, hold, out} {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("flash phase duration %v must be finite and non-negative: %w", d, ErrInvalidConfiguration)
		}
	}
	f := &ColorFlash{
		Color:     c,
		durations: [3]float64{in, hold, out},
	}
	f.enter(FlashBlendIn)
	f.done = f.settle()
	return f, nil
}

func (f *ColorFlash) enter(p FlashPhase) {
	f.Phase = p
	f.timer = nil
	f.blend = nil
	f.progress = 0

	d := f.durations[p]
	if d <= 0 {
		return
	}
	f.timer, _ = NewTimer(d)
	if p != FlashHold {
		f.blend = gween.New(0, 1, float32(d), ease.Linear)
	}
}

// settle moves past zero-length phases and reports whether the flash ended.
func (f *ColorFlash) settle() bool {
	for f.timer == nil {
		if f.Phase == FlashBlendOut {
			return true
		}
		f.enter(f.Phase + 1)
	}
	return false
}

// Advance moves the current phase forward by dt unless paused and reports
// whether the whole flash has finished.
func (f *ColorFlash) Advance(dt float64, paused bool) bool {
	if f.done || paused {
		return f.done
	}
	f.timer.Advance(dt, false)
	if f.blend != nil {
		f.progress, _ = f.blend.Update(float32(dt))
	}
	if !f.timer.IsComplete() {
		return false
	}
	f.timer = nil
	f.done = f.settle()
	return f.done
}

func (f *ColorFlash) Done() bool { return f.done }

// Remaining is the unpaused time left in the current phase.
func (f *ColorFlash) Remaining() float64 {
	if f.timer == nil {
		return 0
	}
	return f.timer.Remaining()
}

// Tint returns the color to show for the current phase given the base tint.
func (f *ColorFlash) Tint(base color.RGBA) color.RGBA {
	if f.done {
		return base
	}
	switch f.Phase {
	case FlashBlendIn:
		return LerpColor(base, f.Color, float64(f.progress))
	case FlashBlendOut:
		return LerpColor(f.Color, base, float64(f.progress))
	}
	return f.Color
}
