package components

import "fmt"

// Timer is a pause-aware elapsed-time accumulator, the building block of
// every timed combat effect. A zero-length phase is never modeled as a
// Timer: callers treat it as already complete.
type Timer struct {
	duration float64
	elapsed  float64
}

// NewTimer creates a timer that completes after duration seconds of
// unpaused time.
func NewTimer(duration float64) (*Timer, error) {
	// Written as a negation so NaN is rejected too.
	if !(duration > 0) {
		return nil, fmt.Errorf("timer duration %v must be greater than zero: %w", duration, ErrInvalidConfiguration)
	}
	return &Timer{duration: duration}, nil
}

// Advance adds dt to the elapsed time unless the owner is paused.
func (t *Timer) Advance(dt float64, paused bool) {
	if paused || dt <= 0 {
		return
	}
	t.elapsed += dt
}

func (t *Timer) Duration() float64 { return t.duration }

func (t *Timer) Elapsed() float64 { return t.elapsed }

// Remaining is the unpaused time left before completion, never negative.
func (t *Timer) Remaining() float64 {
	if r := t.duration - t.elapsed; r > 0 {
		return r
	}
	return 0
}

func (t *Timer) IsComplete() bool {
	return t.elapsed >= t.duration
}

// Progress is the completed fraction in [0, 1].
func (t *Timer) Progress() float64 {
	p := t.elapsed / t.duration
	if p > 1 {
		return 1
	}
	return p
}
