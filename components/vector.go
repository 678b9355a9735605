package components

import "math"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalized returns the unit vector pointing the same way as v. The zero
// vector stays zero.
func (v Vector) Normalized() Vector {
	l := v.Len()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// WithLen returns v rescaled to length l, keeping its direction.
func (v Vector) WithLen(l float64) Vector {
	return v.Normalized().Scale(l)
}

// ClampLen limits the length of v to max.
func (v Vector) ClampLen(max float64) Vector {
	if v.Len() > max {
		return v.WithLen(max)
	}
	return v
}
