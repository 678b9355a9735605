package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Center is the entity position used by combat: the middle of its box.
func (o ObjectData) Center() Vector {
	return Vector{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// MoveTo places the object so that its center is at c.
func (o ObjectData) MoveTo(c Vector) {
	o.X = c.X - o.W/2
	o.Y = c.Y - o.H/2
	o.Update()
}

// Translate moves the object by d.
func (o ObjectData) Translate(d Vector) {
	o.X += d.X
	o.Y += d.Y
	o.Update()
}

// Overlaps is the narrow-phase box test behind the space's cell query.
func (o ObjectData) Overlaps(other *resolv.Object) bool {
	return o.X < other.X+other.W && other.X < o.X+o.W &&
		o.Y < other.Y+other.H && other.Y < o.Y+o.H
}

var Object = donburi.NewComponentType[ObjectData]()
