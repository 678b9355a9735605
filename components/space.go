package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the collision space every character and hitbox is added to.
var Space = donburi.NewComponentType[resolv.Space]()
