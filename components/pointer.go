package components

import "github.com/yohamta/donburi"

// PointerData is the last known pointer position in surface-local coordinates
type PointerData struct {
	X, Y   float64
	Active bool // false when the pointer has left the surface
}

var Pointer = donburi.NewComponentType[PointerData]()
