package components

import "github.com/yohamta/donburi"

// SurfaceData holds the current backing dimensions of a session's surface.
// There is exactly one per session world.
type SurfaceData struct {
	ID            string
	Width, Height float64
}

var Surface = donburi.NewComponentType[SurfaceData]()
