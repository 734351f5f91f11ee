package session

import "github.com/automoto/cyberfx/render"

// Surface is a host-provided drawing target identified by a string id
type Surface interface {
	Canvas() render.Canvas

	// ContainerSize is the size of the element that immediately contains the surface
	ContainerSize() (w, h float64)

	// Origin is the surface's top-left corner in host (client) coordinates
	Origin() (x, y float64)

	// SetSize reallocates the drawing buffer. Content is not preserved.
	SetSize(w, h float64)
}

// Host resolves surfaces by id and reports the viewport size
type Host interface {
	Lookup(id string) (Surface, bool)
	ViewportSize() (w, h float64)
}
