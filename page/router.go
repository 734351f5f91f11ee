package page

import (
	"image"

	cfg "github.com/automoto/cyberfx/config"
	"github.com/automoto/cyberfx/tags"
	"github.com/solarlune/resolv"
)

const cellSize = 16

// Router finds which surface the pointer is over. Section panels sit on top
// of the network background, so a pointer over a section is not over the
// network surface.
type Router struct {
	space *resolv.Space
	probe *resolv.Object
}

func NewRouter() *Router {
	return &Router{}
}

// Place rebuilds the hit-test space for a w x h viewport
func (r *Router) Place(w, h int, rects map[string]image.Rectangle) {
	r.space = resolv.NewSpace(max(w, 1), max(h, 1), cellSize, cellSize)
	for _, id := range Sections {
		rect, ok := rects[id]
		if !ok || rect.Empty() {
			continue
		}
		obj := resolv.NewObject(
			float64(rect.Min.X), float64(rect.Min.Y),
			float64(rect.Dx()), float64(rect.Dy()),
			tags.ResolvSection,
		)
		obj.Data = id
		r.space.Add(obj)
	}
	r.probe = resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	r.space.Add(r.probe)
}

// At returns the id of the surface under (x, y)
func (r *Router) At(x, y float64) string {
	if r.space == nil {
		return cfg.NetworkID
	}
	r.probe.X, r.probe.Y = x, y
	r.probe.Update()

	check := r.probe.Check(0, 0, tags.ResolvSection)
	if check == nil {
		return cfg.NetworkID
	}
	// Check is cell-based, confirm the candidates exactly
	for _, obj := range check.ObjectsByTags(tags.ResolvSection) {
		if x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H {
			if id, ok := obj.Data.(string); ok {
				return id
			}
		}
	}
	return cfg.NetworkID
}

// Objects returns every hit-test object, the probe included
func (r *Router) Objects() []*resolv.Object {
	if r.space == nil {
		return nil
	}
	return r.space.Objects()
}
