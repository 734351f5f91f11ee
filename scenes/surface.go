package scenes

import (
	"image"

	"github.com/automoto/cyberfx/render"
	"github.com/automoto/cyberfx/render/ebitencanvas"
	"github.com/automoto/cyberfx/session"
	"github.com/hajimehoshi/ebiten/v2"
)

// sectionSurface backs one session with an offscreen image placed at rect
type sectionSurface struct {
	rect   image.Rectangle
	img    *ebiten.Image
	canvas *ebitencanvas.Canvas
}

func newSectionSurface(rect image.Rectangle) *sectionSurface {
	return &sectionSurface{rect: rect, canvas: ebitencanvas.New(nil)}
}

func (s *sectionSurface) Canvas() render.Canvas {
	return s.canvas
}

func (s *sectionSurface) ContainerSize() (float64, float64) {
	return float64(s.rect.Dx()), float64(s.rect.Dy())
}

func (s *sectionSurface) Origin() (float64, float64) {
	return float64(s.rect.Min.X), float64(s.rect.Min.Y)
}

func (s *sectionSurface) SetSize(w, h float64) {
	iw, ih := max(1, int(w)), max(1, int(h))
	if s.img != nil {
		if b := s.img.Bounds(); b.Dx() == iw && b.Dy() == ih {
			s.img.Clear()
			return
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(iw, ih)
	s.canvas.SetImage(s.img)
}

// pageHost resolves section surfaces for the sessions
type pageHost struct {
	surfaces map[string]*sectionSurface
	width    int
	height   int
}

func newPageHost() *pageHost {
	return &pageHost{surfaces: make(map[string]*sectionSurface)}
}

func (h *pageHost) Lookup(id string) (session.Surface, bool) {
	s, ok := h.surfaces[id]
	if !ok {
		return nil, false
	}
	return s, true
}

func (h *pageHost) ViewportSize() (float64, float64) {
	return float64(h.width), float64(h.height)
}

// place moves every surface to its new rectangle. Buffers are reallocated by
// the sessions on Resize.
func (h *pageHost) place(w, hh int, rects map[string]image.Rectangle) {
	h.width, h.height = w, hh
	for id, rect := range rects {
		if s, ok := h.surfaces[id]; ok {
			s.rect = rect
			continue
		}
		h.surfaces[id] = newSectionSurface(rect)
	}
}
