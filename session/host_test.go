package session

import "github.com/automoto/cyberfx/render"

type fakeSurface struct {
	rec        *render.Recorder
	w, h       float64
	ox, oy     float64
	bufW, bufH float64
	resizes    int
}

func newFakeSurface(w, h float64) *fakeSurface {
	return &fakeSurface{rec: render.NewRecorder(), w: w, h: h}
}

func (f *fakeSurface) Canvas() render.Canvas {
	return f.rec
}

func (f *fakeSurface) ContainerSize() (float64, float64) {
	return f.w, f.h
}

func (f *fakeSurface) Origin() (float64, float64) {
	return f.ox, f.oy
}

func (f *fakeSurface) SetSize(w, h float64) {
	f.bufW, f.bufH = w, h
	f.resizes++
}

type fakeHost struct {
	surfaces map[string]*fakeSurface
	vw, vh   float64
}

func newFakeHost(vw, vh float64) *fakeHost {
	return &fakeHost{surfaces: make(map[string]*fakeSurface), vw: vw, vh: vh}
}

func (h *fakeHost) add(id string, w, hh float64) *fakeSurface {
	s := newFakeSurface(w, hh)
	h.surfaces[id] = s
	return s
}

func (h *fakeHost) Lookup(id string) (Surface, bool) {
	s, ok := h.surfaces[id]
	if !ok {
		return nil, false
	}
	return s, true
}

func (h *fakeHost) ViewportSize() (float64, float64) {
	return h.vw, h.vh
}
