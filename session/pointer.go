package session

import (
	"github.com/automoto/cyberfx/components"
	"github.com/yohamta/donburi"
)

// Pointer tracks the pointer position relative to one surface
type Pointer struct {
	surface Surface
	entry   *donburi.Entry
}

func newPointer(surface Surface, entry *donburi.Entry) *Pointer {
	return &Pointer{surface: surface, entry: entry}
}

// Move records a pointer position given in host coordinates
func (p *Pointer) Move(clientX, clientY float64) {
	ox, oy := p.surface.Origin()
	d := components.Pointer.Get(p.entry)
	d.X = clientX - ox
	d.Y = clientY - oy
	d.Active = true
}

// Leave marks the pointer as absent
func (p *Pointer) Leave() {
	d := components.Pointer.Get(p.entry)
	d.Active = false
}

// Position returns the surface-relative pointer position, ok is false while
// the pointer is absent
func (p *Pointer) Position() (x, y float64, ok bool) {
	d := components.Pointer.Get(p.entry)
	return d.X, d.Y, d.Active
}
