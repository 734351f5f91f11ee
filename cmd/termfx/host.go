package main

import (
	"math"

	"github.com/automoto/cyberfx/render"
	"github.com/automoto/cyberfx/render/termcanvas"
	"github.com/automoto/cyberfx/session"
)

// termHost exposes the whole terminal as a single surface
type termHost struct {
	id     string
	canvas *termcanvas.Canvas
	cols   int
	rows   int
}

func newTermHost(id string, cols, rows int, cellW, cellH float64) *termHost {
	return &termHost{
		id:     id,
		canvas: termcanvas.New(cols, rows, cellW, cellH),
		cols:   cols,
		rows:   rows,
	}
}

func (h *termHost) Lookup(id string) (session.Surface, bool) {
	if id != h.id {
		return nil, false
	}
	return h, true
}

func (h *termHost) ViewportSize() (float64, float64) {
	return float64(h.cols) * h.canvas.CellWidth, float64(h.rows) * h.canvas.CellHeight
}

// resize records a new terminal size; the session reallocates the buffer
func (h *termHost) resize(cols, rows int) {
	h.cols, h.rows = cols, rows
}

// pixel maps a terminal cell to the surface position of its centre
func (h *termHost) pixel(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * h.canvas.CellWidth, (float64(row) + 0.5) * h.canvas.CellHeight
}

func (h *termHost) Canvas() render.Canvas {
	return h.canvas
}

func (h *termHost) ContainerSize() (float64, float64) {
	return h.ViewportSize()
}

func (h *termHost) Origin() (float64, float64) {
	return 0, 0
}

func (h *termHost) SetSize(w, hh float64) {
	h.canvas.Resize(int(math.Ceil(w/h.canvas.CellWidth)), int(math.Ceil(hh/h.canvas.CellHeight)))
}
