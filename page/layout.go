// Package page arranges the animated surfaces of the desktop page and routes
// the pointer to the surface underneath it.
package page

import (
	"image"
	"math"

	cfg "github.com/automoto/cyberfx/config"
)

// Sections lists the container surfaces in grid order
var Sections = []string{
	cfg.FirewallID,
	cfg.DataTransferID,
	cfg.SecurityID,
	cfg.SkillsID,
	cfg.AboutCircuitID,
	cfg.ContactCircuitID,
}

// Layout returns the on-screen rectangle of every surface for a w x h
// viewport. The network surface covers the whole viewport, the sections sit
// in a grid below the hero area.
func Layout(w, h int, pc cfg.PageConfig) map[string]image.Rectangle {
	rects := map[string]image.Rectangle{
		cfg.NetworkID: image.Rect(0, 0, w, h),
	}

	cols := pc.Columns
	if cols < 1 {
		cols = 1
	}
	rows := int(math.Ceil(float64(len(Sections)) / float64(cols)))
	top := int(float64(h) * pc.HeroRatio)

	cellW := max(0, (w-2*pc.Margin-(cols-1)*pc.Gap)/cols)
	cellH := max(0, (h-top-pc.Margin-(rows-1)*pc.Gap)/rows)

	for i, id := range Sections {
		col, row := i%cols, i/cols
		x := pc.Margin + col*(cellW+pc.Gap)
		y := top + row*(cellH+pc.Gap)
		rects[id] = image.Rect(x, y, x+cellW, y+cellH)
	}
	return rects
}
