package systems

import (
	"github.com/automoto/cyberfx/components"
	cfg "github.com/automoto/cyberfx/config"
	"github.com/automoto/cyberfx/render"
)

// DrawBackground repaints the surface at the start of a frame
func DrawBackground(c render.Canvas, s *components.SurfaceData, bg cfg.BackgroundConfig) {
	switch bg.Mode {
	case cfg.BackgroundFade:
		c.FillRect(0, 0, s.Width, s.Height, bg.Fill)
	case cfg.BackgroundGrid:
		c.ClearRect(0, 0, s.Width, s.Height)
		drawTraceGrid(c, s, bg)
	default:
		c.ClearRect(0, 0, s.Width, s.Height)
	}
}

// drawTraceGrid draws the static circuit-trace grid, rows first
func drawTraceGrid(c render.Canvas, s *components.SurfaceData, bg cfg.BackgroundConfig) {
	if bg.GridSpacing <= 0 {
		return
	}
	for y := 0.0; y < s.Height; y += bg.GridSpacing {
		c.StrokeLine(0, y, s.Width, y, bg.GridWidth, bg.GridColor)
	}
	for x := 0.0; x < s.Width; x += bg.GridSpacing {
		c.StrokeLine(x, 0, x, s.Height, bg.GridWidth, bg.GridColor)
	}
}
