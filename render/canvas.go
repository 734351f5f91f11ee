// Package render defines the 2D immediate-mode drawing target the particle
// sessions paint into, plus backend-independent helpers shared by the
// ebiten and terminal backends.
package render

import "image/color"

// Point is a position in surface-local coordinates
type Point struct {
	X, Y float64
}

// GradientStop is one colour stop of a linear gradient, Offset in [0, 1]
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Canvas is the render target collaborator. Any backend that implements these
// primitives can host a session.
//
// Style state (alpha, glow, dash, transform) is saved and restored as a unit
// by Save and Restore. Alpha multiplies the alpha of every colour drawn.
type Canvas interface {
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA)
	StrokeGradientLine(x1, y1, x2, y2, width float64, stops []GradientStop)
	StrokePolygon(pts []Point, width float64, c color.NRGBA)

	// SetLineDash configures dashed strokes; an empty pattern means solid
	SetLineDash(pattern []float64, offset float64)
	// SetGlow configures a blur-style halo for fills; blur 0 disables it
	SetGlow(blur float64, c color.NRGBA)
	SetAlpha(a float64)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(theta float64)
}

// Transparent is the fully transparent colour used for gradient ends
var Transparent = color.NRGBA{}

// WithAlpha returns c with its alpha replaced by a in [0, 1]
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = alphaByte(a)
	return c
}

// ScaleAlpha returns c with its alpha multiplied by a in [0, 1]
func ScaleAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = alphaByte(float64(c.A) / 255 * a)
	return c
}

func alphaByte(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(a*255 + 0.5)
}
