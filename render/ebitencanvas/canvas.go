// Package ebitencanvas implements render.Canvas on top of an *ebiten.Image.
package ebitencanvas

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/cyberfx/assets"
	"github.com/automoto/cyberfx/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// gradientSteps is how many solid sub-segments approximate a gradient stroke
	gradientSteps = 16
	// glowRings is how many translucent halos approximate a blur glow
	glowRings = 3
)

type state struct {
	geom       ebiten.GeoM
	alpha      float64
	glow       float64
	glowColor  color.NRGBA
	dash       []float64
	dashOffset float64
}

// Canvas draws into an ebiten image. Rectangles honour translation only;
// every other primitive honours the full transform.
type Canvas struct {
	img   *ebiten.Image
	st    state
	stack []state
}

func New(img *ebiten.Image) *Canvas {
	return &Canvas{img: img, st: state{alpha: 1}}
}

// Image returns the backing image
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// SetImage swaps the backing image, e.g. after the surface was resized.
// Style state is reset.
func (c *Canvas) SetImage(img *ebiten.Image) {
	c.img = img
	c.st = state{alpha: 1}
	c.stack = c.stack[:0]
}

func (c *Canvas) tint(clr color.NRGBA) color.NRGBA {
	return render.ScaleAlpha(clr, c.st.alpha)
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	x, y = c.st.geom.Apply(x, y)
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	if r == c.img.Bounds() {
		c.img.Clear()
		return
	}
	c.img.SubImage(r).(*ebiten.Image).Clear()
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.NRGBA) {
	x, y = c.st.geom.Apply(x, y)
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), c.tint(clr), false)
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	cx, cy = c.st.geom.Apply(cx, cy)
	if c.st.glow > 0 {
		c.halo(cx, cy, r, c.tint(c.st.glowColor))
	}
	vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(r), c.tint(clr), true)
}

// halo draws the glow around a circle, with the glow shader when it was
// loaded and with stacked translucent rings otherwise
func (c *Canvas) halo(cx, cy, r float64, clr color.NRGBA) {
	if assets.GlowShader == nil {
		for i := glowRings; i >= 1; i-- {
			spread := c.st.glow * float64(i) / glowRings / 2
			ring := render.ScaleAlpha(clr, 0.25/float64(i))
			vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(r+spread), ring, true)
		}
		return
	}
	extent := r + c.st.glow
	size := int(math.Ceil(extent * 2))
	a := float32(clr.A) / 255
	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(cx-extent, cy-extent)
	op.Uniforms = map[string]any{
		"Center": []float32{float32(cx), float32(cy)},
		"Radius": float32(r),
		"Blur":   float32(c.st.glow),
		"Color":  []float32{float32(clr.R) / 255 * a, float32(clr.G) / 255 * a, float32(clr.B) / 255 * a, a},
	}
	c.img.DrawRectShader(size, size, assets.GlowShader, op)
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.NRGBA) {
	tinted := c.tint(clr)
	for _, s := range render.DashSegments(x1, y1, x2, y2, c.st.dash, c.st.dashOffset) {
		c.line(s.X1, s.Y1, s.X2, s.Y2, width, tinted)
	}
}

func (c *Canvas) line(x1, y1, x2, y2, width float64, clr color.NRGBA) {
	x1, y1 = c.st.geom.Apply(x1, y1)
	x2, y2 = c.st.geom.Apply(x2, y2)
	vector.StrokeLine(c.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}

func (c *Canvas) StrokeGradientLine(x1, y1, x2, y2, width float64, stops []render.GradientStop) {
	for i := 0; i < gradientSteps; i++ {
		t0 := float64(i) / gradientSteps
		t1 := float64(i+1) / gradientSteps
		clr := c.tint(render.GradientAt(stops, (t0+t1)/2))
		if clr.A == 0 {
			continue
		}
		c.line(
			x1+(x2-x1)*t0, y1+(y2-y1)*t0,
			x1+(x2-x1)*t1, y1+(y2-y1)*t1,
			width, clr,
		)
	}
}

func (c *Canvas) StrokePolygon(pts []render.Point, width float64, clr color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		c.StrokeLine(a.X, a.Y, b.X, b.Y, width, clr)
	}
}

func (c *Canvas) SetLineDash(pattern []float64, offset float64) {
	c.st.dash = append([]float64(nil), pattern...)
	c.st.dashOffset = offset
}

func (c *Canvas) SetGlow(blur float64, clr color.NRGBA) {
	c.st.glow = blur
	c.st.glowColor = clr
}

func (c *Canvas) SetAlpha(a float64) {
	c.st.alpha = a
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.st)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.st = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate and Rotate apply before the current transform, matching the
// HTML canvas convention of building transforms outermost first.
func (c *Canvas) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	m.Concat(c.st.geom)
	c.st.geom = m
}

func (c *Canvas) Rotate(theta float64) {
	var m ebiten.GeoM
	m.Rotate(theta)
	m.Concat(c.st.geom)
	c.st.geom = m
}
