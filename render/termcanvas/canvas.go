// Package termcanvas implements render.Canvas on a terminal cell grid.
// Every cell covers CellWidth x CellHeight surface pixels; shapes are
// rasterised to glyphs and colours are blended per cell.
package termcanvas

import (
	"image/color"
	"math"

	"github.com/automoto/cyberfx/render"
	"github.com/gdamore/tcell/v2"
)

const (
	glyphDot    = '•'
	glyphBadge  = '◇'
	glyphLine   = '·'
	glyphStream = '│'
	glyphFill   = '●'

	// fadeFloor drops a glyph once translucent repaints have faded it this far
	fadeFloor = 0.08
)

type rgb struct {
	r, g, b float64
}

func (c rgb) blend(to color.NRGBA, a float64) rgb {
	return rgb{
		r: c.r + (float64(to.R)-c.r)*a,
		g: c.g + (float64(to.G)-c.g)*a,
		b: c.b + (float64(to.B)-c.b)*a,
	}
}

func (c rgb) tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.r), int32(c.g), int32(c.b))
}

type cell struct {
	bg       rgb
	fg       rgb
	glyph    rune
	strength float64
}

type state struct {
	alpha      float64
	dash       []float64
	dashOffset float64

	a, b, c, d, tx, ty float64
}

// Canvas rasterises into an in-memory cell buffer; Flush copies it to the
// screen region starting at (Left, Top).
type Canvas struct {
	CellWidth, CellHeight float64
	Left, Top             int

	cols, rows int
	cells      []cell
	st         state
	stack      []state
}

func New(cols, rows int, cellWidth, cellHeight float64) *Canvas {
	c := &Canvas{CellWidth: cellWidth, CellHeight: cellHeight}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the cell buffer; contents are discarded
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]cell, cols*rows)
	c.st = state{alpha: 1, a: 1, d: 1}
	c.stack = c.stack[:0]
}

// Size returns the surface extent in pixels covered by the grid
func (c *Canvas) Size() (float64, float64) {
	return float64(c.cols) * c.CellWidth, float64(c.rows) * c.CellHeight
}

// Flush writes the buffer to the screen. It does not call Show.
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			style := tcell.StyleDefault.Background(cl.bg.tcell())
			glyph := ' '
			if cl.glyph != 0 {
				glyph = cl.glyph
				style = style.Foreground(cl.fg.tcell())
			}
			screen.SetContent(c.Left+col, c.Top+row, glyph, nil, style)
		}
	}
}

// Glyph returns the rune and foreground colour currently in a cell
func (c *Canvas) Glyph(col, row int) (rune, color.NRGBA) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0, color.NRGBA{}
	}
	cl := c.cells[row*c.cols+col]
	return cl.glyph, color.NRGBA{R: uint8(cl.fg.r), G: uint8(cl.fg.g), B: uint8(cl.fg.b), A: 255}
}

func (c *Canvas) apply(x, y float64) (float64, float64) {
	s := &c.st
	return s.a*x + s.c*y + s.tx, s.b*x + s.d*y + s.ty
}

func (c *Canvas) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / c.CellWidth)), int(math.Floor(y / c.CellHeight))
}

func (c *Canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

func (c *Canvas) plot(col, row int, glyph rune, clr color.NRGBA) {
	cl := c.at(col, row)
	if cl == nil {
		return
	}
	a := float64(clr.A) / 255 * c.st.alpha
	if a <= 0 {
		return
	}
	base := cl.bg
	if cl.glyph != 0 {
		base = cl.fg
	}
	cl.fg = base.blend(clr, math.Min(1, a*2))
	if cl.glyph == 0 || a >= cl.strength {
		cl.glyph = glyph
	}
	cl.strength = math.Max(cl.strength, a)
}

func (c *Canvas) cellRange(x, y, w, h float64) (int, int, int, int) {
	x, y = c.apply(x, y)
	col0, row0 := c.toCell(x, y)
	col1, row1 := c.toCell(x+w, y+h)
	return max(col0, 0), max(row0, 0), min(col1, c.cols-1), min(row1, c.rows-1)
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	col0, row0, col1, row1 := c.cellRange(x, y, w, h)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			c.cells[row*c.cols+col] = cell{}
		}
	}
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.NRGBA) {
	a := float64(clr.A) / 255 * c.st.alpha
	col0, row0, col1, row1 := c.cellRange(x, y, w, h)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			cl := &c.cells[row*c.cols+col]
			cl.bg = cl.bg.blend(clr, a)
			if cl.glyph == 0 {
				continue
			}
			cl.fg = cl.fg.blend(clr, a)
			cl.strength *= 1 - a
			if cl.strength < fadeFloor {
				cl.glyph = 0
				cl.strength = 0
			}
		}
	}
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	cx, cy = c.apply(cx, cy)
	glyph := glyphDot
	if r >= c.CellWidth {
		glyph = glyphFill
	}
	col, row := c.toCell(cx, cy)
	c.plot(col, row, glyph, clr)
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.NRGBA) {
	for _, s := range render.DashSegments(x1, y1, x2, y2, c.st.dash, c.st.dashOffset) {
		c.raster(s.X1, s.Y1, s.X2, s.Y2, func(float64) (rune, color.NRGBA) {
			return glyphLine, clr
		})
	}
}

func (c *Canvas) StrokeGradientLine(x1, y1, x2, y2, width float64, stops []render.GradientStop) {
	c.raster(x1, y1, x2, y2, func(t float64) (rune, color.NRGBA) {
		return glyphStream, render.GradientAt(stops, t)
	})
}

func (c *Canvas) StrokePolygon(pts []render.Point, width float64, clr color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	// A polygon smaller than a couple of cells reads better as one glyph
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		x, y := c.apply(p.X, p.Y)
		minX, minY = math.Min(minX, x), math.Min(minY, y)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
	}
	if maxX-minX < 2*c.CellWidth && maxY-minY < 2*c.CellHeight {
		col, row := c.toCell((minX+maxX)/2, (minY+maxY)/2)
		c.plot(col, row, glyphBadge, clr)
		return
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		c.StrokeLine(a.X, a.Y, b.X, b.Y, width, clr)
	}
}

// raster walks the cells along a line (DDA in cell space) and plots the glyph
// returned for each position t in [0, 1]
func (c *Canvas) raster(x1, y1, x2, y2 float64, style func(t float64) (rune, color.NRGBA)) {
	x1, y1 = c.apply(x1, y1)
	x2, y2 = c.apply(x2, y2)
	fx1, fy1 := x1/c.CellWidth, y1/c.CellHeight
	fx2, fy2 := x2/c.CellWidth, y2/c.CellHeight
	steps := int(math.Ceil(math.Max(math.Abs(fx2-fx1), math.Abs(fy2-fy1))))
	if steps == 0 {
		g, clr := style(0.5)
		c.plot(int(math.Floor(fx1)), int(math.Floor(fy1)), g, clr)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		g, clr := style(t)
		c.plot(int(math.Floor(fx1+(fx2-fx1)*t)), int(math.Floor(fy1+(fy2-fy1)*t)), g, clr)
	}
}

func (c *Canvas) SetLineDash(pattern []float64, offset float64) {
	c.st.dash = append([]float64(nil), pattern...)
	c.st.dashOffset = offset
}

// SetGlow is accepted for interface parity; cells cannot show a halo
func (c *Canvas) SetGlow(float64, color.NRGBA) {}

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

func (c *Canvas) Translate(x, y float64) {
	s := &c.st
	s.tx += s.a*x + s.c*y
	s.ty += s.b*x + s.d*y
}

func (c *Canvas) Rotate(theta float64) {
	s := &c.st
	sin, cos := math.Sincos(theta)
	a, b, cc, d := s.a, s.b, s.c, s.d
	s.a = a*cos + cc*sin
	s.b = b*cos + d*sin
	s.c = cc*cos - a*sin
	s.d = d*cos - b*sin
}
