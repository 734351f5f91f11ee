package render

import (
	"image/color"
	"math"
)

// OpKind identifies a recorded drawing primitive
type OpKind int

const (
	OpClearRect OpKind = iota
	OpFillRect
	OpFillCircle
	OpStrokeLine
	OpStrokeGradientLine
	OpStrokePolygon
)

var opNames = [...]string{"clear", "fill-rect", "fill-circle", "line", "gradient-line", "polygon"}

func (k OpKind) String() string {
	if k < 0 || int(k) >= len(opNames) {
		return "unknown"
	}
	return opNames[k]
}

// OpKinds lists every primitive kind in declaration order
func OpKinds() []OpKind {
	return []OpKind{OpClearRect, OpFillRect, OpFillCircle, OpStrokeLine, OpStrokeGradientLine, OpStrokePolygon}
}

// Op is one recorded primitive together with the style state in effect when
// it was issued. Coordinates are already transformed into surface space.
type Op struct {
	Kind OpKind

	X1, Y1, X2, Y2 float64 // rect origin+size, circle centre+radius in X2, or line endpoints
	Width          float64
	Points         []Point
	Stops          []GradientStop
	Color          color.NRGBA

	Alpha      float64
	Glow       float64
	GlowColor  color.NRGBA
	Dash       []float64
	DashOffset float64
}

type recorderState struct {
	alpha      float64
	glow       float64
	glowColor  color.NRGBA
	dash       []float64
	dashOffset float64

	// affine transform: x' = a*x + c*y + tx, y' = b*x + d*y + ty
	a, b, c, d, tx, ty float64
}

// Recorder is a Canvas that keeps every primitive in memory. Sessions run
// against it headless: tests observe frames with it and termfx -stats
// reports per-frame primitive counts from it.
type Recorder struct {
	Ops []Op

	st    recorderState
	stack []recorderState
}

// NewRecorder returns an empty recorder with identity transform and full alpha
func NewRecorder() *Recorder {
	r := &Recorder{}
	r.st = identityState()
	return r
}

func identityState() recorderState {
	return recorderState{alpha: 1, a: 1, d: 1}
}

// Reset drops all recorded ops and style state
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.st = identityState()
	r.stack = r.stack[:0]
}

// Count returns how many ops of the given kind were recorded
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the ops of the given kind in issue order
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) apply(x, y float64) (float64, float64) {
	s := &r.st
	return s.a*x + s.c*y + s.tx, s.b*x + s.d*y + s.ty
}

func (r *Recorder) push(op Op) {
	op.Alpha = r.st.alpha
	op.Glow = r.st.glow
	op.GlowColor = r.st.glowColor
	if len(r.st.dash) > 0 {
		op.Dash = append([]float64(nil), r.st.dash...)
		op.DashOffset = r.st.dashOffset
	}
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	x, y = r.apply(x, y)
	r.push(Op{Kind: OpClearRect, X1: x, Y1: y, X2: w, Y2: h})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	x, y = r.apply(x, y)
	r.push(Op{Kind: OpFillRect, X1: x, Y1: y, X2: w, Y2: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.NRGBA) {
	cx, cy = r.apply(cx, cy)
	r.push(Op{Kind: OpFillCircle, X1: cx, Y1: cy, X2: radius, Color: c})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA) {
	x1, y1 = r.apply(x1, y1)
	x2, y2 = r.apply(x2, y2)
	r.push(Op{Kind: OpStrokeLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

func (r *Recorder) StrokeGradientLine(x1, y1, x2, y2, width float64, stops []GradientStop) {
	x1, y1 = r.apply(x1, y1)
	x2, y2 = r.apply(x2, y2)
	r.push(Op{
		Kind: OpStrokeGradientLine,
		X1:   x1, Y1: y1, X2: x2, Y2: y2,
		Width: width,
		Stops: append([]GradientStop(nil), stops...),
	})
}

func (r *Recorder) StrokePolygon(pts []Point, width float64, c color.NRGBA) {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i].X, out[i].Y = r.apply(p.X, p.Y)
	}
	r.push(Op{Kind: OpStrokePolygon, Points: out, Width: width, Color: c})
}

func (r *Recorder) SetLineDash(pattern []float64, offset float64) {
	r.st.dash = append([]float64(nil), pattern...)
	r.st.dashOffset = offset
}

func (r *Recorder) SetGlow(blur float64, c color.NRGBA) {
	r.st.glow = blur
	r.st.glowColor = c
}

func (r *Recorder) SetAlpha(a float64) {
	r.st.alpha = a
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.st)
}

func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.st = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(x, y float64) {
	s := &r.st
	s.tx += s.a*x + s.c*y
	s.ty += s.b*x + s.d*y
}

func (r *Recorder) Rotate(theta float64) {
	s := &r.st
	sin, cos := math.Sincos(theta)
	a, b, c, d := s.a, s.b, s.c, s.d
	s.a = a*cos + c*sin
	s.b = b*cos + d*sin
	s.c = c*cos - a*sin
	s.d = d*cos - b*sin
}
