package render

import (
	"image/color"
	"math"
	"testing"
)

func TestRecorderTransformStack(t *testing.T) {
	r := NewRecorder()
	r.Save()
	r.Translate(10, 20)
	r.Rotate(math.Pi / 2)
	r.StrokePolygon([]Point{{X: 1, Y: 0}}, 1, color.NRGBA{})
	r.Restore()
	r.FillCircle(1, 0, 2, color.NRGBA{})

	poly := r.Filter(OpStrokePolygon)[0].Points[0]
	if math.Abs(poly.X-10) > 1e-9 || math.Abs(poly.Y-21) > 1e-9 {
		t.Fatalf("rotated point: got (%f,%f) want (10,21)", poly.X, poly.Y)
	}
	circle := r.Filter(OpFillCircle)[0]
	if circle.X1 != 1 || circle.Y1 != 0 {
		t.Fatalf("restore should reset transform, got (%f,%f)", circle.X1, circle.Y1)
	}
}

func TestRecorderCapturesStyleState(t *testing.T) {
	r := NewRecorder()
	r.SetAlpha(0.3)
	r.SetGlow(15, color.NRGBA{G: 255, A: 255})
	r.SetLineDash([]float64{5, 15}, -4)
	r.StrokeLine(0, 0, 1, 1, 1, color.NRGBA{})
	r.SetLineDash(nil, 0)
	r.StrokeLine(0, 0, 1, 1, 1, color.NRGBA{})

	lines := r.Filter(OpStrokeLine)
	if lines[0].Alpha != 0.3 || lines[0].Glow != 15 || lines[0].DashOffset != -4 || len(lines[0].Dash) != 2 {
		t.Fatalf("unexpected style state: %+v", lines[0])
	}
	if lines[1].Dash != nil {
		t.Fatalf("dash should be cleared, got %v", lines[1].Dash)
	}
	if r.Count(OpStrokeLine) != 2 {
		t.Fatalf("expected 2 lines")
	}

	r.Reset()
	if len(r.Ops) != 0 {
		t.Fatal("reset should drop ops")
	}
}

func TestRecorderRestoreWithoutSave(t *testing.T) {
	r := NewRecorder()
	r.Restore()
	r.FillRect(0, 0, 1, 1, color.NRGBA{})
	if r.Filter(OpFillRect)[0].Alpha != 1 {
		t.Fatal("unbalanced restore should keep default state")
	}
}
