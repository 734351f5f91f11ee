package render

import (
	"math"
	"testing"
)

func segLen(s Segment) float64 {
	return math.Hypot(s.X2-s.X1, s.Y2-s.Y1)
}

func TestDashSegmentsSolidWhenNoPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern []float64
	}{
		{"Nil", nil},
		{"Zero", []float64{0, 0}},
		{"Negative", []float64{5, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := DashSegments(0, 0, 100, 0, tt.pattern, 0)
			if len(segs) != 1 || segLen(segs[0]) != 100 {
				t.Fatalf("expected one solid segment, got %+v", segs)
			}
		})
	}
}

func TestDashSegmentsPattern(t *testing.T) {
	segs := DashSegments(0, 0, 100, 0, []float64{5, 15}, 0)
	if len(segs) != 5 {
		t.Fatalf("expected 5 dashes over 100px of [5,15], got %d", len(segs))
	}
	for i, s := range segs {
		if math.Abs(s.X1-float64(i*20)) > 1e-9 || math.Abs(segLen(s)-5) > 1e-9 {
			t.Errorf("dash %d: got %+v", i, s)
		}
	}
}

func TestDashSegmentsNegativeOffsetMovesForward(t *testing.T) {
	segs := DashSegments(0, 0, 100, 0, []float64{5, 15}, -3)
	if len(segs) == 0 {
		t.Fatal("expected dashes")
	}
	// phase starts at 17: the gap has 3 units left before the first dash
	if math.Abs(segs[0].X1-3) > 1e-9 {
		t.Fatalf("first dash should start at 3, got %f", segs[0].X1)
	}
}

func TestDashSegmentsPartialFirstDash(t *testing.T) {
	segs := DashSegments(0, 0, 0, 40, []float64{5, 15}, 2)
	if len(segs) == 0 || math.Abs(segLen(segs[0])-3) > 1e-9 {
		t.Fatalf("expected a 3px leading dash, got %+v", segs)
	}
	if segs[0].X1 != 0 || segs[0].Y1 != 0 {
		t.Fatalf("leading dash should start at origin, got %+v", segs[0])
	}
}

func TestDashSegmentsOddPatternRepeats(t *testing.T) {
	// [10] behaves like [10, 10]
	segs := DashSegments(0, 0, 40, 0, []float64{10}, 0)
	if len(segs) != 2 {
		t.Fatalf("expected 2 dashes, got %d", len(segs))
	}
}

func TestDashSegmentsZeroLength(t *testing.T) {
	if segs := DashSegments(5, 5, 5, 5, []float64{5, 15}, 0); len(segs) != 0 {
		t.Fatalf("zero-length line should produce no dashes, got %+v", segs)
	}
}
