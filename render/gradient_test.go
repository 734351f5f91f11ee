package render

import (
	"image/color"
	"testing"
)

func TestGradientAtFadeStops(t *testing.T) {
	c := color.NRGBA{R: 0, G: 212, B: 255, A: 255}
	stops := FadeStops(c)

	tests := []struct {
		name  string
		t     float64
		wantA uint8
	}{
		{"Start", 0, 0},
		{"BeforeStart", -1, 0},
		{"Quarter", 0.25, 128},
		{"Middle", 0.5, 255},
		{"ThreeQuarter", 0.75, 128},
		{"End", 1, 0},
		{"PastEnd", 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GradientAt(stops, tt.t)
			if got.A != tt.wantA {
				t.Errorf("alpha at %f: got %d want %d", tt.t, got.A, tt.wantA)
			}
		})
	}

	if mid := GradientAt(stops, 0.5); mid != c {
		t.Errorf("middle colour: got %v want %v", mid, c)
	}
}

func TestGradientAtEmpty(t *testing.T) {
	if got := GradientAt(nil, 0.5); got != Transparent {
		t.Fatalf("expected transparent, got %v", got)
	}
}

func TestAlphaHelpers(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 200}
	if got := WithAlpha(c, 0.5); got.A != 128 || got.R != 1 {
		t.Errorf("WithAlpha: got %v", got)
	}
	if got := WithAlpha(c, 3); got.A != 255 {
		t.Errorf("WithAlpha clamps high: got %d", got.A)
	}
	if got := WithAlpha(c, -1); got.A != 0 {
		t.Errorf("WithAlpha clamps low: got %d", got.A)
	}
	if got := ScaleAlpha(c, 0.5); got.A != 100 {
		t.Errorf("ScaleAlpha: got %d", got.A)
	}
}
