package termcanvas

import (
	"image/color"
	"testing"

	"github.com/automoto/cyberfx/render"
	"github.com/gdamore/tcell/v2"
)

var cyan = color.NRGBA{R: 0, G: 212, B: 255, A: 255}

func TestFillCirclePlotsCell(t *testing.T) {
	c := New(10, 5, 8, 16)
	c.FillCircle(20, 40, 2, cyan)

	g, _ := c.Glyph(2, 2)
	if g != glyphDot {
		t.Fatalf("expected dot at (2,2), got %q", g)
	}
	if g, _ := c.Glyph(0, 0); g != 0 {
		t.Fatalf("expected empty cell at origin, got %q", g)
	}
}

func TestStrokeLineCoversCells(t *testing.T) {
	c := New(10, 5, 8, 16)
	c.StrokeLine(0, 8, 79, 8, 1, cyan)
	for col := 0; col < 10; col++ {
		if g, _ := c.Glyph(col, 0); g != glyphLine {
			t.Fatalf("col %d: expected line glyph, got %q", col, g)
		}
	}
}

func TestTranslucentFillFadesGlyphs(t *testing.T) {
	c := New(4, 4, 8, 16)
	c.FillCircle(4, 8, 1, cyan)
	fade := color.NRGBA{R: 10, G: 14, B: 39, A: 26}
	w, h := c.Size()
	for i := 0; i < 60; i++ {
		c.FillRect(0, 0, w, h, fade)
	}
	if g, _ := c.Glyph(0, 0); g != 0 {
		t.Fatalf("glyph should fade out under repeated translucent fills, got %q", g)
	}
}

func TestClearRectEmptiesCells(t *testing.T) {
	c := New(4, 4, 8, 16)
	c.FillCircle(4, 8, 1, cyan)
	c.ClearRect(0, 0, 32, 64)
	if g, _ := c.Glyph(0, 0); g != 0 {
		t.Fatalf("expected cleared cell, got %q", g)
	}
}

func TestSmallPolygonCollapsesToGlyph(t *testing.T) {
	c := New(10, 10, 8, 16)
	c.Save()
	c.Translate(40, 80)
	c.StrokePolygon([]render.Point{{X: -4, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 0}, {X: 0, Y: -4}}, 2, cyan)
	c.Restore()
	if g, _ := c.Glyph(5, 5); g != glyphBadge {
		t.Fatalf("expected badge glyph at (5,5), got %q", g)
	}
}

func TestFlushWritesScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 5)

	c := New(10, 5, 8, 16)
	c.FillCircle(12, 20, 2, cyan)
	c.Flush(screen)

	mainc, _, _, _ := screen.GetContent(1, 1)
	if mainc != glyphDot {
		t.Fatalf("expected dot on screen at (1,1), got %q", mainc)
	}
}

func TestZeroSizedCanvas(t *testing.T) {
	c := New(0, 0, 8, 16)
	c.FillRect(0, 0, 100, 100, cyan)
	c.ClearRect(0, 0, 100, 100)
	c.StrokeLine(0, 0, 100, 100, 1, cyan)
	if w, h := c.Size(); w != 0 || h != 0 {
		t.Fatalf("expected zero size, got %fx%f", w, h)
	}
}
