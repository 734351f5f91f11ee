package systems

import (
	"math"

	cfg "github.com/automoto/cyberfx/config"
	"github.com/automoto/cyberfx/render"
)

// Link is a proximity edge between entities A and B. For pointer links B is
// PointerIndex.
type Link struct {
	A, B     int
	Distance float64
	Weight   float64
}

// PointerIndex marks the pointer end of a pointer link
const PointerIndex = -1

// LinkWeight fades linearly from base at distance 0 to 0 at the threshold.
// Pairs at or beyond the threshold are not linked.
func LinkWeight(distance, threshold, base float64) (float64, bool) {
	if threshold <= 0 || distance >= threshold {
		return 0, false
	}
	return base * (1 - distance/threshold), true
}

// ComputeLinks checks every unordered pair i<j and returns the linked ones in
// (i, j) order. This is O(N²) per call; session sizes keep N small.
func ComputeLinks(pts []render.Point, threshold, base float64) []Link {
	var links []Link
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			d := math.Hypot(pts[i].X-pts[j].X, pts[i].Y-pts[j].Y)
			if w, ok := LinkWeight(d, threshold, base); ok {
				links = append(links, Link{A: i, B: j, Distance: d, Weight: w})
			}
		}
	}
	return links
}

// PointerLinks links every point within radius of the pointer at (px, py)
func PointerLinks(pts []render.Point, px, py, radius, base float64) []Link {
	var links []Link
	for i, p := range pts {
		d := math.Hypot(p.X-px, p.Y-py)
		if w, ok := LinkWeight(d, radius, base); ok {
			links = append(links, Link{A: i, B: PointerIndex, Distance: d, Weight: w})
		}
	}
	return links
}

// DrawLinks strokes each link with the configured colour at the link's weight
func DrawLinks(c render.Canvas, pts []render.Point, links []Link, lc cfg.LinkConfig) {
	for _, l := range links {
		a, b := pts[l.A], pts[l.B]
		c.StrokeLine(a.X, a.Y, b.X, b.Y, lc.LineWidth, render.WithAlpha(lc.Color, l.Weight))
	}
}

// DrawPointerLinks strokes node-to-pointer links
func DrawPointerLinks(c render.Canvas, pts []render.Point, links []Link, px, py float64, pc cfg.PointerConfig) {
	for _, l := range links {
		a := pts[l.A]
		c.StrokeLine(a.X, a.Y, px, py, pc.LineWidth, render.WithAlpha(pc.LinkColor, l.Weight))
	}
}

// DrawPointerMarker draws the glowing marker at the pointer position
func DrawPointerMarker(c render.Canvas, px, py float64, pc cfg.PointerConfig) {
	c.SetGlow(pc.MarkerGlow, pc.GlowColor)
	c.FillCircle(px, py, pc.MarkerRadius, pc.MarkerColor)
	c.SetGlow(0, render.Transparent)
}
