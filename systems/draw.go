package systems

import (
	"math"

	"github.com/automoto/cyberfx/components"
	cfg "github.com/automoto/cyberfx/config"
	"github.com/automoto/cyberfx/render"
)

// Style holds the per-session drawing parameters that are not entity state
type Style struct {
	Node     cfg.NodeConfig
	Packet   cfg.PacketConfig
	Stream   cfg.StreamConfig
	Badge    cfg.BadgeConfig
	GridLine cfg.GridLineConfig
}

// StyleFor extracts the drawing parameters of a session
func StyleFor(sc cfg.SessionConfig) Style {
	return Style{
		Node:     sc.Node,
		Packet:   sc.Packet,
		Stream:   sc.Stream,
		Badge:    sc.Badge,
		GridLine: sc.GridLine,
	}
}

type drawFunc func(c render.Canvas, p *components.ParticleData, s *components.SurfaceData, st *Style)

var drawers = map[cfg.Variant]drawFunc{
	cfg.VariantNode:     drawNode,
	cfg.VariantParticle: drawParticle,
	cfg.VariantStream:   drawStream,
	cfg.VariantBadge:    drawBadge,
	cfg.VariantGridLine: drawGridLine,
}

// DrawParticle renders one entity's current state. It never mutates p.
func DrawParticle(c render.Canvas, p *components.ParticleData, s *components.SurfaceData, st *Style) {
	if fn, ok := drawers[p.Kind]; ok {
		fn(c, p, s, st)
	}
}

func drawNode(c render.Canvas, p *components.ParticleData, _ *components.SurfaceData, st *Style) {
	c.SetGlow(st.Node.GlowBlur, p.Color)
	c.FillCircle(p.X, p.Y, p.Radius, p.Color)
	c.SetGlow(0, render.Transparent)
}

func drawParticle(c render.Canvas, p *components.ParticleData, _ *components.SurfaceData, _ *Style) {
	c.SetAlpha(p.Opacity)
	c.FillCircle(p.X, p.Y, p.Radius, p.Color)
	c.SetAlpha(1)
}

func drawStream(c render.Canvas, p *components.ParticleData, _ *components.SurfaceData, st *Style) {
	c.StrokeGradientLine(p.X, p.Y, p.X, p.Y+p.Length, st.Stream.LineWidth, render.FadeStops(p.Color))
}

func drawBadge(c render.Canvas, p *components.ParticleData, _ *components.SurfaceData, st *Style) {
	c.Save()
	c.Translate(p.X, p.Y)
	c.Rotate(p.Rotation)
	c.SetAlpha(st.Badge.Alpha)
	c.StrokePolygon(RegularPolygon(st.Badge.Sides, p.Radius), st.Badge.LineWidth, p.Color)
	c.Restore()
}

func drawGridLine(c render.Canvas, p *components.ParticleData, s *components.SurfaceData, st *Style) {
	c.SetLineDash(st.GridLine.Dash, -p.Offset)
	if p.Horizontal {
		c.StrokeLine(0, p.Y, s.Width, p.Y, st.GridLine.LineWidth, st.GridLine.Color)
	} else {
		c.StrokeLine(p.X, 0, p.X, s.Height, st.GridLine.LineWidth, st.GridLine.Color)
	}
	c.SetLineDash(nil, 0)
}

// PacketPosition interpolates between the current positions of the packet's
// endpoint nodes
func PacketPosition(p *components.ParticleData, from, to *components.ParticleData) (float64, float64) {
	return from.X + (to.X-from.X)*p.Progress, from.Y + (to.Y-from.Y)*p.Progress
}

// DrawPacket renders a packet between its endpoint nodes
func DrawPacket(c render.Canvas, p *components.ParticleData, from, to *components.ParticleData, st *Style) {
	x, y := PacketPosition(p, from, to)
	c.SetGlow(st.Packet.GlowBlur, p.Color)
	c.FillCircle(x, y, p.Radius, p.Color)
	c.SetGlow(0, render.Transparent)
}

// RegularPolygon returns the vertices of a regular polygon centred on the
// origin with its first vertex on the positive x axis
func RegularPolygon(sides int, radius float64) []render.Point {
	if sides < 3 {
		return nil
	}
	pts := make([]render.Point, sides)
	for i := range pts {
		angle := cfg.FullTurn * float64(i) / float64(sides)
		pts[i] = render.Point{X: math.Cos(angle) * radius, Y: math.Sin(angle) * radius}
	}
	return pts
}
