package systems

import (
	"math/rand"

	"github.com/automoto/cyberfx/components"
	"github.com/automoto/cyberfx/render"
	"github.com/yohamta/donburi"
)

// Positions returns the current positions of the given entities in order
func Positions(w donburi.World, order []donburi.Entity) []render.Point {
	pts := make([]render.Point, 0, len(order))
	for _, e := range order {
		p := components.Particle.Get(w.Entry(e))
		pts = append(pts, render.Point{X: p.X, Y: p.Y})
	}
	return pts
}

// StepParticles updates then draws every entity in insertion order
func StepParticles(w donburi.World, order []donburi.Entity, c render.Canvas, st *Style) {
	surface, ok := components.Surface.First(w)
	if !ok {
		return
	}
	s := components.Surface.Get(surface)
	for _, e := range order {
		p := components.Particle.Get(w.Entry(e))
		UpdateParticle(p, s)
		DrawParticle(c, p, s, st)
	}
}

// StepPackets updates then draws every packet in insertion order. Packets
// are positioned from the nodes' current (already updated) positions.
func StepPackets(w donburi.World, packets, nodes []donburi.Entity, rng *rand.Rand, c render.Canvas, st *Style) {
	if len(nodes) == 0 {
		return
	}
	for _, e := range packets {
		p := components.Particle.Get(w.Entry(e))
		UpdatePacket(p, len(nodes), rng)
		RebindInvalid(p, len(nodes), rng)
		from := components.Particle.Get(w.Entry(nodes[p.From]))
		to := components.Particle.Get(w.Entry(nodes[p.To]))
		DrawPacket(c, p, from, to, st)
	}
}
