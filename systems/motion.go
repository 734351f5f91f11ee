package systems

import (
	"math/rand"

	"github.com/automoto/cyberfx/components"
	cfg "github.com/automoto/cyberfx/config"
)

type updateFunc func(p *components.ParticleData, s *components.SurfaceData)

// Update rules per variant. Packets are absent: they also need the node
// sequence and a random source, see UpdatePacket.
var updaters = map[cfg.Variant]updateFunc{
	cfg.VariantNode:     updateNode,
	cfg.VariantParticle: updateParticle,
	cfg.VariantStream:   updateStream,
	cfg.VariantBadge:    updateBadge,
	cfg.VariantGridLine: updateGridLine,
}

// UpdateParticle advances one entity by a frame within the surface bounds
func UpdateParticle(p *components.ParticleData, s *components.SurfaceData) {
	if fn, ok := updaters[p.Kind]; ok {
		fn(p, s)
	}
}

// drift moves p by its velocity and flips a velocity component when the new
// position lies outside the surface on that axis
func drift(p *components.ParticleData, s *components.SurfaceData) {
	p.X += p.VX
	p.Y += p.VY
	if p.X < 0 || p.X > s.Width {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > s.Height {
		p.VY = -p.VY
	}
}

func updateNode(p *components.ParticleData, s *components.SurfaceData) {
	drift(p, s)
	p.X = clamp(p.X, 0, s.Width)
	p.Y = clamp(p.Y, 0, s.Height)
}

func updateParticle(p *components.ParticleData, s *components.SurfaceData) {
	drift(p, s)
}

func updateBadge(p *components.ParticleData, s *components.SurfaceData) {
	drift(p, s)
	p.Rotation += p.RotationSpeed
}

func updateStream(p *components.ParticleData, s *components.SurfaceData) {
	p.Y += p.Speed * p.Direction
	if p.Y > s.Height+p.Length {
		p.Y = -p.Length
	}
	if p.Y < -p.Length {
		p.Y = s.Height + p.Length
	}
}

func updateGridLine(p *components.ParticleData, _ *components.SurfaceData) {
	p.Offset += p.Speed
	if p.Offset > cfg.GridLinePeriod {
		p.Offset = 0
	}
}

// UpdatePacket advances a packet along its edge. On arrival progress resets
// to exactly 0 and both endpoints are redrawn, independently and with
// replacement, from the nodeCount nodes.
func UpdatePacket(p *components.ParticleData, nodeCount int, rng *rand.Rand) {
	p.Progress += p.Speed
	if p.Progress >= 1 {
		p.Progress = 0
		p.From = PickIndex(rng, nodeCount)
		p.To = PickIndex(rng, nodeCount)
	}
}

// RebindInvalid redraws any packet endpoint outside [0, nodeCount)
func RebindInvalid(p *components.ParticleData, nodeCount int, rng *rand.Rand) {
	if p.From < 0 || p.From >= nodeCount {
		p.From = PickIndex(rng, nodeCount)
	}
	if p.To < 0 || p.To >= nodeCount {
		p.To = PickIndex(rng, nodeCount)
	}
}

// PickIndex draws a uniform index in [0, n) from one Float64 draw
func PickIndex(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
