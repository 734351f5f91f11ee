package factory

import (
	"image/color"
	"math/rand"

	"github.com/automoto/cyberfx/archetypes"
	"github.com/automoto/cyberfx/components"
	cfg "github.com/automoto/cyberfx/config"
	"github.com/automoto/cyberfx/systems"
	"github.com/yohamta/donburi"
)

// Constructors draw from rng in field order (position first), so a seeded
// source reproduces the exact same entities.

// NewNode creates a Drifting Node uniformly placed on a w x h surface
func NewNode(rng *rand.Rand, w, h float64, nc cfg.NodeConfig) components.ParticleData {
	return components.ParticleData{
		Kind:    cfg.VariantNode,
		X:       rng.Float64() * w,
		Y:       rng.Float64() * h,
		VX:      spread(rng, nc.VelocitySpread),
		VY:      spread(rng, nc.VelocitySpread),
		Radius:  rng.Float64()*nc.RadiusSpan + nc.RadiusMin,
		Color:   pick(rng, nc.Palette),
		Opacity: 1,
	}
}

// NewPacket creates a Traveling Packet bound to two random nodes out of nodeCount
func NewPacket(rng *rand.Rand, nodeCount int, pc cfg.PacketConfig) components.ParticleData {
	return components.ParticleData{
		Kind:    cfg.VariantPacket,
		From:    systems.PickIndex(rng, nodeCount),
		To:      systems.PickIndex(rng, nodeCount),
		Speed:   pc.SpeedMin + rng.Float64()*pc.SpeedSpan,
		Radius:  pc.Size,
		Color:   pc.Color,
		Opacity: 1,
	}
}

// NewParticle creates a Drifting Particle
func NewParticle(rng *rand.Rand, w, h float64, pc cfg.ParticleConfig) components.ParticleData {
	p := components.ParticleData{
		Kind:    cfg.VariantParticle,
		X:       rng.Float64() * w,
		Y:       rng.Float64() * h,
		VX:      spread(rng, pc.VelocitySpread),
		VY:      spread(rng, pc.VelocitySpread),
		Radius:  rng.Float64()*pc.RadiusSpan + pc.RadiusMin,
		Color:   pc.Color,
		Opacity: 1,
	}
	if pc.RandomOpacity {
		p.Opacity = rng.Float64()*pc.OpacitySpan + pc.OpacityMin
	}
	return p
}

// NewStream creates a Vertical Stream heading up or down with equal odds
func NewStream(rng *rand.Rand, w, h float64, sc cfg.StreamConfig) components.ParticleData {
	p := components.ParticleData{
		Kind:    cfg.VariantStream,
		X:       rng.Float64() * w,
		Y:       rng.Float64() * h,
		Length:  rng.Float64()*sc.LengthSpan + sc.LengthMin,
		Speed:   rng.Float64()*sc.SpeedSpan + sc.SpeedMin,
		Opacity: 1,
	}
	p.Direction = -1
	if rng.Float64() > 0.5 {
		p.Direction = 1
	}
	p.Color = pick(rng, sc.Palette)
	return p
}

// NewBadge creates a Rotating Badge
func NewBadge(rng *rand.Rand, w, h float64, bc cfg.BadgeConfig) components.ParticleData {
	return components.ParticleData{
		Kind:          cfg.VariantBadge,
		X:             rng.Float64() * w,
		Y:             rng.Float64() * h,
		VX:            spread(rng, bc.VelocitySpread),
		VY:            spread(rng, bc.VelocitySpread),
		Radius:        rng.Float64()*bc.SizeSpan + bc.SizeMin,
		Rotation:      rng.Float64() * cfg.FullTurn,
		RotationSpeed: spread(rng, bc.RotationSpread),
		Color:         pick(rng, bc.Palette),
		Opacity:       1,
	}
}

// NewGridLine creates an Oscillating Grid-Line, horizontal or vertical with equal odds
func NewGridLine(rng *rand.Rand, w, h float64, gc cfg.GridLineConfig) components.ParticleData {
	p := components.ParticleData{
		Kind:       cfg.VariantGridLine,
		Horizontal: rng.Float64() > 0.5,
		Color:      gc.Color,
		Opacity:    1,
	}
	if p.Horizontal {
		p.Y = rng.Float64() * h
	} else {
		p.X = rng.Float64() * w
	}
	p.Offset = rng.Float64() * gc.OffsetSpan
	p.Speed = gc.SpeedMin + rng.Float64()*gc.SpeedSpan
	return p
}

// NewFor creates one primary entity of the session's variant
func NewFor(rng *rand.Rand, w, h float64, sc cfg.SessionConfig) components.ParticleData {
	switch sc.Variant {
	case cfg.VariantNode:
		return NewNode(rng, w, h, sc.Node)
	case cfg.VariantStream:
		return NewStream(rng, w, h, sc.Stream)
	case cfg.VariantBadge:
		return NewBadge(rng, w, h, sc.Badge)
	case cfg.VariantGridLine:
		return NewGridLine(rng, w, h, sc.GridLine)
	default:
		return NewParticle(rng, w, h, sc.Particle)
	}
}

// Spawn stores p in the world under its variant's archetype
func Spawn(w donburi.World, p components.ParticleData) donburi.Entity {
	entry := archetypes.For(p.Kind).Spawn(w)
	components.Particle.Set(entry, &p)
	return entry.Entity()
}

// CreateParticles spawns the session's primary collection in insertion order
func CreateParticles(w donburi.World, rng *rand.Rand, sc cfg.SessionConfig, width, height float64) []donburi.Entity {
	order := make([]donburi.Entity, 0, sc.Count)
	for i := 0; i < sc.Count; i++ {
		order = append(order, Spawn(w, NewFor(rng, width, height, sc)))
	}
	return order
}

// CreatePackets spawns count packets riding on nodeCount nodes. Without nodes
// a packet would have no endpoint, so none are created.
func CreatePackets(w donburi.World, rng *rand.Rand, pc cfg.PacketConfig, count, nodeCount int) []donburi.Entity {
	if nodeCount <= 0 {
		return nil
	}
	order := make([]donburi.Entity, 0, count)
	for i := 0; i < count; i++ {
		order = append(order, Spawn(w, NewPacket(rng, nodeCount, pc)))
	}
	return order
}

// CreateSurface spawns the world's Surface singleton
func CreateSurface(w donburi.World, id string, width, height float64) *donburi.Entry {
	entry := archetypes.Surface.Spawn(w)
	components.Surface.Set(entry, &components.SurfaceData{ID: id, Width: width, Height: height})
	return entry
}

// CreatePointer spawns the world's Pointer singleton with no pointer present
func CreatePointer(w donburi.World) *donburi.Entry {
	entry := archetypes.Pointer.Spawn(w)
	components.Pointer.Set(entry, &components.PointerData{})
	return entry
}

func spread(rng *rand.Rand, s float64) float64 {
	return (rng.Float64() - 0.5) * s
}

func pick(rng *rand.Rand, palette []color.NRGBA) color.NRGBA {
	if len(palette) == 0 {
		return color.NRGBA{}
	}
	return palette[systems.PickIndex(rng, len(palette))]
}
