package archetypes

import (
	"github.com/automoto/cyberfx/components"
	cfg "github.com/automoto/cyberfx/config"
	"github.com/automoto/cyberfx/tags"
	"github.com/yohamta/donburi"
)

var (
	Node = newArchetype(
		tags.Node,
		components.Particle,
	)
	Packet = newArchetype(
		tags.Packet,
		components.Particle,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Stream = newArchetype(
		tags.Stream,
		components.Particle,
	)
	Badge = newArchetype(
		tags.Badge,
		components.Particle,
	)
	GridLine = newArchetype(
		tags.GridLine,
		components.Particle,
	)
	Surface = newArchetype(
		components.Surface,
	)
	Pointer = newArchetype(
		components.Pointer,
	)
)

var byVariant = map[cfg.Variant]*archetype{
	cfg.VariantNode:     Node,
	cfg.VariantPacket:   Packet,
	cfg.VariantParticle: Particle,
	cfg.VariantStream:   Stream,
	cfg.VariantBadge:    Badge,
	cfg.VariantGridLine: GridLine,
}

// For returns the archetype used for entities of the given variant
func For(v cfg.Variant) *archetype {
	if a, ok := byVariant[v]; ok {
		return a
	}
	return Particle
}

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
