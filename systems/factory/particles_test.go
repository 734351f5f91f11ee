package factory

import (
	"math/rand"
	"testing"

	"github.com/automoto/cyberfx/components"
	cfg "github.com/automoto/cyberfx/config"
	"github.com/yohamta/donburi"
)

// drawsConsumed reports how many Float64 draws fn took from a seeded source
func drawsConsumed(t *testing.T, fn func(rng *rand.Rand)) int {
	t.Helper()
	used := rand.New(rand.NewSource(42))
	fn(used)
	next := used.Float64()

	ref := rand.New(rand.NewSource(42))
	for n := 0; n < 32; n++ {
		if ref.Float64() == next {
			return n
		}
	}
	t.Fatal("draw count not found")
	return -1
}

func TestConstructorDrawCounts(t *testing.T) {
	tests := []struct {
		name string
		fn   func(rng *rand.Rand)
		want int
	}{
		{"Node", func(rng *rand.Rand) { NewNode(rng, 100, 100, cfg.Network.Node) }, 6},
		{"Packet", func(rng *rand.Rand) { NewPacket(rng, 80, cfg.Network.Packet) }, 3},
		{"ParticleOpaque", func(rng *rand.Rand) { NewParticle(rng, 100, 100, cfg.Skills.Particle) }, 5},
		{"ParticleTranslucent", func(rng *rand.Rand) { NewParticle(rng, 100, 100, cfg.Firewall.Particle) }, 6},
		{"Stream", func(rng *rand.Rand) { NewStream(rng, 100, 100, cfg.DataTransfer.Stream) }, 6},
		{"Badge", func(rng *rand.Rand) { NewBadge(rng, 100, 100, cfg.Security.Badge) }, 8},
		{"GridLine", func(rng *rand.Rand) { NewGridLine(rng, 100, 100, cfg.AboutCircuit.GridLine) }, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := drawsConsumed(t, tt.fn); got != tt.want {
				t.Errorf("expected %d draws, got %d", tt.want, got)
			}
		})
	}
}

func TestNewNodeRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		p := NewNode(rng, 300, 200, cfg.Network.Node)
		if p.X < 0 || p.X >= 300 || p.Y < 0 || p.Y >= 200 {
			t.Fatalf("node outside surface: %+v", p)
		}
		if p.VX < -0.25 || p.VX >= 0.25 || p.Radius < 2 || p.Radius >= 5 {
			t.Fatalf("node velocity or radius out of range: %+v", p)
		}
	}
}

func TestNewParticleOpacity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		p := NewParticle(rng, 100, 100, cfg.Firewall.Particle)
		if p.Opacity < 0.2 || p.Opacity >= 0.7 {
			t.Fatalf("opacity %v outside [0.2, 0.7)", p.Opacity)
		}
	}
	if p := NewParticle(rng, 100, 100, cfg.Skills.Particle); p.Opacity != 1 {
		t.Errorf("expected opaque particle, got %v", p.Opacity)
	}
}

func TestNewStreamDirection(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		p := NewStream(rng, 100, 100, cfg.DataTransfer.Stream)
		if p.Direction != 1 && p.Direction != -1 {
			t.Fatalf("unexpected direction %v", p.Direction)
		}
		if p.Length < 50 || p.Length >= 150 || p.Speed < 2 || p.Speed >= 5 {
			t.Fatalf("stream out of range: %+v", p)
		}
	}
}

func TestNewGridLineAxis(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		p := NewGridLine(rng, 100, 60, cfg.AboutCircuit.GridLine)
		if p.Horizontal && (p.X != 0 || p.Y >= 60) {
			t.Fatalf("horizontal line with bad position: %+v", p)
		}
		if !p.Horizontal && (p.Y != 0 || p.X >= 100) {
			t.Fatalf("vertical line with bad position: %+v", p)
		}
	}
}

func TestCreateParticlesKeepsOrder(t *testing.T) {
	w := donburi.NewWorld()
	rng := rand.New(rand.NewSource(1))

	order := CreateParticles(w, rng, cfg.Security, 300, 200)

	if len(order) != cfg.Security.Count {
		t.Fatalf("expected %d entities, got %d", cfg.Security.Count, len(order))
	}
	ref := rand.New(rand.NewSource(1))
	for i, e := range order {
		got := components.Particle.Get(w.Entry(e))
		want := NewBadge(ref, 300, 200, cfg.Security.Badge)
		if got.Kind != cfg.VariantBadge || got.X != want.X || got.Rotation != want.Rotation {
			t.Fatalf("entity %d does not match construction order", i)
		}
	}
}

func TestCreatePacketsNeedsNodes(t *testing.T) {
	w := donburi.NewWorld()
	rng := rand.New(rand.NewSource(1))

	if got := CreatePackets(w, rng, cfg.Network.Packet, 15, 0); got != nil {
		t.Errorf("expected no packets without nodes, got %d", len(got))
	}
	got := CreatePackets(w, rng, cfg.Network.Packet, 15, 4)
	if len(got) != 15 {
		t.Fatalf("expected 15 packets, got %d", len(got))
	}
	for _, e := range got {
		p := components.Particle.Get(w.Entry(e))
		if p.From < 0 || p.From >= 4 || p.To < 0 || p.To >= 4 {
			t.Fatalf("packet endpoint out of range: %+v", p)
		}
	}
}
