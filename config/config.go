package config

import (
	"image/color"
	"math"
)

// Variant identifies the entity kind a session simulates
type Variant int

const (
	VariantNode Variant = iota
	VariantPacket
	VariantParticle
	VariantStream
	VariantBadge
	VariantGridLine
)

func (v Variant) String() string {
	switch v {
	case VariantNode:
		return "node"
	case VariantPacket:
		return "packet"
	case VariantParticle:
		return "particle"
	case VariantStream:
		return "stream"
	case VariantBadge:
		return "badge"
	case VariantGridLine:
		return "gridline"
	}
	return "unknown"
}

// Sizing selects where a session reads its surface dimensions from
type Sizing int

const (
	SizeContainer Sizing = iota // immediate containing element
	SizeViewport                // whole viewport
)

// BackgroundMode selects how a surface is repainted at the start of a frame
type BackgroundMode int

const (
	BackgroundClear BackgroundMode = iota
	BackgroundFade                 // translucent fill, leaves trails
	BackgroundGrid                 // clear, then a static trace grid
)

// Surface ids, one per page section
const (
	NetworkID        = "network-canvas"
	FirewallID       = "firewall-canvas"
	DataTransferID   = "data-transfer-canvas"
	SecurityID       = "security-canvas"
	SkillsID         = "skills-canvas"
	AboutCircuitID   = "about-circuit-canvas"
	ContactCircuitID = "contact-circuit-canvas"
)

const (
	// GridLinePeriod is the dash offset at which a grid line wraps back to 0
	GridLinePeriod = 100.0

	// FullTurn is one rotation in radians, used for the badge start angle
	FullTurn = 2 * math.Pi
)

// NodeConfig contains Drifting Node construction ranges
type NodeConfig struct {
	VelocitySpread float64 // vx, vy = (r-0.5) * spread
	RadiusMin      float64
	RadiusSpan     float64
	Palette        []color.NRGBA
	GlowBlur       float64
}

// PacketConfig contains Traveling Packet construction ranges
type PacketConfig struct {
	SpeedMin  float64 // progress per frame
	SpeedSpan float64
	Size      float64
	Color     color.NRGBA
	GlowBlur  float64
}

// ParticleConfig contains Drifting Particle construction ranges
type ParticleConfig struct {
	VelocitySpread float64
	RadiusMin      float64
	RadiusSpan     float64
	Color          color.NRGBA

	// When RandomOpacity is false no opacity draw is consumed and particles are opaque
	RandomOpacity bool
	OpacityMin    float64
	OpacitySpan   float64
}

// StreamConfig contains Vertical Stream construction ranges
type StreamConfig struct {
	LengthMin  float64
	LengthSpan float64
	SpeedMin   float64
	SpeedSpan  float64
	LineWidth  float64
	Palette    []color.NRGBA
}

// BadgeConfig contains Rotating Badge construction ranges
type BadgeConfig struct {
	VelocitySpread float64
	SizeMin        float64
	SizeSpan       float64
	RotationSpread float64 // rotationSpeed = (r-0.5) * spread
	Sides          int
	LineWidth      float64
	Alpha          float64
	Palette        []color.NRGBA
}

// GridLineConfig contains Oscillating Grid-Line construction ranges
type GridLineConfig struct {
	OffsetSpan float64
	SpeedMin   float64
	SpeedSpan  float64
	Dash       []float64
	LineWidth  float64
	Color      color.NRGBA
}

// LinkConfig contains proximity link settings for a session
type LinkConfig struct {
	Threshold   float64
	BaseOpacity float64
	LineWidth   float64
	Color       color.NRGBA // alpha is replaced by the link weight
}

// PointerConfig contains pointer-proximity settings (network session only)
type PointerConfig struct {
	Radius       float64
	LineWidth    float64
	LinkColor    color.NRGBA
	MarkerRadius float64
	MarkerColor  color.NRGBA
	MarkerGlow   float64
	GlowColor    color.NRGBA
}

// BackgroundConfig contains the per-frame repaint settings
type BackgroundConfig struct {
	Mode        BackgroundMode
	Fill        color.NRGBA
	GridSpacing float64
	GridWidth   float64
	GridColor   color.NRGBA
}

// SessionConfig describes one Surface Session
type SessionConfig struct {
	ID      string
	Caption string
	Sizing  Sizing
	Variant Variant
	Count   int

	// Packets ride on the node collection; only used with VariantNode
	Packets int

	Node     NodeConfig
	Packet   PacketConfig
	Particle ParticleConfig
	Stream   StreamConfig
	Badge    BadgeConfig
	GridLine GridLineConfig

	Links      *LinkConfig    // nil: no proximity links
	Pointer    *PointerConfig // nil: no pointer tracking
	Background BackgroundConfig
}

// PageConfig contains the desktop host layout
type PageConfig struct {
	Title      string
	Width      int
	Height     int
	HeroRatio  float64 // fraction of the viewport above the section grid
	Columns    int
	Gap        int
	Margin     int
	Background color.NRGBA
	PanelColor color.NRGBA
	TPS        int
}

// TerminalConfig contains the terminal host settings
type TerminalConfig struct {
	CellWidth  float64 // surface pixels per cell
	CellHeight float64
	FPS        int
}

// DebugConfig contains debug options, overridable from the command line
type DebugConfig struct {
	Overlay      bool // hit-test boxes and frame stats
	ShowCaptions bool
	LogSessions  bool
	Seed         int64 // 0 picks a time-based seed
}

// Shared palette
var (
	Cyan      = color.NRGBA{R: 0, G: 212, B: 255, A: 255}
	Green     = color.NRGBA{R: 0, G: 255, B: 136, A: 255}
	Blue      = color.NRGBA{R: 0, G: 153, B: 255, A: 255}
	Azure     = color.NRGBA{R: 0, G: 170, B: 255, A: 255}
	Amber     = color.NRGBA{R: 255, G: 170, B: 0, A: 255}
	Navy      = color.NRGBA{R: 10, G: 14, B: 39, A: 255}
	PanelNavy = color.NRGBA{R: 17, G: 24, B: 58, A: 255}
	White     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Global configuration instances
var (
	Network        SessionConfig
	Firewall       SessionConfig
	DataTransfer   SessionConfig
	Security       SessionConfig
	Skills         SessionConfig
	AboutCircuit   SessionConfig
	ContactCircuit SessionConfig

	// Sessions lists every session started by the page, in start-up order
	Sessions []SessionConfig

	Page     PageConfig
	Terminal TerminalConfig
	Debug    DebugConfig
)

// Circuit returns a scrolling circuit grid session bound to the given surface id
func Circuit(id, caption string) SessionConfig {
	return SessionConfig{
		ID:      id,
		Caption: caption,
		Sizing:  SizeContainer,
		Variant: VariantGridLine,
		Count:   20,
		GridLine: GridLineConfig{
			OffsetSpan: 100,
			SpeedMin:   0.5,
			SpeedSpan:  1,
			Dash:       []float64{5, 15},
			LineWidth:  1,
			Color:      color.NRGBA{R: 0, G: 212, B: 255, A: 26}, // 0.1
		},
		Background: BackgroundConfig{Mode: BackgroundClear},
	}
}

func init() {
	palette3 := []color.NRGBA{Cyan, Green, Amber}

	Network = SessionConfig{
		ID:      NetworkID,
		Caption: "network",
		Sizing:  SizeViewport,
		Variant: VariantNode,
		Count:   80,
		Packets: 15,
		Node: NodeConfig{
			VelocitySpread: 0.5,
			RadiusMin:      2,
			RadiusSpan:     3,
			Palette:        []color.NRGBA{Cyan, Green, Blue, Azure},
			GlowBlur:       15,
		},
		Packet: PacketConfig{
			SpeedMin:  0.01,
			SpeedSpan: 0.02,
			Size:      3,
			Color:     Amber,
			GlowBlur:  10,
		},
		Links: &LinkConfig{
			Threshold:   150,
			BaseOpacity: 1,
			LineWidth:   0.5,
			Color:       Cyan,
		},
		Pointer: &PointerConfig{
			Radius:       150,
			LineWidth:    2,
			LinkColor:    Green,
			MarkerRadius: 8,
			MarkerColor:  color.NRGBA{R: 0, G: 255, B: 136, A: 128}, // 0.5
			MarkerGlow:   20,
			GlowColor:    Green,
		},
		Background: BackgroundConfig{
			Mode:        BackgroundGrid,
			GridSpacing: 50,
			GridWidth:   1,
			GridColor:   color.NRGBA{R: 0, G: 212, B: 255, A: 8}, // 0.03
		},
	}

	Firewall = SessionConfig{
		ID:      FirewallID,
		Caption: "firewall",
		Sizing:  SizeContainer,
		Variant: VariantParticle,
		Count:   40,
		Particle: ParticleConfig{
			VelocitySpread: 0.3,
			RadiusMin:      1,
			RadiusSpan:     2,
			Color:          Cyan,
			RandomOpacity:  true,
			OpacityMin:     0.2,
			OpacitySpan:    0.5,
		},
		Links: &LinkConfig{
			Threshold:   100,
			BaseOpacity: 0.15,
			LineWidth:   0.5,
			Color:       Cyan,
		},
		Background: BackgroundConfig{Mode: BackgroundClear},
	}

	DataTransfer = SessionConfig{
		ID:      DataTransferID,
		Caption: "data transfer",
		Sizing:  SizeContainer,
		Variant: VariantStream,
		Count:   30,
		Stream: StreamConfig{
			LengthMin:  50,
			LengthSpan: 100,
			SpeedMin:   2,
			SpeedSpan:  3,
			LineWidth:  2,
			Palette:    palette3,
		},
		Background: BackgroundConfig{
			Mode: BackgroundFade,
			Fill: color.NRGBA{R: 10, G: 14, B: 39, A: 26}, // 0.1
		},
	}

	Security = SessionConfig{
		ID:      SecurityID,
		Caption: "security",
		Sizing:  SizeContainer,
		Variant: VariantBadge,
		Count:   20,
		Badge: BadgeConfig{
			VelocitySpread: 0.5,
			SizeMin:        10,
			SizeSpan:       20,
			RotationSpread: 0.02,
			Sides:          8,
			LineWidth:      2,
			Alpha:          0.3,
			Palette:        palette3,
		},
		Background: BackgroundConfig{Mode: BackgroundClear},
	}

	Skills = SessionConfig{
		ID:      SkillsID,
		Caption: "skills",
		Sizing:  SizeContainer,
		Variant: VariantParticle,
		Count:   60,
		Particle: ParticleConfig{
			VelocitySpread: 0.3,
			RadiusMin:      1,
			RadiusSpan:     2,
			Color:          Cyan,
		},
		Links: &LinkConfig{
			Threshold:   120,
			BaseOpacity: 0.2,
			LineWidth:   0.5,
			Color:       Cyan,
		},
		Background: BackgroundConfig{Mode: BackgroundClear},
	}

	AboutCircuit = Circuit(AboutCircuitID, "about")
	ContactCircuit = Circuit(ContactCircuitID, "contact")

	Sessions = []SessionConfig{
		Network,
		Firewall,
		DataTransfer,
		Security,
		Skills,
		AboutCircuit,
		ContactCircuit,
	}

	Page = PageConfig{
		Title:      "cyberfx",
		Width:      1280,
		Height:     800,
		HeroRatio:  0.35,
		Columns:    3,
		Gap:        16,
		Margin:     24,
		Background: Navy,
		PanelColor: PanelNavy,
		TPS:        60,
	}

	Terminal = TerminalConfig{
		CellWidth:  8,
		CellHeight: 16,
		FPS:        30,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay:      false,
		ShowCaptions: true,
		LogSessions:  false,
		Seed:         0,
	}
}
