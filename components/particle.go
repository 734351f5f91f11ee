package components

import (
	"image/color"

	cfg "github.com/automoto/cyberfx/config"
	"github.com/yohamta/donburi"
)

// ParticleData is one simulated visual element. Kind selects which of the
// variant fields are meaningful.
type ParticleData struct {
	Kind cfg.Variant

	X, Y   float64
	VX, VY float64 // pixels per frame

	Radius  float64 // radius, badge size or packet size
	Color   color.NRGBA
	Opacity float64

	// Badge
	Rotation      float64
	RotationSpeed float64

	// Stream
	Length    float64
	Direction float64 // -1 or +1

	// Stream speed (pixels), grid line speed (dash units) or packet speed (progress)
	Speed float64

	// GridLine
	Horizontal bool
	Offset     float64

	// Packet endpoints are indices into the owning session's node sequence
	Progress float64
	From, To int
}

var Particle = donburi.NewComponentType[ParticleData]()
