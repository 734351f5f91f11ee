package tags

import "github.com/yohamta/donburi"

var (
	Node     = donburi.NewTag().SetName("Node")
	Packet   = donburi.NewTag().SetName("Packet")
	Particle = donburi.NewTag().SetName("Particle")
	Stream   = donburi.NewTag().SetName("Stream")
	Badge    = donburi.NewTag().SetName("Badge")
	GridLine = donburi.NewTag().SetName("GridLine")
)

// Resolv tags for pointer hit-testing
const (
	ResolvSection = "section"
	ResolvProbe   = "probe"
)
