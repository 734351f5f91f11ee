package components

import (
	"image"

	"github.com/yohamta/donburi"
)

// SectionData places one surface on the desktop page
type SectionData struct {
	ID      string
	Caption string
	Rect    image.Rectangle
	Panel   bool // drawn over a panel background
}

var Section = donburi.NewComponentType[SectionData]()
