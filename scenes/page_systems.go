package scenes

import (
	"github.com/automoto/cyberfx/components"
	cfg "github.com/automoto/cyberfx/config"
	"github.com/automoto/cyberfx/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updatePointer forwards the cursor to the network session while it is over
// the background and not over a section panel
func (ps *PageScene) updatePointer(e *ecs.ECS) {
	network, ok := ps.registry.Session(cfg.NetworkID)
	if !ok || network.Pointer() == nil {
		return
	}
	p := network.Pointer()

	cx, cy := ebiten.CursorPosition()
	inside := ebiten.IsFocused() && cx >= 0 && cy >= 0 && cx < ps.width && cy < ps.height
	if inside && ps.router.At(float64(cx), float64(cy)) == cfg.NetworkID {
		p.Move(float64(cx), float64(cy))
		return
	}
	p.Leave()
}

func (ps *PageScene) advanceFrames(e *ecs.ECS) {
	ps.clock.Advance()
}

func (ps *PageScene) drawSections(e *ecs.ECS, screen *ebiten.Image) {
	components.Section.Each(e.World, func(entry *donburi.Entry) {
		s := components.Section.Get(entry)
		if s.Rect.Empty() {
			return
		}
		if s.Panel {
			vector.DrawFilledRect(screen,
				float32(s.Rect.Min.X), float32(s.Rect.Min.Y),
				float32(s.Rect.Dx()), float32(s.Rect.Dy()),
				cfg.Page.PanelColor, false)
		}
		surface, ok := ps.host.surfaces[s.ID]
		if !ok || surface.img == nil {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(s.Rect.Min.X), float64(s.Rect.Min.Y))
		screen.DrawImage(surface.img, op)
	})
}

func drawCaptions(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowCaptions || !fonts.Loaded(fonts.Caption) {
		return
	}
	face := fonts.Caption.Get()
	components.Section.Each(e.World, func(entry *donburi.Entry) {
		s := components.Section.Get(entry)
		if !s.Panel || s.Rect.Empty() {
			return
		}
		text.Draw(screen, s.Caption, face, s.Rect.Min.X+8, s.Rect.Min.Y+16, cfg.White)
	})
}
