package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/cyberfx/config"
	"github.com/automoto/cyberfx/fonts"
	"github.com/automoto/cyberfx/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugSectionColor = color.RGBA{0, 255, 255, 255}
	debugProbeColor   = color.RGBA{255, 0, 0, 255}
	debugTextColor    = color.RGBA{0, 255, 136, 255}
)

func (ps *PageScene) drawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	for _, obj := range ps.router.Objects() {
		c := debugSectionColor
		if obj.HasTags(tags.ResolvProbe) {
			c = debugProbeColor
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	cx, cy := ebiten.CursorPosition()
	msg := fmt.Sprintf("FPS %.0f  TPS %.0f  sessions %d  frames %d  pointer over %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), ps.registry.Len(), ps.clock.Frames(),
		ps.router.At(float64(cx), float64(cy)))
	if !fonts.Loaded(fonts.Mono) {
		ebitenutil.DebugPrint(screen, msg)
		return
	}
	text.Draw(screen, msg, fonts.Mono.Get(), 4, 14, debugTextColor)
}
