package scenes

import (
	"log"
	"sync"

	"github.com/automoto/cyberfx/components"
	cfg "github.com/automoto/cyberfx/config"
	"github.com/automoto/cyberfx/page"
	"github.com/automoto/cyberfx/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = 0

// PageScene shows every animated section of the page in one window
type PageScene struct {
	ecs      *ecs.ECS
	once     sync.Once
	clock    *session.FrameClock
	host     *pageHost
	registry *session.Registry
	router   *page.Router

	width, height int
}

func NewPageScene() *PageScene {
	return &PageScene{
		clock:  session.NewFrameClock(),
		host:   newPageHost(),
		router: page.NewRouter(),
		width:  cfg.Page.Width,
		height: cfg.Page.Height,
	}
}

func (ps *PageScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PageScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Page.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Resize lays the page out for a new window size
func (ps *PageScene) Resize(w, h int) {
	if w == ps.width && h == ps.height {
		return
	}
	ps.width, ps.height = w, h
	if ps.ecs == nil {
		return
	}
	ps.layout()
	ps.registry.Resize()
}

func (ps *PageScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())

	ps.ecs.AddSystem(ps.updatePointer)
	ps.ecs.AddSystem(ps.advanceFrames)

	ps.ecs.AddRenderer(layerDefault, ps.drawSections)
	ps.ecs.AddRenderer(layerDefault, drawCaptions)
	ps.ecs.AddRenderer(layerDefault, ps.drawDebug)

	for _, id := range append([]string{cfg.NetworkID}, page.Sections...) {
		entry := ps.ecs.World.Entry(ps.ecs.World.Create(components.Section))
		components.Section.Set(entry, &components.SectionData{
			ID:      id,
			Caption: captionFor(id),
			Panel:   id != cfg.NetworkID,
		})
	}
	ps.layout()

	ps.registry = session.Start(ps.host, cfg.Sessions, session.RegistryOptions{
		Scheduler: ps.clock,
		Seed:      cfg.Debug.Seed,
	})
	if cfg.Debug.LogSessions {
		log.Printf("page: %d sessions on %dx%d", ps.registry.Len(), ps.width, ps.height)
	}
}

func (ps *PageScene) layout() {
	rects := page.Layout(ps.width, ps.height, cfg.Page)
	ps.host.place(ps.width, ps.height, rects)
	ps.router.Place(ps.width, ps.height, rects)
	components.Section.Each(ps.ecs.World, func(e *donburi.Entry) {
		s := components.Section.Get(e)
		s.Rect = rects[s.ID]
	})
}

func captionFor(id string) string {
	for _, sc := range cfg.Sessions {
		if sc.ID == id {
			return sc.Caption
		}
	}
	return id
}
