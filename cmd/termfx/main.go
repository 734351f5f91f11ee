// Command termfx runs one of the page animations full-screen in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	cfg "github.com/automoto/cyberfx/config"
	"github.com/automoto/cyberfx/session"
	"github.com/gdamore/tcell/v2"
)

type app struct {
	screen   tcell.Screen
	host     *termHost
	clock    *session.FrameClock
	registry *session.Registry
	fps      int
}

func newApp(id string) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	cols, rows := screen.Size()
	a := &app{
		screen: screen,
		host:   newTermHost(id, cols, rows, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight),
		clock:  session.NewFrameClock(),
		fps:    cfg.Terminal.FPS,
	}
	a.registry = session.Start(a.host, cfg.Sessions, session.RegistryOptions{
		Scheduler: a.clock,
		Seed:      cfg.Debug.Seed,
	})
	if a.registry.Len() == 0 {
		screen.Fini()
		return nil, fmt.Errorf("unknown session %q", id)
	}
	return a, nil
}

// handle applies one terminal event and reports whether to keep running
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventResize:
		a.host.resize(ev.Size())
		a.registry.Resize()
		a.screen.Sync()

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := a.host.pixel(col, row)
		a.forEachPointer(func(p *session.Pointer) { p.Move(x, y) })

	case *tcell.EventFocus:
		if !ev.Focused {
			a.forEachPointer(func(p *session.Pointer) { p.Leave() })
		}
	}
	return true
}

func (a *app) forEachPointer(fn func(p *session.Pointer)) {
	for _, s := range a.registry.Sessions() {
		if p := s.Pointer(); p != nil {
			fn(p)
		}
	}
}

func (a *app) run() {
	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.handle(ev) {
				return
			}

		case <-ticker.C:
			a.clock.Advance()
			a.host.canvas.Flush(a.screen)
			a.screen.Show()
		}
	}
}

func (a *app) cleanup() {
	a.registry.Stop()
	a.screen.Fini()
}

func main() {
	id := flag.String("session", cfg.NetworkID, "surface id of the animation to run")
	seed := flag.Int64("seed", cfg.Debug.Seed, "random seed, 0 for time-based")
	fps := flag.Int("fps", cfg.Terminal.FPS, "frames per second")
	list := flag.Bool("list", false, "list session ids and exit")
	stats := flag.Int("stats", 0, "run every session headless for n frames, print the last frame's primitive counts and exit")
	flag.Parse()

	if *list {
		for _, sc := range cfg.Sessions {
			fmt.Printf("%-24s %s\n", sc.ID, sc.Caption)
		}
		return
	}

	cfg.Debug.Seed = *seed
	if *stats > 0 {
		writeStats(os.Stdout, frameStats(*stats, float64(cfg.Page.Width), float64(cfg.Page.Height), *seed))
		return
	}
	if *fps > 0 {
		cfg.Terminal.FPS = *fps
	}

	a, err := newApp(*id)
	if err != nil {
		log.Fatal(err)
	}
	defer a.cleanup()

	a.run()
}
