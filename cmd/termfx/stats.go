package main

import (
	"fmt"
	"io"
	"math/rand"

	cfg "github.com/automoto/cyberfx/config"
	"github.com/automoto/cyberfx/render"
	"github.com/automoto/cyberfx/session"
)

// recordSurface is an offscreen surface that records primitives
type recordSurface struct {
	rec  *render.Recorder
	w, h float64
}

func (s *recordSurface) Canvas() render.Canvas {
	return s.rec
}

func (s *recordSurface) ContainerSize() (float64, float64) {
	return s.w, s.h
}

func (s *recordSurface) Origin() (float64, float64) {
	return 0, 0
}

func (s *recordSurface) SetSize(w, h float64) {
	s.w, s.h = w, h
	s.rec.Reset()
}

// recordHost resolves every id to a recording surface of the same size
type recordHost struct {
	w, h     float64
	surfaces map[string]*recordSurface
}

func (h *recordHost) Lookup(id string) (session.Surface, bool) {
	s, ok := h.surfaces[id]
	if !ok {
		s = &recordSurface{rec: render.NewRecorder(), w: h.w, h: h.h}
		h.surfaces[id] = s
	}
	return s, true
}

func (h *recordHost) ViewportSize() (float64, float64) {
	return h.w, h.h
}

type sessionStats struct {
	ID       string
	Entities int
	Packets  int
	Links    int
	Ops      map[render.OpKind]int
}

// frameStats runs every session headless on a w x h surface and counts the
// primitives issued by the last of the given frames
func frameStats(frames int, w, h float64, seed int64) []sessionStats {
	host := &recordHost{w: w, h: h, surfaces: make(map[string]*recordSurface)}
	clock := session.NewFrameClock()
	if seed == 0 {
		seed = rand.Int63()
	}
	reg := session.Start(host, cfg.Sessions, session.RegistryOptions{Scheduler: clock, Seed: seed})
	defer reg.Stop()

	for i := 0; i < frames-1; i++ {
		clock.Advance()
	}
	for _, s := range host.surfaces {
		s.rec.Reset()
	}
	clock.Advance()

	var out []sessionStats
	for _, s := range reg.Sessions() {
		st := sessionStats{
			ID:       s.ID(),
			Entities: len(s.Entities()),
			Packets:  len(s.Secondary()),
			Links:    len(s.Links()),
			Ops:      make(map[render.OpKind]int),
		}
		rec := host.surfaces[s.ID()].rec
		for _, k := range render.OpKinds() {
			st.Ops[k] = rec.Count(k)
		}
		out = append(out, st)
	}
	return out
}

func writeStats(w io.Writer, stats []sessionStats) {
	fmt.Fprintf(w, "%-24s %8s %8s %6s", "session", "entities", "packets", "links")
	for _, k := range render.OpKinds() {
		fmt.Fprintf(w, " %13s", k)
	}
	fmt.Fprintln(w)
	for _, st := range stats {
		fmt.Fprintf(w, "%-24s %8d %8d %6d", st.ID, st.Entities, st.Packets, st.Links)
		for _, k := range render.OpKinds() {
			fmt.Fprintf(w, " %13d", st.Ops[k])
		}
		fmt.Fprintln(w)
	}
}
