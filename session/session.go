// Package session runs one animated surface per Session: it owns the
// entities, repaints them every frame and follows the surface size.
package session

import (
	"math/rand"
	"time"

	"github.com/automoto/cyberfx/components"
	cfg "github.com/automoto/cyberfx/config"
	"github.com/automoto/cyberfx/render"
	"github.com/automoto/cyberfx/systems"
	"github.com/automoto/cyberfx/systems/factory"
	"github.com/yohamta/donburi"
)

// Options carries the collaborators a session is built with
type Options struct {
	// Scheduler drives Frame. When nil the session is not scheduled and
	// only runs when the caller invokes Frame.
	Scheduler Scheduler

	// Rand is the session's private random source. Time-seeded when nil.
	Rand *rand.Rand

	// Preset replaces random construction with the given entities, in order.
	// Packets in the preset become the secondary collection.
	Preset []components.ParticleData
}

// Session is one running animation bound to one surface
type Session struct {
	cfg     cfg.SessionConfig
	host    Host
	surface Surface
	rng     *rand.Rand
	style   systems.Style

	world   donburi.World
	bounds  *donburi.Entry
	primary []donburi.Entity
	packets []donburi.Entity
	pointer *Pointer

	links []systems.Link
	stop  func()
}

// New binds a session to the surface named by sc.ID. When the host has no
// such surface nothing is created or scheduled and ok is false.
func New(host Host, sc cfg.SessionConfig, opts Options) (s *Session, ok bool) {
	surface, found := host.Lookup(sc.ID)
	if !found {
		return nil, false
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s = &Session{
		cfg:     sc,
		host:    host,
		surface: surface,
		rng:     opts.Rand,
		style:   systems.StyleFor(sc),
		world:   donburi.NewWorld(),
	}

	w, h := s.size()
	surface.SetSize(w, h)
	s.bounds = factory.CreateSurface(s.world, sc.ID, w, h)

	if len(opts.Preset) > 0 {
		s.spawnPreset(opts.Preset)
	} else {
		s.primary = factory.CreateParticles(s.world, s.rng, sc, w, h)
		if sc.Variant == cfg.VariantNode {
			s.packets = factory.CreatePackets(s.world, s.rng, sc.Packet, sc.Packets, len(s.primary))
		}
	}

	if sc.Pointer != nil {
		s.pointer = newPointer(surface, factory.CreatePointer(s.world))
	}

	if opts.Scheduler != nil {
		s.stop = opts.Scheduler.Start(s.Frame)
	}
	return s, true
}

// spawnPreset spawns the preset's primary entities first so packets can be
// bound to them. Packet endpoints outside the node range are redrawn, and
// packets are dropped when the preset has no nodes.
func (s *Session) spawnPreset(preset []components.ParticleData) {
	var packets []components.ParticleData
	for _, p := range preset {
		if p.Kind == cfg.VariantPacket {
			packets = append(packets, p)
			continue
		}
		s.primary = append(s.primary, factory.Spawn(s.world, p))
	}
	if len(s.primary) == 0 {
		return
	}
	for _, p := range packets {
		systems.RebindInvalid(&p, len(s.primary), s.rng)
		s.packets = append(s.packets, factory.Spawn(s.world, p))
	}
}

func (s *Session) size() (float64, float64) {
	if s.cfg.Sizing == cfg.SizeViewport {
		return s.host.ViewportSize()
	}
	return s.surface.ContainerSize()
}

// Frame repaints the surface: background, proximity links, pointer links,
// primary entities, packets and finally the pointer marker. Links are taken
// from positions before this frame's update.
func (s *Session) Frame() {
	c := s.surface.Canvas()
	bounds := components.Surface.Get(s.bounds)

	systems.DrawBackground(c, bounds, s.cfg.Background)

	var pts []render.Point
	if s.cfg.Links != nil || s.pointer != nil {
		pts = systems.Positions(s.world, s.primary)
	}

	s.links = nil
	if lc := s.cfg.Links; lc != nil {
		s.links = systems.ComputeLinks(pts, lc.Threshold, lc.BaseOpacity)
		systems.DrawLinks(c, pts, s.links, *lc)
	}

	px, py, hovering := s.pointerAt()
	if hovering {
		pc := *s.cfg.Pointer
		systems.DrawPointerLinks(c, pts, systems.PointerLinks(pts, px, py, pc.Radius, 1), px, py, pc)
	}

	systems.StepParticles(s.world, s.primary, c, &s.style)
	systems.StepPackets(s.world, s.packets, s.primary, s.rng, c, &s.style)

	if hovering {
		systems.DrawPointerMarker(c, px, py, *s.cfg.Pointer)
	}
}

func (s *Session) pointerAt() (float64, float64, bool) {
	if s.pointer == nil {
		return 0, 0, false
	}
	return s.pointer.Position()
}

// Resize re-reads the size source and reallocates the surface. Entities keep
// their positions even when they now lie outside the new bounds.
func (s *Session) Resize() {
	w, h := s.size()
	s.surface.SetSize(w, h)
	b := components.Surface.Get(s.bounds)
	b.Width = w
	b.Height = h
}

// Stop cancels the repeating frame task
func (s *Session) Stop() {
	if s.stop != nil {
		s.stop()
	}
}

func (s *Session) ID() string {
	return s.cfg.ID
}

func (s *Session) Config() cfg.SessionConfig {
	return s.cfg
}

// Bounds returns the current surface size
func (s *Session) Bounds() (float64, float64) {
	b := components.Surface.Get(s.bounds)
	return b.Width, b.Height
}

// Entities returns a snapshot of the primary entities in insertion order
func (s *Session) Entities() []components.ParticleData {
	return s.snapshot(s.primary)
}

// Secondary returns a snapshot of the packets in insertion order
func (s *Session) Secondary() []components.ParticleData {
	return s.snapshot(s.packets)
}

func (s *Session) snapshot(order []donburi.Entity) []components.ParticleData {
	out := make([]components.ParticleData, 0, len(order))
	for _, e := range order {
		out = append(out, *components.Particle.Get(s.world.Entry(e)))
	}
	return out
}

// Links returns the proximity links computed by the last frame
func (s *Session) Links() []systems.Link {
	return s.links
}

// Pointer returns the session's pointer tracker, nil when the session does
// not follow the pointer
func (s *Session) Pointer() *Pointer {
	return s.pointer
}
