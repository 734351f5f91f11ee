package main

import (
	"math/rand"
	"testing"

	cfg "github.com/automoto/cyberfx/config"
	"github.com/automoto/cyberfx/session"
)

func TestTermHostResolvesOneSurface(t *testing.T) {
	host := newTermHost(cfg.SecurityID, 40, 20, 8, 16)

	reg := session.Start(host, cfg.Sessions, session.RegistryOptions{Seed: 3})

	if reg.Len() != 1 {
		t.Fatalf("expected one session, got %d", reg.Len())
	}
	s, ok := reg.Session(cfg.SecurityID)
	if !ok {
		t.Fatal("expected the security session")
	}
	if w, h := s.Bounds(); w != 320 || h != 320 {
		t.Errorf("expected 320x320 surface, got %vx%v", w, h)
	}
}

func TestTermHostResize(t *testing.T) {
	host := newTermHost(cfg.NetworkID, 40, 20, 8, 16)
	clock := session.NewFrameClock()
	s, ok := session.New(host, cfg.Network, session.Options{Scheduler: clock, Rand: rand.New(rand.NewSource(1))})
	if !ok {
		t.Fatal("expected network session")
	}
	clock.Advance()

	host.resize(20, 10)
	s.Resize()

	if w, h := host.canvas.Size(); w != 160 || h != 160 {
		t.Errorf("expected canvas 160x160, got %vx%v", w, h)
	}
	clock.Advance()
}

func TestTermHostPixelIsCellCentre(t *testing.T) {
	host := newTermHost(cfg.NetworkID, 10, 10, 8, 16)
	if x, y := host.pixel(2, 3); x != 20 || y != 56 {
		t.Errorf("expected (20, 56), got (%v, %v)", x, y)
	}
}
