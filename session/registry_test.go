package session

import (
	"reflect"
	"testing"

	cfg "github.com/automoto/cyberfx/config"
)

func fullHost() *fakeHost {
	host := newFakeHost(1280, 800)
	for _, sc := range cfg.Sessions {
		host.add(sc.ID, 400, 250)
	}
	return host
}

func TestRegistryStartsEverySession(t *testing.T) {
	clock := NewFrameClock()
	reg := Start(fullHost(), cfg.Sessions, RegistryOptions{Scheduler: clock, Seed: 1})

	if reg.Len() != len(cfg.Sessions) || clock.Len() != len(cfg.Sessions) {
		t.Fatalf("expected %d sessions and tasks, got %d and %d", len(cfg.Sessions), reg.Len(), clock.Len())
	}
	for _, sc := range cfg.Sessions {
		s, ok := reg.Session(sc.ID)
		if !ok || s.ID() != sc.ID {
			t.Errorf("session %s missing", sc.ID)
		}
	}

	reg.Stop()
	if clock.Len() != 0 {
		t.Errorf("expected every task stopped, %d left", clock.Len())
	}
}

func TestRegistrySkipsMissingSurfaces(t *testing.T) {
	host := newFakeHost(1280, 800)
	host.add(cfg.SkillsID, 400, 250)
	clock := NewFrameClock()

	reg := Start(host, cfg.Sessions, RegistryOptions{Scheduler: clock, Seed: 1})

	if reg.Len() != 1 || clock.Len() != 1 {
		t.Fatalf("expected only the skills session, got %d sessions", reg.Len())
	}
	if _, ok := reg.Session(cfg.NetworkID); ok {
		t.Error("expected no network session")
	}
}

func TestRegistrySeedIsReproducible(t *testing.T) {
	a := Start(fullHost(), cfg.Sessions, RegistryOptions{Seed: 99})
	b := Start(fullHost(), cfg.Sessions, RegistryOptions{Seed: 99})

	for _, sc := range cfg.Sessions {
		sa, _ := a.Session(sc.ID)
		sb, _ := b.Session(sc.ID)
		if !reflect.DeepEqual(sa.Entities(), sb.Entities()) {
			t.Errorf("session %s differs between equal seeds", sc.ID)
		}
	}

	about, _ := a.Session(cfg.AboutCircuitID)
	contact, _ := a.Session(cfg.ContactCircuitID)
	if reflect.DeepEqual(about.Entities(), contact.Entities()) {
		t.Error("expected independent random sources per session")
	}
}

func TestRegistryResizeForwards(t *testing.T) {
	host := fullHost()
	reg := Start(host, cfg.Sessions, RegistryOptions{Seed: 5})

	host.vw, host.vh = 640, 480
	for _, s := range host.surfaces {
		s.w, s.h = 100, 80
	}
	reg.Resize()

	for _, s := range reg.Sessions() {
		w, h := s.Bounds()
		if s.Config().Sizing == cfg.SizeViewport {
			if w != 640 || h != 480 {
				t.Errorf("%s: expected viewport size, got %vx%v", s.ID(), w, h)
			}
		} else if w != 100 || h != 80 {
			t.Errorf("%s: expected container size, got %vx%v", s.ID(), w, h)
		}
	}
}
