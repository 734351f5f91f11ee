package session

import (
	"log"
	"math/rand"
	"time"

	cfg "github.com/automoto/cyberfx/config"
)

// RegistryOptions configures Start
type RegistryOptions struct {
	// Scheduler drives every session. When nil no session is scheduled.
	Scheduler Scheduler

	// Seed derives each session's random source as Seed+index. 0 picks a
	// time-based seed.
	Seed int64
}

// Registry holds every session running on a page
type Registry struct {
	sessions []*Session
	byID     map[string]*Session
}

// Start creates one session per config in order. Configs whose surface the
// host cannot resolve are skipped.
func Start(host Host, configs []cfg.SessionConfig, opts RegistryOptions) *Registry {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	r := &Registry{byID: make(map[string]*Session)}
	for i, sc := range configs {
		s, ok := New(host, sc, Options{
			Scheduler: opts.Scheduler,
			Rand:      rand.New(rand.NewSource(seed + int64(i))),
		})
		if !ok {
			if cfg.Debug.LogSessions {
				log.Printf("session %s: no surface, skipped", sc.ID)
			}
			continue
		}
		if cfg.Debug.LogSessions {
			w, h := s.Bounds()
			log.Printf("session %s: %d %s entities on %.0fx%.0f", sc.ID, len(s.primary), sc.Variant, w, h)
		}
		r.sessions = append(r.sessions, s)
		r.byID[sc.ID] = s
	}
	return r
}

// Resize forwards a host resize to every session
func (r *Registry) Resize() {
	for _, s := range r.sessions {
		s.Resize()
	}
}

// Session returns the running session bound to id
func (r *Registry) Session(id string) (*Session, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// Sessions returns the running sessions in start order
func (r *Registry) Sessions() []*Session {
	return r.sessions
}

func (r *Registry) Len() int {
	return len(r.sessions)
}

// Stop stops every session
func (r *Registry) Stop() {
	for _, s := range r.sessions {
		s.Stop()
	}
}
