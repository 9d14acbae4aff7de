package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/cinema-booking/internal/repository"
)

// Session bundles the stores of one client over a shared namespace.
type Session struct {
	ID       string
	User     *UserStore
	Orders   *OrderStore
	Favorite *FavoriteCinemaStore
}

// NewSession builds the stores of session id on kv and restores their
// persisted state.
func NewSession(ctx context.Context, id string, kv KV, c *repository.Catalog, log *zap.Logger, opts ...OrderOption) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	ns := Namespace(kv, id)
	log = log.With(zap.String("session_id", id))
	s := &Session{
		ID:       id,
		User:     NewUserStore(ns, log),
		Orders:   NewOrderStore(ctx, ns, c, log, opts...),
		Favorite: NewFavoriteCinemaStore(ns, c, log),
	}
	s.User.Restore(ctx)
	s.Favorite.Restore(ctx)
	return s
}

// DefaultIdleTTL is how long an unused session stays cached.
const DefaultIdleTTL = 30 * time.Minute

// Sessions caches one Session per client id.  Sessions unused for longer
// than the idle TTL are evicted on a later Get; their persisted state is
// kept and restored on the next use.
type Sessions struct {
	kv   KV
	c    *repository.Catalog
	log  *zap.Logger
	opts []OrderOption
	idle time.Duration
	now  func() time.Time

	mu        sync.Mutex
	sessions  map[string]*cachedSession
	lastSweep time.Time
}

type cachedSession struct {
	sess *Session
	seen time.Time
}

func NewSessions(kv KV, c *repository.Catalog, log *zap.Logger, opts ...OrderOption) *Sessions {
	return &Sessions{
		kv: kv, c: c, log: log, opts: opts,
		idle:     DefaultIdleTTL,
		now:      time.Now,
		sessions: make(map[string]*cachedSession),
	}
}

// SetIdleTTL changes the idle eviction window; d <= 0 is ignored.
func (s *Sessions) SetIdleTTL(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.idle = d
	s.mu.Unlock()
}

// Get returns the session of id, restoring it from storage on first use.
func (s *Sessions) Get(ctx context.Context, id string) *Session {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep(now)
	if cs, ok := s.sessions[id]; ok {
		cs.seen = now
		return cs.sess
	}
	sess := NewSession(ctx, id, s.kv, s.c, s.log, s.opts...)
	s.sessions[id] = &cachedSession{sess: sess, seen: now}
	return sess
}

// sweep drops idle sessions, at most once per idle window.
func (s *Sessions) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < s.idle {
		return
	}
	s.lastSweep = now
	for id, cs := range s.sessions {
		if now.Sub(cs.seen) > s.idle {
			delete(s.sessions, id)
		}
	}
}

// Len reports how many sessions are cached.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Forget drops the cached session; its persisted state is kept.
func (s *Sessions) Forget(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
