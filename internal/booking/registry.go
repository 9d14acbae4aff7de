package booking

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/cinema-booking/internal/catalog"
)

// DefaultIdleTTL is how long an untouched flow is kept.
const DefaultIdleTTL = 30 * time.Minute

// Registry keeps one Flow per client session.  Flows untouched for longer
// than the idle TTL are evicted on a later Get.
type Registry struct {
	q    *catalog.Queries
	log  *zap.Logger
	idle time.Duration
	now  func() time.Time

	mu        sync.Mutex
	flows     map[string]*entry
	lastSweep time.Time
}

type entry struct {
	flow *Flow
	seen time.Time
}

func NewRegistry(q *catalog.Queries, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{q: q, log: log, idle: DefaultIdleTTL, now: time.Now, flows: make(map[string]*entry)}
}

// SetIdleTTL changes the idle eviction window; d <= 0 is ignored.
func (r *Registry) SetIdleTTL(d time.Duration) {
	if d <= 0 {
		return
	}
	r.mu.Lock()
	r.idle = d
	r.mu.Unlock()
}

// Get returns the flow of sessionID, creating it on first use.
func (r *Registry) Get(sessionID string) *Flow {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	if now.Sub(r.lastSweep) >= r.idle {
		r.lastSweep = now
		for id, e := range r.flows {
			if now.Sub(e.seen) > r.idle {
				delete(r.flows, id)
			}
		}
	}
	e, ok := r.flows[sessionID]
	if !ok {
		e = &entry{flow: NewFlow(r.q, r.log.With(zap.String("session_id", sessionID)))}
		r.flows[sessionID] = e
	}
	e.seen = now
	return e.flow
}

// Drop forgets the flow of sessionID.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	delete(r.flows, sessionID)
	r.mu.Unlock()
}

// Len reports how many sessions hold a flow.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.flows)
}
