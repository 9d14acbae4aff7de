// Package store keeps per-session client state (signed-in user, order
// history, favourite cinema) on top of a small key-value abstraction.
// Store mutations never return errors: storage failures are logged and the
// in-memory state stays authoritative for the rest of the session.
package store

import (
	"context"
	"sync"
)

// Keys persisted by the stores.
const (
	KeyUser           = "user"
	KeyOrders         = "orders"
	KeyFavoriteCinema = "favorite_cinema_id"
)

// KV is string key-value storage.  Get reports ok=false for a missing key.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// MemoryKV is a KV held in process memory.
type MemoryKV struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: make(map[string]string)}
}

func (s *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemoryKV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.m[key] = value
	s.mu.Unlock()
	return nil
}

func (s *MemoryKV) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}

// namespaced prefixes every key with "ns:".
type namespaced struct {
	kv KV
	ns string
}

// Namespace scopes kv so that every key is stored as ns + ":" + key.
func Namespace(kv KV, ns string) KV {
	return namespaced{kv: kv, ns: ns + ":"}
}

func (n namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.kv.Get(ctx, n.ns+key)
}

func (n namespaced) Set(ctx context.Context, key, value string) error {
	return n.kv.Set(ctx, n.ns+key, value)
}

func (n namespaced) Remove(ctx context.Context, key string) error {
	return n.kv.Remove(ctx, n.ns+key)
}
