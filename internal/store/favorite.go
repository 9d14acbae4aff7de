package store

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/iliyamo/cinema-booking/internal/catalog"
	"github.com/iliyamo/cinema-booking/internal/repository"
)

// FavoriteState is the favourite cinema of a session.  Error holds the
// message of the last rejected Set.
type FavoriteState struct {
	CinemaID *int64 `json:"cinema_id"`
	Error    string `json:"error,omitempty"`
}

// FavoriteCinemaStore keeps one favourite cinema id, validated against the
// catalog, under KeyFavoriteCinema.
type FavoriteCinemaStore struct {
	kv  KV
	c   *repository.Catalog
	log *zap.Logger

	mu    sync.Mutex
	state FavoriteState
}

func NewFavoriteCinemaStore(kv KV, c *repository.Catalog, log *zap.Logger) *FavoriteCinemaStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FavoriteCinemaStore{kv: kv, c: c, log: log}
}

func (s *FavoriteCinemaStore) State() FavoriteState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if st.CinemaID != nil {
		id := *st.CinemaID
		st.CinemaID = &id
	}
	return st
}

// Set makes id the favourite.  An unknown id only records an error.
func (s *FavoriteCinemaStore) Set(ctx context.Context, id int64) {
	if _, ok := s.c.Cinema(id); !ok {
		s.mu.Lock()
		s.state.Error = fmt.Sprintf("Cinema with ID %d not found.", id)
		s.mu.Unlock()
		return
	}
	s.mu.Lock()
	s.state = FavoriteState{CinemaID: &id}
	s.mu.Unlock()
	if err := s.kv.Set(ctx, KeyFavoriteCinema, strconv.FormatInt(id, 10)); err != nil {
		s.log.Error("persist favorite cinema", zap.Error(err))
	}
}

func (s *FavoriteCinemaStore) Clear(ctx context.Context) {
	s.mu.Lock()
	s.state.CinemaID = nil
	s.mu.Unlock()
	if err := s.kv.Remove(ctx, KeyFavoriteCinema); err != nil {
		s.log.Error("remove favorite cinema", zap.Error(err))
	}
}

// Restore reads the stored id.  A value that no longer names a cinema is
// removed from storage.
func (s *FavoriteCinemaStore) Restore(ctx context.Context) {
	raw, ok, err := s.kv.Get(ctx, KeyFavoriteCinema)
	if err != nil {
		s.log.Warn("restore favorite cinema", zap.Error(err))
		return
	}
	if !ok || raw == "" {
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		if _, found := s.c.Cinema(id); found {
			s.mu.Lock()
			s.state.CinemaID = &id
			s.mu.Unlock()
			return
		}
	}
	s.log.Info("dropping stale favorite cinema", zap.String("value", raw))
	if err := s.kv.Remove(ctx, KeyFavoriteCinema); err != nil {
		s.log.Error("remove favorite cinema", zap.Error(err))
	}
}

// Details resolves the favourite for display.  ok is false when no
// favourite is set.
func (s *FavoriteCinemaStore) Details(locale string) (catalog.CinemaView, bool) {
	st := s.State()
	if st.CinemaID == nil {
		return catalog.CinemaView{}, false
	}
	return catalog.New(s.c).CinemaDetail(*st.CinemaID, locale)
}
