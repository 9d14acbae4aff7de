package store

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/iliyamo/cinema-booking/internal/model"
)

// UserState is the signed-in user of a session.
type UserState struct {
	CurrentUser *model.Profile `json:"current_user"`
	IsLoggedIn  bool           `json:"is_logged_in"`
	Loading     bool           `json:"loading"`
	Error       string         `json:"error,omitempty"`
}

// UserStore tracks the signed-in user and persists it under KeyUser.
type UserStore struct {
	kv  KV
	log *zap.Logger

	mu    sync.Mutex
	state UserState
}

func NewUserStore(kv KV, log *zap.Logger) *UserStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserStore{kv: kv, log: log}
}

// State returns a copy of the current state.
func (s *UserStore) State() UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if st.CurrentUser != nil {
		u := *st.CurrentUser
		st.CurrentUser = &u
	}
	return st
}

// Current returns the signed-in profile.
func (s *UserStore) Current() (model.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsLoggedIn || s.state.CurrentUser == nil {
		return model.Profile{}, false
	}
	return *s.state.CurrentUser, true
}

func (s *UserStore) persist(ctx context.Context, p model.Profile) {
	b, err := json.Marshal(p)
	if err != nil {
		s.log.Error("encode user", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, KeyUser, string(b)); err != nil {
		s.log.Error("persist user", zap.Error(err))
	}
}

func (s *UserStore) forget(ctx context.Context) {
	if err := s.kv.Remove(ctx, KeyUser); err != nil {
		s.log.Error("remove user", zap.Error(err))
	}
}

// Reset clears the state and removes the persisted user.
func (s *UserStore) Reset(ctx context.Context) {
	s.mu.Lock()
	s.state = UserState{}
	s.mu.Unlock()
	s.forget(ctx)
}

func (s *UserStore) SignInStart() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()
}

func (s *UserStore) SignInSuccess(ctx context.Context, p model.Profile) {
	s.mu.Lock()
	s.state = UserState{CurrentUser: &p, IsLoggedIn: true}
	s.mu.Unlock()
	s.persist(ctx, p)
}

// SignInFailure records msg; the previous user, if any, is kept.
func (s *UserStore) SignInFailure(msg string) {
	s.mu.Lock()
	s.state.Error = msg
	s.state.Loading = false
	s.mu.Unlock()
}

func (s *UserStore) SignOut(ctx context.Context) {
	s.mu.Lock()
	s.state = UserState{}
	s.mu.Unlock()
	s.forget(ctx)
}

func (s *UserStore) UpdateStart() {
	s.SignInStart()
}

// UpdateSuccess replaces the profile without touching IsLoggedIn.
func (s *UserStore) UpdateSuccess(ctx context.Context, p model.Profile) {
	s.mu.Lock()
	s.state.CurrentUser = &p
	s.state.Loading = false
	s.state.Error = ""
	s.mu.Unlock()
	s.persist(ctx, p)
}

func (s *UserStore) UpdateFailure(msg string) {
	s.SignInFailure(msg)
}

// Restore loads the persisted user.  A missing key leaves the state as is;
// an unreadable value logs the session out.
func (s *UserStore) Restore(ctx context.Context) {
	raw, ok, err := s.kv.Get(ctx, KeyUser)
	if err != nil {
		s.log.Warn("restore user", zap.Error(err))
		return
	}
	if !ok || raw == "" {
		return
	}
	var p model.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.log.Warn("corrupt stored user, signing out", zap.Error(err))
		s.mu.Lock()
		s.state.CurrentUser = nil
		s.state.IsLoggedIn = false
		s.mu.Unlock()
		return
	}
	s.mu.Lock()
	s.state.CurrentUser = &p
	s.state.IsLoggedIn = true
	s.mu.Unlock()
}

// UpdateUserSpending adds amount to the lifetime spend and one loyalty point
// per 10,000 VND.  It does nothing when signed out or amount <= 0.
func (s *UserStore) UpdateUserSpending(ctx context.Context, amount int64) {
	if amount <= 0 {
		return
	}
	s.mu.Lock()
	if !s.state.IsLoggedIn || s.state.CurrentUser == nil {
		s.mu.Unlock()
		return
	}
	p := *s.state.CurrentUser
	p.TotalSpent += amount
	p.Points += amount / 10000
	s.state.CurrentUser = &p
	s.mu.Unlock()
	s.persist(ctx, p)
}
