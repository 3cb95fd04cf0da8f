package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"eventboard/internal/domain"
)

type identityStore struct {
	// setMu orders whole Set calls so notifications follow the order of writes.
	setMu    sync.Mutex
	mu       sync.RWMutex
	identity string
	subs     []subscriber
	nextID   int

	sessions       domain.SessionStore
	sessionID      string
	persistTimeout time.Duration
	logger         *slog.Logger
}

type subscriber struct {
	id int
	fn func(string)
}

// NewIdentityStore returns an IdentityStore persisted under sessionID in sessions.
// A token written earlier in the same session is restored. sessions may be nil,
// in which case the identity lives only in memory.
func NewIdentityStore(ctx context.Context, sessions domain.SessionStore, sessionID string, timeout time.Duration, logger *slog.Logger) domain.IdentityStore {
	s := &identityStore{
		sessions:       sessions,
		sessionID:      sessionID,
		persistTimeout: timeout,
		logger:         logger,
	}
	if sessions == nil {
		return s
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	token, err := sessions.Get(ctx, sessionID, domain.IdentityKey)
	switch {
	case err == nil:
		s.identity = token
		logger.Info("identity restored", "session_id", sessionID)
	case errors.Is(err, domain.ErrNotFound):
	default:
		logger.Warn("identity restore failed", "session_id", sessionID, "err", err)
	}
	return s
}

func (s *identityStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

func (s *identityStore) Set(token string) {
	s.setMu.Lock()
	defer s.setMu.Unlock()

	s.mu.Lock()
	s.identity = token
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	s.persist(token)

	for _, sub := range subs {
		sub.fn(token)
	}
}

func (s *identityStore) Subscribe(fn func(identity string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *identityStore) persist(token string) {
	if s.sessions == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.persistTimeout)
	defer cancel()
	if err := s.sessions.Put(ctx, s.sessionID, domain.IdentityKey, token); err != nil {
		s.logger.Warn("identity persist failed", "session_id", s.sessionID, "err", err)
	}
}
