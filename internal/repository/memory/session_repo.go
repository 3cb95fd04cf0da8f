package memory

import (
	"context"
	"sync"

	"eventboard/internal/domain"
)

type sessionRepository struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

// NewSessionRepository returns a SessionStore that lives as long as the process.
func NewSessionRepository() domain.SessionStore {
	return &sessionRepository{values: make(map[string]map[string]string)}
}

func (r *sessionRepository) Get(_ context.Context, sessionID, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[sessionID][key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (r *sessionRepository) Put(_ context.Context, sessionID, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.values[sessionID] == nil {
		r.values[sessionID] = make(map[string]string)
	}
	r.values[sessionID][key] = value
	return nil
}
