package memory

import (
	"context"
	"sync"

	"github.com/animationlms/platform-api/internal/core/domain"
)

// SessionStore is an in-process session slot map. It backs deployments
// without a Redis instance and the test suite; sessions do not survive a
// process restart.
type SessionStore struct {
	mu    sync.RWMutex
	slots map[string]domain.User
}

func NewSessionStore() *SessionStore {
	return &SessionStore{slots: make(map[string]domain.User)}
}

func (s *SessionStore) Save(_ context.Context, sessionID string, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[sessionID] = *user
	return nil
}

func (s *SessionStore) Load(_ context.Context, sessionID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.slots[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &user, nil
}

func (s *SessionStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, sessionID)
	return nil
}
