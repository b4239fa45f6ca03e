package service

import (
	"context"
	"sync"

	"github.com/animationlms/platform-api/internal/core/domain"
	"github.com/animationlms/platform-api/internal/core/ports"
)

// Session is the per-request authentication context. It replaces any notion
// of a process-wide "current user": each request (or logical client
// session) gets its own instance, so concurrent requests can never observe
// each other's identity.
//
// The identity is hydrated from the session store at most once, on first
// access; subsequent reads hit the in-memory cache.
type Session struct {
	id   string
	auth ports.AuthService

	mu       sync.Mutex
	current  *domain.User
	hydrated bool
}

// NewSession binds a session ID to the auth service. An empty ID yields an
// anonymous session.
func NewSession(auth ports.AuthService, sessionID string) *Session {
	return &Session{id: sessionID, auth: auth}
}

// AnonymousSession returns a session with no identity attached.
func AnonymousSession(auth ports.AuthService) *Session {
	return NewSession(auth, "")
}

// ID returns the bound session ID, empty for anonymous sessions.
func (s *Session) ID() string {
	return s.id
}

// Current returns the authenticated identity, or nil when the session is
// anonymous. A rehydration failure of any kind (missing slot, decode error,
// store unavailable) degrades silently to anonymous.
func (s *Session) Current(ctx context.Context) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return s.current
	}
	s.hydrated = true

	if s.id == "" {
		return nil
	}
	user, err := s.auth.Resolve(ctx, s.id)
	if err != nil {
		return nil
	}
	s.current = user
	return s.current
}

// Effective returns the identity authorization decisions run against: the
// authenticated user, or a freshly built visitor. Never nil to callers.
func (s *Session) Effective(ctx context.Context) domain.User {
	if user := s.Current(ctx); user != nil {
		return *user
	}
	return domain.VisitorUser()
}

// IsAuthenticated reports whether the session carries a real identity.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	return s.Current(ctx) != nil
}

// HasPermission evaluates the role hierarchy against the effective
// identity. Denial is an answer, not an error.
func (s *Session) HasPermission(ctx context.Context, required domain.Role) bool {
	return s.Effective(ctx).Role.Satisfies(required)
}

// Logout clears both the stored session slot and the local cache. Calling
// it on an anonymous or already-cleared session is a no-op.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.id == "" {
		return nil
	}
	if err := s.auth.Logout(ctx, s.id); err != nil {
		return err
	}
	s.current = nil
	s.hydrated = true
	return nil
}
