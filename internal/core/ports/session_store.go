package ports

import (
	"context"

	"github.com/animationlms/platform-api/internal/core/domain"
)

// SessionStore persists the identity associated with a session ID. Load
// returns domain.ErrSessionNotFound when the slot is empty or its contents
// cannot be decoded; Clear is idempotent.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, user *domain.User) error
	Load(ctx context.Context, sessionID string) (*domain.User, error)
	Clear(ctx context.Context, sessionID string) error
}
