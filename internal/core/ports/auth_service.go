package ports

import (
	"context"

	"github.com/animationlms/platform-api/internal/core/domain"
)

// AuthService verifies credentials and manages session state. Login returns
// domain.ErrInvalidCredentials for unknown emails and wrong passwords alike;
// Logout is idempotent; Resolve rehydrates a previously stored identity.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Logout(ctx context.Context, sessionID string) error
	Resolve(ctx context.Context, sessionID string) (*domain.User, error)
}
