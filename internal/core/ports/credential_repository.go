package ports

import (
	"context"

	"github.com/animationlms/platform-api/internal/core/domain"
)

// CredentialRepository is the read-only store of known accounts. Lookups are
// case-sensitive exact matches; the dataset is fixed at process start.
type CredentialRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Credential, error)
	List(ctx context.Context) ([]domain.User, error)
}
