package ports

import (
	"context"

	"github.com/animationlms/platform-api/internal/core/domain"
)

// SignupRepository is the append-only store of notification signups.
// InsertMany persists the whole batch in a single store call; a failure is
// surfaced for the batch as a whole.
type SignupRepository interface {
	InsertOne(ctx context.Context, rec *domain.SignupRecord) error
	InsertMany(ctx context.Context, recs []domain.SignupRecord) error
	FindAll(ctx context.Context) ([]domain.SignupRecord, error)
}
