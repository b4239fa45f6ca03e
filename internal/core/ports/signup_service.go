package ports

import (
	"context"

	"github.com/animationlms/platform-api/internal/core/domain"
)

// SignupInput is one notification-interest submission before normalization.
type SignupInput struct {
	Email     string
	Phone     string
	Timestamp string
	Source    string
}

// SignupService normalizes and persists notification signups. Duplicate
// emails are expected and never rejected.
type SignupService interface {
	Ingest(ctx context.Context, in SignupInput) error
	IngestBatch(ctx context.Context, ins []SignupInput) (int, error)
	List(ctx context.Context) ([]domain.SignupRecord, error)
}
