package memory

import (
	"context"
	"sort"

	"github.com/animationlms/platform-api/internal/core/domain"
)

// CredentialRepository is the fixed in-memory account table. It is seeded
// once at construction and immutable afterwards, so reads need no locking.
// Email lookup is a case-sensitive exact match.
type CredentialRepository struct {
	byEmail map[string]domain.Credential
}

func NewCredentialRepository(creds []domain.Credential) *CredentialRepository {
	byEmail := make(map[string]domain.Credential, len(creds))
	for _, cred := range creds {
		byEmail[cred.User.Email] = cred
	}
	return &CredentialRepository{byEmail: byEmail}
}

func (r *CredentialRepository) FindByEmail(_ context.Context, email string) (*domain.Credential, error) {
	cred, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return &cred, nil
}

// List returns the stored accounts without their password hashes, sorted by
// ID for stable output.
func (r *CredentialRepository) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.byEmail))
	for _, cred := range r.byEmail {
		users = append(users, cred.User)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
