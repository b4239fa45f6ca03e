package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/animationlms/platform-api/internal/api/metrics"
	"github.com/animationlms/platform-api/internal/core/domain"
	"github.com/animationlms/platform-api/internal/core/ports"
)

// AuthService implements login, logout, and session rehydration against a
// fixed credential store and a pluggable session store.
type AuthService struct {
	creds     ports.CredentialRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(creds ports.CredentialRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		creds:     creds,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login verifies the email/password pair and, on success, stores the
// identity under a fresh session ID and returns it with a signed token.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials so
// callers cannot tell which field was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	cred, err := s.creds.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	user := cred.User
	sessionID := uuid.NewString()
	if err := s.sessions.Save(ctx, sessionID, &user); err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("email", email).Msg("failed to persist session")
		return nil, "", err
	}

	token, err := s.generateToken(&user, sessionID)
	if err != nil {
		return nil, "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")
	return &user, token, nil
}

// Logout clears the session slot. Clearing an already-empty or unknown
// session is a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear session")
		return err
	}
	return nil
}

// Resolve loads the identity stored under sessionID. A missing or malformed
// slot yields domain.ErrSessionNotFound.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (*domain.User, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionNotFound
	}
	return s.sessions.Load(ctx, sessionID)
}

func (s *AuthService) generateToken(user *domain.User, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid":   sessionID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
