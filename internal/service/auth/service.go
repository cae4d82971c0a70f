// Package auth implements login against the external identity provider and
// session token issuance.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/auth"
	"github.com/battleworld/backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByIdentityKey(ctx context.Context, identityKey string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// identityVerifier resolves provider session tokens into identities.
type identityVerifier interface {
	VerifyToken(ctx context.Context, token string) (*auth.Identity, error)
}

// jwtManager issues and validates session tokens.
type jwtManager interface {
	GenerateSessionToken(userID uuid.UUID, role string) (string, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	verifier identityVerifier
	jwt      jwtManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, verifier identityVerifier, jwt jwtManager) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		verifier: verifier,
		jwt:      jwt,
	}
}

// AuthResult is the outcome of a successful login.
type AuthResult struct {
	User         *domain.User
	SessionToken string
}
