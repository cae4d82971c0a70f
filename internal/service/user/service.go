// Package user implements profile and role management.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
)

// userRepo defines the user repository interface needed by the user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, params domain.ProfileUpdateParams) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements user operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}
