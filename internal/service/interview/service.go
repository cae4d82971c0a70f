// Package interview implements interview scheduling and lifecycle.
package interview

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
)

// interviewRepo defines the interview repository interface needed here.
type interviewRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Interview, error)
	GetByStreamCallID(ctx context.Context, callID string) (*domain.Interview, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*domain.Interview, error)
	ListByInterviewer(ctx context.Context, interviewerID uuid.UUID) ([]*domain.Interview, error)
	Create(ctx context.Context, iv *domain.Interview) (*domain.Interview, error)
	Update(ctx context.Context, id uuid.UUID, params domain.InterviewUpdateParams) (*domain.Interview, error)
}

// userRepo verifies that scheduled participants exist.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service implements interview operations.
type Service struct {
	log        *slog.Logger
	interviews interviewRepo
	users      userRepo
	now        func() time.Time
}

// NewService creates a new interview service instance.
func NewService(logger *slog.Logger, interviews interviewRepo, users userRepo) *Service {
	return &Service{
		log:        logger.With("service", "interview"),
		interviews: interviews,
		users:      users,
		now:        time.Now,
	}
}
