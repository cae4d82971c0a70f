// Package comment implements post-interview feedback.
package comment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
)

// commentRepo defines the comment repository interface needed here.
type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]*domain.Comment, error)
}

// interviewRepo resolves the interview a comment is attached to.
type interviewRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Interview, error)
}

// Service implements comment operations.
type Service struct {
	log        *slog.Logger
	comments   commentRepo
	interviews interviewRepo
}

// NewService creates a new comment service instance.
func NewService(logger *slog.Logger, comments commentRepo, interviews interviewRepo) *Service {
	return &Service{
		log:        logger.With("service", "comment"),
		comments:   comments,
		interviews: interviews,
	}
}
