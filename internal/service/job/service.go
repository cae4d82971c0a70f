// Package job implements job posting management. Jobs are public to read;
// every mutation is restricted to the interviewer who owns the posting.
package job

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
)

// jobRepo defines the job repository interface needed by the job service.
type jobRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	List(ctx context.Context) ([]*domain.Job, error)
	ListByInterviewer(ctx context.Context, interviewerID uuid.UUID) ([]*domain.Job, error)
	Create(ctx context.Context, j *domain.Job) (*domain.Job, error)
	Update(ctx context.Context, id uuid.UUID, params domain.JobUpdateParams) (*domain.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements job operations.
type Service struct {
	log  *slog.Logger
	jobs jobRepo
}

// NewService creates a new job service instance.
func NewService(logger *slog.Logger, jobs jobRepo) *Service {
	return &Service{
		log:  logger.With("service", "job"),
		jobs: jobs,
	}
}
