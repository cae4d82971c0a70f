package job

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// Get returns a single job posting. Public browsing surface, no identity
// required.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("job.Get: %w", err)
	}
	return j, nil
}

// List returns all job postings, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.List: %w", err)
	}
	return jobs, nil
}

// ListByInterviewer returns the postings owned by the given interviewer.
// Public browsing surface, no identity required.
func (s *Service) ListByInterviewer(ctx context.Context, interviewerID uuid.UUID) ([]*domain.Job, error) {
	jobs, err := s.jobs.ListByInterviewer(ctx, interviewerID)
	if err != nil {
		return nil, fmt.Errorf("job.ListByInterviewer: %w", err)
	}
	return jobs, nil
}

// ListMine returns the calling interviewer's own postings.
func (s *Service) ListMine(ctx context.Context) ([]*domain.Job, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	jobs, err := s.jobs.ListByInterviewer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("job.ListMine: %w", err)
	}
	return jobs, nil
}
