package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// ListMine returns the caller's own applications, newest first.
func (s *Service) ListMine(ctx context.Context) ([]*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	apps, err := s.apps.ListByCandidate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("application.ListMine: %w", err)
	}
	return apps, nil
}

// ListByJob returns all applications against a job the caller owns.
func (s *Service) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("application.ListByJob load job: %w", err)
	}
	if j.InterviewerID != userID {
		return nil, fmt.Errorf("job %s not owned by caller: %w", jobID, domain.ErrForbidden)
	}

	apps, err := s.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("application.ListByJob: %w", err)
	}
	return apps, nil
}
