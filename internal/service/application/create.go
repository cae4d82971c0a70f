package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// Create submits a new application from the caller to a job. The candidate id
// is bound to the authenticated user; clients cannot apply on behalf of
// someone else. Re-applications to the same job are allowed or refused per
// the duplicate-application policy.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The job must exist; a dangling job id reads as not found.
	if _, err := s.jobs.GetByID(ctx, input.JobID); err != nil {
		return nil, fmt.Errorf("application.Create load job: %w", err)
	}

	if !s.cfg.AllowDuplicateApplications {
		count, err := s.apps.CountByCandidateAndJob(ctx, userID, input.JobID)
		if err != nil {
			return nil, fmt.Errorf("application.Create duplicate check: %w", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("application for job %s: %w", input.JobID, domain.ErrAlreadyExists)
		}
	}

	a, err := s.apps.Create(ctx, &domain.Application{
		JobID:       input.JobID,
		CandidateID: userID,
		ResumeText:  input.ResumeText,
		Status:      domain.ApplicationStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("application.Create: %w", err)
	}

	s.log.InfoContext(ctx, "application submitted",
		slog.String("application_id", a.ID.String()),
		slog.String("job_id", input.JobID.String()),
		slog.String("candidate_id", userID.String()))

	return a, nil
}
