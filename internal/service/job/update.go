package job

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// Update applies a partial update to a job the caller owns.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Job, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("job.Update load: %w", err)
	}
	if existing.InterviewerID != userID {
		return nil, fmt.Errorf("job %s not owned by caller: %w", id, domain.ErrForbidden)
	}

	params := domain.JobUpdateParams{
		Title:       input.Title,
		Description: input.Description,
		RoleType:    input.RoleType,
		Location:    input.Location,
	}
	if params.IsEmpty() {
		return existing, nil
	}

	j, err := s.jobs.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("job.Update: %w", err)
	}

	s.log.InfoContext(ctx, "job updated", slog.String("job_id", id.String()))

	return j, nil
}

// Delete removes a job the caller owns. Applications against it cascade.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	existing, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("job.Delete load: %w", err)
	}
	if existing.InterviewerID != userID {
		return fmt.Errorf("job %s not owned by caller: %w", id, domain.ErrForbidden)
	}

	if err := s.jobs.Delete(ctx, id); err != nil {
		return fmt.Errorf("job.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "job deleted", slog.String("job_id", id.String()))

	return nil
}
