package job

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// Create posts a new job owned by the calling interviewer.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Job, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsInterviewerCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	j, err := s.jobs.Create(ctx, &domain.Job{
		Title:         input.Title,
		Description:   input.Description,
		RoleType:      input.RoleType,
		Location:      input.Location,
		InterviewerID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("job.Create: %w", err)
	}

	s.log.InfoContext(ctx, "job created",
		slog.String("job_id", j.ID.String()),
		slog.String("interviewer_id", userID.String()))

	return j, nil
}
