package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// Delete removes an application. The candidate who submitted it may withdraw
// it; the owner of the referenced job may also remove it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	a, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("application.Delete load: %w", err)
	}

	if a.CandidateID != userID {
		j, err := s.jobs.GetByID(ctx, a.JobID)
		if err != nil {
			return fmt.Errorf("application.Delete load job: %w", err)
		}
		if j.InterviewerID != userID {
			return fmt.Errorf("application %s: %w", id, domain.ErrForbidden)
		}
	}

	if err := s.apps.Delete(ctx, id); err != nil {
		return fmt.Errorf("application.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "application deleted", slog.String("application_id", id.String()))

	return nil
}
