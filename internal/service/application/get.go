package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// Get returns a single application. Visible to the candidate who submitted
// it and to the owner of the referenced job.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	a, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("application.Get: %w", err)
	}

	if a.CandidateID != userID {
		j, err := s.jobs.GetByID(ctx, a.JobID)
		if err != nil {
			return nil, fmt.Errorf("application.Get load job: %w", err)
		}
		if j.InterviewerID != userID {
			return nil, fmt.Errorf("application %s: %w", id, domain.ErrForbidden)
		}
	}

	return a, nil
}
