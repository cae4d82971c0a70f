package interview

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// Update applies a status or meeting-link change. Only the candidate or a
// panel member may touch an interview. The end time is set exactly when the
// status transitions to completed and is never cleared afterwards.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Interview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("interview.Update load: %w", err)
	}

	if existing.CandidateID != userID && !existing.HasPanelMember(userID) {
		return nil, fmt.Errorf("interview %s: %w", id, domain.ErrForbidden)
	}

	params := domain.InterviewUpdateParams{MeetingLink: input.MeetingLink}
	if input.Status != nil {
		status := domain.InterviewStatus(*input.Status)
		params.Status = &status

		if status.IsCompleted() && !existing.Status.IsCompleted() {
			endTime := s.now().UTC()
			params.EndTime = &endTime
		}
	}

	iv, err := s.interviews.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("interview.Update: %w", err)
	}

	s.log.InfoContext(ctx, "interview updated",
		slog.String("interview_id", id.String()),
		slog.String("status", iv.Status.String()))

	return iv, nil
}
