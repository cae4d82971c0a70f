package interview

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// Create schedules an interview. Interviewer-only; the caller is always part
// of the panel, whether or not the client listed them.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Interview, error) {
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

	if _, err := s.users.GetByID(ctx, input.CandidateID); err != nil {
		return nil, fmt.Errorf("interview.Create load candidate: %w", err)
	}

	panel := slices.Clone(input.InterviewerIDs)
	if !slices.Contains(panel, userID) {
		panel = append(panel, userID)
	}

	iv, err := s.interviews.Create(ctx, &domain.Interview{
		Title:          input.Title,
		Description:    input.Description,
		StartTime:      input.StartTime,
		Status:         domain.InterviewStatusUpcoming,
		StreamCallID:   input.StreamCallID,
		MeetingLink:    input.MeetingLink,
		CandidateID:    input.CandidateID,
		InterviewerIDs: panel,
	})
	if err != nil {
		return nil, fmt.Errorf("interview.Create: %w", err)
	}

	s.log.InfoContext(ctx, "interview scheduled",
		slog.String("interview_id", iv.ID.String()),
		slog.String("candidate_id", input.CandidateID.String()),
		slog.Int("panel_size", len(panel)))

	return iv, nil
}
