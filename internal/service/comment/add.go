package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// Add attaches feedback to an interview. Interviewer-only; comments are
// immutable once written, there is no update or delete.
func (s *Service) Add(ctx context.Context, input AddInput) (*domain.Comment, error) {
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

	if _, err := s.interviews.GetByID(ctx, input.InterviewID); err != nil {
		return nil, fmt.Errorf("comment.Add load interview: %w", err)
	}

	c, err := s.comments.Create(ctx, &domain.Comment{
		InterviewID:   input.InterviewID,
		InterviewerID: userID,
		Content:       input.Content,
		Rating:        input.Rating,
	})
	if err != nil {
		return nil, fmt.Errorf("comment.Add: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("comment_id", c.ID.String()),
		slog.String("interview_id", input.InterviewID.String()),
		slog.Int("rating", input.Rating))

	return c, nil
}

// ListByInterview returns feedback for one interview in creation order.
func (s *Service) ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]*domain.Comment, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	comments, err := s.comments.ListByInterview(ctx, interviewID)
	if err != nil {
		return nil, fmt.Errorf("comment.ListByInterview: %w", err)
	}
	return comments, nil
}
