package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// SendResult reports a dispatched email and whether the relay accepted it.
// A relay failure does not fail the operation; the log entry is written
// either way so the audit trail matches what was attempted.
type SendResult struct {
	Log       *domain.EmailLog
	Delivered bool
}

// Send dispatches an email through the relay and records it. Interviewer
// only: candidates never send mail directly.
func (s *Service) Send(ctx context.Context, input SendInput) (*SendResult, error) {
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

	delivered := true
	if err := s.relay.Send(ctx, input.Recipient, input.Subject, input.Body); err != nil {
		delivered = false
		s.log.ErrorContext(ctx, "relay rejected email",
			slog.String("recipient", input.Recipient),
			slog.Any("error", err))
	}

	entry := &domain.EmailLog{
		Recipient:   input.Recipient,
		Subject:     input.Subject,
		Body:        input.Body,
		SenderID:    &userID,
		InterviewID: input.InterviewID,
	}
	if input.Type != nil {
		emailType := domain.EmailType(*input.Type)
		entry.Type = &emailType
	}

	logged, err := s.emails.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("email.Send log: %w", err)
	}

	return &SendResult{Log: logged, Delivered: delivered}, nil
}

// List returns the full audit log, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.EmailLog, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsInterviewerCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	logs, err := s.emails.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("email.List: %w", err)
	}
	return logs, nil
}

// ListByInterview returns audit entries tied to one interview.
func (s *Service) ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]*domain.EmailLog, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsInterviewerCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	logs, err := s.emails.ListByInterview(ctx, interviewID)
	if err != nil {
		return nil, fmt.Errorf("email.ListByInterview: %w", err)
	}
	return logs, nil
}

// Delete removes an audit entry. Only the original sender may delete it;
// entries written by the system (no sender) are permanent.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	entry, err := s.emails.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("email.Delete load: %w", err)
	}

	if entry.SenderID == nil || *entry.SenderID != userID {
		return fmt.Errorf("email log %s: %w", id, domain.ErrForbidden)
	}

	if err := s.emails.Delete(ctx, id); err != nil {
		return fmt.Errorf("email.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "email log deleted", slog.String("email_log_id", id.String()))
	return nil
}
