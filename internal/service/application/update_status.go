package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// UpdateStatus transitions an application's status. Only the owner of the
// referenced job may do this. Shortlisting atomically grants the chat
// permission between job owner and candidate and records an invite email;
// rejection records a rejection email. The email itself is dispatched after
// the transaction commits: a mail outage must not undo a status change.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	status := domain.ApplicationStatus(input.Status)

	a, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("application.UpdateStatus load: %w", err)
	}

	j, err := s.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		return nil, fmt.Errorf("application.UpdateStatus load job: %w", err)
	}
	if j.InterviewerID != userID {
		return nil, fmt.Errorf("job %s not owned by caller: %w", j.ID, domain.ErrForbidden)
	}

	candidate, err := s.users.GetByID(ctx, a.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("application.UpdateStatus load candidate: %w", err)
	}

	var (
		updated *domain.Application
		mail    *domain.EmailLog
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		updated, err = s.apps.UpdateStatus(txCtx, id, status)
		if err != nil {
			return err
		}

		switch status {
		case domain.ApplicationStatusShortlisted:
			userA, userB := domain.CanonicalPair(j.InterviewerID, a.CandidateID)
			if _, err := s.chatPerms.Upsert(txCtx, userA, userB, true); err != nil {
				return fmt.Errorf("grant chat permission: %w", err)
			}
			mail, err = s.emailLogs.Create(txCtx, statusEmail(j, candidate, userID, domain.EmailTypeInvite))
			if err != nil {
				return fmt.Errorf("record invite email: %w", err)
			}
		case domain.ApplicationStatusRejected:
			mail, err = s.emailLogs.Create(txCtx, statusEmail(j, candidate, userID, domain.EmailTypeRejection))
			if err != nil {
				return fmt.Errorf("record rejection email: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("application.UpdateStatus: %w", err)
	}

	if mail != nil {
		if err := s.email.Send(ctx, mail.Recipient, mail.Subject, mail.Body); err != nil {
			s.log.ErrorContext(ctx, "status email dispatch failed",
				slog.String("application_id", id.String()),
				slog.String("recipient", mail.Recipient),
				slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "application status changed",
		slog.String("application_id", id.String()),
		slog.String("status", status.String()))

	return updated, nil
}

func statusEmail(j *domain.Job, candidate *domain.User, senderID uuid.UUID, t domain.EmailType) *domain.EmailLog {
	subject := fmt.Sprintf("Update on your application for %s", j.Title)
	var body string
	switch t {
	case domain.EmailTypeInvite:
		body = fmt.Sprintf("Hi %s, you have been shortlisted for %s. The interviewer can now reach you in chat.", candidate.Name, j.Title)
	case domain.EmailTypeRejection:
		body = fmt.Sprintf("Hi %s, thank you for applying to %s. We will not be moving forward this time.", candidate.Name, j.Title)
	}

	emailType := t
	return &domain.EmailLog{
		Recipient: candidate.Email,
		Subject:   subject,
		Body:      body,
		SenderID:  &senderID,
		Type:      &emailType,
	}
}
