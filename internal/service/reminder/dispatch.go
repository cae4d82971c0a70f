package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/battleworld/backend/internal/domain"
)

// DispatchResult summarizes one reminder run.
type DispatchResult struct {
	Due    int
	Sent   int
	Failed int
}

// Dispatch finds interviews starting inside the reminder window whose
// reminder has not gone out, emails each candidate, and marks the interview
// reminded. The flag and the audit entry are written in one transaction per
// interview; a failure on one interview does not stop the rest. MarkReminderSent
// is conditional, so two concurrent runs cannot both claim the same interview.
func (s *Service) Dispatch(ctx context.Context) (*DispatchResult, error) {
	now := s.now().UTC()
	due, err := s.interviews.ListDueForReminder(ctx, now, now.Add(s.cfg.ReminderWindow))
	if err != nil {
		return nil, fmt.Errorf("reminder.Dispatch list: %w", err)
	}

	res := &DispatchResult{Due: len(due)}
	for _, iv := range due {
		if err := s.remind(ctx, iv, now); err != nil {
			res.Failed++
			s.log.ErrorContext(ctx, "reminder failed",
				slog.String("interview_id", iv.ID.String()),
				slog.Any("error", err))
			continue
		}
		res.Sent++
	}

	s.log.InfoContext(ctx, "reminder run finished",
		slog.Int("due", res.Due),
		slog.Int("sent", res.Sent),
		slog.Int("failed", res.Failed))

	return res, nil
}

func (s *Service) remind(ctx context.Context, iv *domain.Interview, now time.Time) error {
	candidate, err := s.users.GetByID(ctx, iv.CandidateID)
	if err != nil {
		return fmt.Errorf("load candidate: %w", err)
	}

	subject, body := reminderEmail(iv)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.interviews.MarkReminderSent(txCtx, iv.ID, now); err != nil {
			return fmt.Errorf("mark reminded: %w", err)
		}

		emailType := domain.EmailTypeFollowup
		_, err := s.emailLogs.Create(txCtx, &domain.EmailLog{
			Recipient:   candidate.Email,
			Subject:     subject,
			Body:        body,
			Type:        &emailType,
			InterviewID: &iv.ID,
		})
		return err
	})
	if err != nil {
		return err
	}

	// Dispatched after commit: the reminded flag must survive a mail outage,
	// same policy as application status emails.
	if err := s.email.Send(ctx, candidate.Email, subject, body); err != nil {
		s.log.ErrorContext(ctx, "reminder email rejected by relay",
			slog.String("interview_id", iv.ID.String()),
			slog.Any("error", err))
	}
	return nil
}

func reminderEmail(iv *domain.Interview) (subject, body string) {
	subject = fmt.Sprintf("Reminder: %s starts at %s", iv.Title, iv.StartTime.UTC().Format("15:04 MST"))
	body = fmt.Sprintf(
		"<p>Your interview <strong>%s</strong> starts at %s.</p>",
		iv.Title, iv.StartTime.UTC().Format(time.RFC1123))
	if iv.MeetingLink != nil && *iv.MeetingLink != "" {
		body += fmt.Sprintf(`<p>Join: <a href="%s">%s</a></p>`, *iv.MeetingLink, *iv.MeetingLink)
	}
	return subject, body
}
