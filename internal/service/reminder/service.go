// Package reminder dispatches upcoming-interview reminder emails. It is
// driven by an external scheduler (cmd/remind), not an in-process timer.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/config"
	"github.com/battleworld/backend/internal/domain"
)

// interviewRepo defines the interview repository interface needed here.
type interviewRepo interface {
	ListDueForReminder(ctx context.Context, from, to time.Time) ([]*domain.Interview, error)
	MarkReminderSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
}

// userRepo resolves the candidate for outbound email.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// emailLogRepo records the audit entry per reminder.
type emailLogRepo interface {
	Create(ctx context.Context, e *domain.EmailLog) (*domain.EmailLog, error)
}

// emailSender dispatches outbound mail.
type emailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// txManager keeps the audit entry and the reminded flag atomic per
// interview.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements reminder dispatch.
type Service struct {
	log        *slog.Logger
	interviews interviewRepo
	users      userRepo
	emailLogs  emailLogRepo
	email      emailSender
	tx         txManager
	cfg        config.RecruitmentConfig
	now        func() time.Time
}

// NewService creates a new reminder service instance.
func NewService(
	logger *slog.Logger,
	interviews interviewRepo,
	users userRepo,
	emailLogs emailLogRepo,
	email emailSender,
	tx txManager,
	cfg config.RecruitmentConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "reminder"),
		interviews: interviews,
		users:      users,
		emailLogs:  emailLogs,
		email:      email,
		tx:         tx,
		cfg:        cfg,
		now:        time.Now,
	}
}
