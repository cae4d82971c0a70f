// Package application implements job applications: submission, status
// transitions, and the side effects of shortlisting.
package application

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/config"
	"github.com/battleworld/backend/internal/domain"
)

// applicationRepo defines the application repository interface needed here.
type applicationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*domain.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*domain.Application, error)
	CountByCandidateAndJob(ctx context.Context, candidateID, jobID uuid.UUID) (int, error)
	Create(ctx context.Context, a *domain.Application) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*domain.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// jobRepo resolves the job a mutation refers to, for the ownership check.
type jobRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
}

// userRepo resolves the candidate for outbound email.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// chatPermRepo grants the chat permission when a candidate is shortlisted.
type chatPermRepo interface {
	Upsert(ctx context.Context, userA, userB uuid.UUID, canChat bool) (*domain.ChatPermission, error)
}

// emailLogRepo records the audit entry for status-change emails.
type emailLogRepo interface {
	Create(ctx context.Context, e *domain.EmailLog) (*domain.EmailLog, error)
}

// emailSender dispatches outbound mail. Delivery failures are logged, never
// propagated; the status change itself must not roll back on a mail outage.
type emailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// txManager runs the shortlist side effects atomically with the status write.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements application operations.
type Service struct {
	log       *slog.Logger
	apps      applicationRepo
	jobs      jobRepo
	users     userRepo
	chatPerms chatPermRepo
	emailLogs emailLogRepo
	email     emailSender
	tx        txManager
	cfg       config.RecruitmentConfig
}

// NewService creates a new application service instance.
func NewService(
	logger *slog.Logger,
	apps applicationRepo,
	jobs jobRepo,
	users userRepo,
	chatPerms chatPermRepo,
	emailLogs emailLogRepo,
	email emailSender,
	tx txManager,
	cfg config.RecruitmentConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "application"),
		apps:      apps,
		jobs:      jobs,
		users:     users,
		chatPerms: chatPerms,
		emailLogs: emailLogs,
		email:     email,
		tx:        tx,
		cfg:       cfg,
	}
}
