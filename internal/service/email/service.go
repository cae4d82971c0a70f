// Package email sends outbound mail through the relay and keeps the
// append-only audit log.
package email

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
)

// emailLogRepo defines the email log repository interface needed here.
type emailLogRepo interface {
	Create(ctx context.Context, e *domain.EmailLog) (*domain.EmailLog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.EmailLog, error)
	List(ctx context.Context) ([]*domain.EmailLog, error)
	ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]*domain.EmailLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// sender delivers mail through the external relay.
type sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Service implements email operations.
type Service struct {
	log    *slog.Logger
	emails emailLogRepo
	relay  sender
}

// NewService creates a new email service instance.
func NewService(logger *slog.Logger, emails emailLogRepo, relay sender) *Service {
	return &Service{
		log:    logger.With("service", "email"),
		emails: emails,
		relay:  relay,
	}
}
