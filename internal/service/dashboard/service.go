// Package dashboard aggregates interviewer-facing counters.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// recentWindow bounds the "recent applications" counter.
const recentWindow = 7 * 24 * time.Hour

// statsRepo computes the counters in the store rather than loading rows.
type statsRepo interface {
	InterviewerStats(ctx context.Context, interviewerID uuid.UUID, recentSince time.Time) (*domain.InterviewerStats, error)
}

// Service implements dashboard operations.
type Service struct {
	log   *slog.Logger
	stats statsRepo
	now   func() time.Time
}

// NewService creates a new dashboard service instance.
func NewService(logger *slog.Logger, stats statsRepo) *Service {
	return &Service{
		log:   logger.With("service", "dashboard"),
		stats: stats,
		now:   time.Now,
	}
}

// GetInterviewerStats returns the caller's counters. Interviewer-only.
func (s *Service) GetInterviewerStats(ctx context.Context) (*domain.InterviewerStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsInterviewerCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	stats, err := s.stats.InterviewerStats(ctx, userID, s.now().UTC().Add(-recentWindow))
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetInterviewerStats: %w", err)
	}
	return stats, nil
}
