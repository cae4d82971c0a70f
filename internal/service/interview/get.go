package interview

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// Get returns an interview the caller participates in, either as the
// candidate or as a panel member.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Interview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	iv, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("interview.Get: %w", err)
	}

	if iv.CandidateID != userID && !iv.HasPanelMember(userID) {
		return nil, fmt.Errorf("interview %s: %w", id, domain.ErrForbidden)
	}

	return iv, nil
}

// GetByChannelID resolves an interview from its external call room key.
// A room with no interview behind it is a plain not-found, not a server
// error: clients probe this during call setup.
func (s *Service) GetByChannelID(ctx context.Context, callID string) (*domain.Interview, error) {
	if callID == "" {
		return nil, domain.NewValidationError("channel_id", "required")
	}

	iv, err := s.interviews.GetByStreamCallID(ctx, callID)
	if err != nil {
		return nil, fmt.Errorf("interview.GetByChannelID: %w", err)
	}

	return iv, nil
}

// ListByCandidate returns the interviews scheduled for the given candidate.
// Indexed lookup, no identity required.
func (s *Service) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*domain.Interview, error) {
	interviews, err := s.interviews.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("interview.ListByCandidate: %w", err)
	}
	return interviews, nil
}

// ListMineAsCandidate returns interviews where the caller is the candidate.
func (s *Service) ListMineAsCandidate(ctx context.Context) ([]*domain.Interview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	interviews, err := s.interviews.ListByCandidate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("interview.ListMineAsCandidate: %w", err)
	}
	return interviews, nil
}

// ListMineAsInterviewer returns interviews where the caller sits on the panel.
func (s *Service) ListMineAsInterviewer(ctx context.Context) ([]*domain.Interview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	interviews, err := s.interviews.ListByInterviewer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("interview.ListMineAsInterviewer: %w", err)
	}
	return interviews, nil
}
