package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// Allow grants messaging between the caller and another user. Interviewer
// only. The grant is an idempotent upsert: repeating it is a no-op.
func (s *Service) Allow(ctx context.Context, otherID uuid.UUID) (*domain.ChatPermission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsInterviewerCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if otherID == uuid.Nil || otherID == userID {
		return nil, domain.NewValidationError("user_id", "must reference another user")
	}

	a, b := domain.CanonicalPair(userID, otherID)
	perm, err := s.perms.Upsert(ctx, a, b, true)
	if err != nil {
		return nil, fmt.Errorf("chat.Allow: %w", err)
	}

	s.log.InfoContext(ctx, "chat allowed",
		slog.String("user_a", a.String()),
		slog.String("user_b", b.String()))

	return perm, nil
}

// Revoke withdraws a grant between the caller and another user. Interviewer
// only. The second return value reports whether a grant existed; revoking a
// pair that was never allowed is not an error.
func (s *Service) Revoke(ctx context.Context, otherID uuid.UUID) (*domain.ChatPermission, bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, false, domain.ErrUnauthorized
	}
	if !ctxutil.IsInterviewerCtx(ctx) {
		return nil, false, domain.ErrForbidden
	}
	if otherID == uuid.Nil || otherID == userID {
		return nil, false, domain.NewValidationError("user_id", "must reference another user")
	}

	a, b := domain.CanonicalPair(userID, otherID)

	existing, err := s.perms.GetByPair(ctx, a, b)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("chat.Revoke load: %w", err)
	}
	existed := existing != nil && existing.CanChat

	perm, err := s.perms.Upsert(ctx, a, b, false)
	if err != nil {
		return nil, false, fmt.Errorf("chat.Revoke: %w", err)
	}

	s.log.InfoContext(ctx, "chat revoked",
		slog.String("user_a", a.String()),
		slog.String("user_b", b.String()),
		slog.Bool("had_grant", existed))

	return perm, existed, nil
}

// CanChat reports whether the caller may message another user. A pair with
// no record reads as false.
func (s *Service) CanChat(ctx context.Context, otherID uuid.UUID) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}
	if otherID == uuid.Nil {
		return false, domain.NewValidationError("user_id", "required")
	}

	a, b := domain.CanonicalPair(userID, otherID)
	allowed, err := s.perms.CanChat(ctx, a, b)
	if err != nil {
		return false, fmt.Errorf("chat.CanChat: %w", err)
	}
	return allowed, nil
}
