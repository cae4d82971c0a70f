package chat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/adapter/stream"
	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// StreamToken registers the caller with the chat provider and mints a signed
// token the frontend exchanges with it. Any authenticated user may request
// one; what they can do with it is bounded by the permission records. The
// upsert must succeed first: a token for an unregistered user is useless.
func (s *Service) StreamToken(ctx context.Context) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("chat.StreamToken load user: %w", err)
	}

	if err := s.streamUsers.UpsertUser(ctx, u.ID, u.Name); err != nil {
		return "", fmt.Errorf("chat.StreamToken upsert provider user: %w", err)
	}

	return s.tokens.MintToken(userID, s.now()), nil
}

// ChannelID derives the room key for the caller and another user. Both
// parties compute the same value, so no channel registry is kept.
func (s *Service) ChannelID(ctx context.Context, otherID uuid.UUID) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if otherID == uuid.Nil {
		return "", domain.NewValidationError("user_id", "required")
	}

	a, b := domain.CanonicalPair(userID, otherID)
	return stream.ChannelID(a, b), nil
}
