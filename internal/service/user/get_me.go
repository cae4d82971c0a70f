package user

import (
	"context"
	"fmt"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// GetMe returns the authenticated caller's profile.
func (s *Service) GetMe(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetMe: %w", err)
	}

	return u, nil
}
