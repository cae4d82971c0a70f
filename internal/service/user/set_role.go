package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// SetRole switches the caller's own role. The stored role takes effect on the
// next session token; handlers that re-read the user see it immediately.
func (s *Service) SetRole(ctx context.Context, input SetRoleInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.SetRole(ctx, userID, domain.UserRole(input.Role))
	if err != nil {
		return nil, fmt.Errorf("user.SetRole: %w", err)
	}

	s.log.InfoContext(ctx, "role changed",
		slog.String("user_id", userID.String()),
		slog.String("role", input.Role))

	return u, nil
}
