package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// Delete removes the caller's own account. Dependent rows (jobs,
// applications, interviews, comments, chat permissions) cascade in the store.
func (s *Service) Delete(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("user.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted", slog.String("user_id", userID.String()))

	return nil
}
