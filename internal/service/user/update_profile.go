package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

// UpdateProfile applies a partial update to the caller's own profile.
// Candidate-only fields are stored for any role; they simply stay empty for
// interviewers who never set them.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.UpdateProfile(ctx, userID, domain.ProfileUpdateParams{
		Name:          input.Name,
		AvatarURL:     input.AvatarURL,
		Backstory:     input.Backstory,
		Skills:        input.Skills,
		Weaknesses:    input.Weaknesses,
		Achievements:  input.Achievements,
		PreferredRole: input.PreferredRole,
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", userID.String()))

	return u, nil
}
