package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/battleworld/backend/internal/domain"
)

// Login verifies a provider session token and returns a backend session.
// First-time callers are provisioned as candidates; the dedicated role
// endpoint is the only way to become an interviewer. The role claim baked
// into the session token is a snapshot of the stored role at this moment.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	identity, err := s.verifier.VerifyToken(ctx, input.ProviderToken)
	if err != nil {
		return nil, fmt.Errorf("auth.Login verify token: %w", err)
	}

	user, err := s.users.GetByIdentityKey(ctx, identity.SubjectID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if user == nil {
		name := identity.Email
		if identity.Name != nil && *identity.Name != "" {
			name = *identity.Name
		}

		user, err = s.users.Create(ctx, &domain.User{
			IdentityKey: identity.SubjectID,
			Name:        name,
			Email:       strings.ToLower(strings.TrimSpace(identity.Email)),
			AvatarURL:   identity.AvatarURL,
			Role:        domain.UserRoleCandidate,
		})
		if err != nil {
			// A concurrent login may have created the user between the
			// lookup and the insert; load the winner's row.
			if errors.Is(err, domain.ErrAlreadyExists) {
				user, err = s.users.GetByIdentityKey(ctx, identity.SubjectID)
			}
			if err != nil {
				return nil, fmt.Errorf("auth.Login create user: %w", err)
			}
		} else {
			s.log.InfoContext(ctx, "user provisioned",
				slog.String("user_id", user.ID.String()),
				slog.String("email", user.Email))
		}
	}

	token, err := s.jwt.GenerateSessionToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue session: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))

	return &AuthResult{User: user, SessionToken: token}, nil
}
