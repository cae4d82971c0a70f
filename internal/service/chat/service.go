// Package chat manages who may message whom and bridges to the external
// chat provider. Pairs are canonicalized before every repository call, so
// permission reads and writes are symmetric in their arguments.
package chat

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
)

// chatPermRepo defines the chat permission repository interface needed here.
// Implementations expect the pair in canonical order.
type chatPermRepo interface {
	GetByPair(ctx context.Context, userA, userB uuid.UUID) (*domain.ChatPermission, error)
	Upsert(ctx context.Context, userA, userB uuid.UUID, canChat bool) (*domain.ChatPermission, error)
	CanChat(ctx context.Context, userA, userB uuid.UUID) (bool, error)
}

// userRepo resolves the caller's display name for provider registration.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// tokenProvider mints signed tokens the frontend exchanges with the chat
// provider.
type tokenProvider interface {
	MintToken(userID uuid.UUID, now time.Time) string
}

// streamUsers registers users with the chat provider so a minted token
// resolves to a known provider-side account.
type streamUsers interface {
	UpsertUser(ctx context.Context, userID uuid.UUID, name string) error
}

// Service implements chat permission and token operations.
type Service struct {
	log         *slog.Logger
	perms       chatPermRepo
	users       userRepo
	tokens      tokenProvider
	streamUsers streamUsers
	now         func() time.Time
}

// NewService creates a new chat service instance.
func NewService(logger *slog.Logger, perms chatPermRepo, users userRepo, tokens tokenProvider, streamUsers streamUsers) *Service {
	return &Service{
		log:         logger.With("service", "chat"),
		perms:       perms,
		users:       users,
		tokens:      tokens,
		streamUsers: streamUsers,
		now:         time.Now,
	}
}
