// Package chatperm implements the ChatPermission repository using PostgreSQL.
//
// Callers must pass user pairs in canonical order (see domain.CanonicalPair).
// The table enforces user_a < user_b with a CHECK constraint, so writes with
// an unordered pair fail loudly instead of creating a mirrored duplicate.
package chatperm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/battleworld/backend/internal/adapter/postgres"
	"github.com/battleworld/backend/internal/domain"
)

const chatPermColumns = `id, user_a, user_b, can_chat, created_at, updated_at`

const getByPairSQL = `
SELECT ` + chatPermColumns + `
FROM chat_permissions
WHERE user_a = $1 AND user_b = $2`

const upsertSQL = `
INSERT INTO chat_permissions (id, user_a, user_b, can_chat, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT (user_a, user_b)
DO UPDATE SET can_chat = EXCLUDED.can_chat, updated_at = EXCLUDED.updated_at
RETURNING ` + chatPermColumns

const canChatSQL = `
SELECT can_chat FROM chat_permissions
WHERE user_a = $1 AND user_b = $2`

// Repo provides chat permission persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new chat permission repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByPair returns the permission record for a canonical pair.
func (r *Repo) GetByPair(ctx context.Context, userA, userB uuid.UUID) (*domain.ChatPermission, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanChatPermission(querier.QueryRow(ctx, getByPairSQL, userA, userB))
	if err != nil {
		return nil, postgres.MapError(err, "chat permission", userA)
	}

	return p, nil
}

// Upsert sets the permission flag for a canonical pair, creating the record
// on first use.
func (r *Repo) Upsert(ctx context.Context, userA, userB uuid.UUID, canChat bool) (*domain.ChatPermission, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	p, err := scanChatPermission(querier.QueryRow(ctx, upsertSQL,
		uuid.New(), userA, userB, canChat, now,
	))
	if err != nil {
		return nil, postgres.MapError(err, "chat permission", userA)
	}

	return p, nil
}

// CanChat reports whether the canonical pair is allowed to message. A missing
// record means no permission has ever been granted and reads as false.
func (r *Repo) CanChat(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var canChat bool
	err := querier.QueryRow(ctx, canChatSQL, userA, userB).Scan(&canChat)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("query chat permission: %w", err)
	}

	return canChat, nil
}

func scanChatPermission(row pgx.Row) (*domain.ChatPermission, error) {
	var p domain.ChatPermission

	err := row.Scan(&p.ID, &p.UserA, &p.UserB, &p.CanChat, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
