// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/battleworld/backend/internal/adapter/postgres"
	"github.com/battleworld/backend/internal/domain"
)

const userColumns = `id, identity_key, name, email, avatar_url, role,
       backstory, skills, weaknesses, achievements, preferred_role,
       created_at, updated_at`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByIdentityKeySQL = `
SELECT ` + userColumns + `
FROM users
WHERE identity_key = $1`

const createSQL = `
INSERT INTO users (id, identity_key, name, email, avatar_url, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + userColumns

const setRoleSQL = `
UPDATE users
SET role = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const deleteSQL = `DELETE FROM users WHERE id = $1`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByIdentityKey returns a user by the identity provider's subject id.
// Point lookup on the unique identity_key index; this replaces any notion
// of scanning all users to resolve a role.
func (r *Repo) GetByIdentityKey(ctx context.Context, identityKey string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIdentityKeySQL, identityKey))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// A duplicate identity key results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanUser(querier.QueryRow(ctx, createSQL,
		id, u.IdentityKey, u.Name, u.Email, ptrToText(u.AvatarURL), string(u.Role), now, now,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return created, nil
}

// UpdateProfile applies a partial profile update and returns the updated user.
// Nil fields in params are left unchanged.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, params domain.ProfileUpdateParams) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	update := sq.Update("users").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		PlaceholderFormat(sq.Dollar)

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.AvatarURL != nil {
		update = update.Set("avatar_url", *params.AvatarURL)
	}
	if params.Backstory != nil {
		update = update.Set("backstory", *params.Backstory)
	}
	if params.Skills != nil {
		update = update.Set("skills", params.Skills)
	}
	if params.Weaknesses != nil {
		update = update.Set("weaknesses", params.Weaknesses)
	}
	if params.Achievements != nil {
		update = update.Set("achievements", params.Achievements)
	}
	if params.PreferredRole != nil {
		update = update.Set("preferred_role", *params.PreferredRole)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	u, err := scanUser(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// SetRole changes the user's role and returns the updated user.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, setRoleSQL, id, string(role)))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// Delete removes a user by ID.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u             domain.User
		role          string
		avatarURL     pgtype.Text
		backstory     pgtype.Text
		preferredRole pgtype.Text
	)

	err := row.Scan(
		&u.ID, &u.IdentityKey, &u.Name, &u.Email, &avatarURL, &role,
		&backstory, &u.Profile.Skills, &u.Profile.Weaknesses, &u.Profile.Achievements, &preferredRole,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Role = domain.UserRole(role)
	u.AvatarURL = textToPtr(avatarURL)
	u.Profile.Backstory = textToPtr(backstory)
	u.Profile.PreferredRole = textToPtr(preferredRole)

	return &u, nil
}

// textToPtr returns a *string (nil when NULL).
func textToPtr(t pgtype.Text) *string {
	if t.Valid {
		return &t.String
	}
	return nil
}

// ptrToText converts a *string to pgtype.Text (nil → NULL).
func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
