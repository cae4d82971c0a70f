// Package comment implements the interview Comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/battleworld/backend/internal/adapter/postgres"
	"github.com/battleworld/backend/internal/domain"
)

const commentColumns = `id, interview_id, interviewer_id, content, rating, created_at`

const createSQL = `
INSERT INTO comments (id, interview_id, interviewer_id, content, rating, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + commentColumns

const listByInterviewSQL = `
SELECT ` + commentColumns + `
FROM comments
WHERE interview_id = $1
ORDER BY created_at ASC`

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new comment on an interview.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	created, err := scanComment(querier.QueryRow(ctx, createSQL,
		id, c.InterviewID, c.InterviewerID, c.Content, c.Rating, now,
	))
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}

	return created, nil
}

// ListByInterview returns all comments on an interview, oldest first.
func (r *Repo) ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByInterviewSQL, interviewID)
	if err != nil {
		return nil, fmt.Errorf("list comments by interview: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment

	err := row.Scan(&c.ID, &c.InterviewID, &c.InterviewerID, &c.Content, &c.Rating, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func scanComments(rows pgx.Rows) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	if comments == nil {
		comments = []*domain.Comment{}
	}

	return comments, nil
}
