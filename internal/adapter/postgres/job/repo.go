// Package job implements the Job repository using PostgreSQL.
package job

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

const jobColumns = `id, title, description, role_type, location, interviewer_id, created_at, updated_at`

const getByIDSQL = `
SELECT ` + jobColumns + `
FROM jobs
WHERE id = $1`

const listAllSQL = `
SELECT ` + jobColumns + `
FROM jobs
ORDER BY created_at DESC`

const listByInterviewerSQL = `
SELECT ` + jobColumns + `
FROM jobs
WHERE interviewer_id = $1
ORDER BY created_at DESC`

const createSQL = `
INSERT INTO jobs (id, title, description, role_type, location, interviewer_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + jobColumns

const deleteSQL = `DELETE FROM jobs WHERE id = $1`

// Repo provides job persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new job repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a job by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	j, err := scanJob(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "job", id)
	}

	return j, nil
}

// List returns all jobs, newest first.
// Returns an empty slice (not nil) when there are no jobs.
func (r *Repo) List(ctx context.Context) ([]*domain.Job, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAllSQL)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// ListByInterviewer returns the jobs owned by the given interviewer,
// newest first. Indexed lookup on interviewer_id.
func (r *Repo) ListByInterviewer(ctx context.Context, interviewerID uuid.UUID) ([]*domain.Job, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByInterviewerSQL, interviewerID)
	if err != nil {
		return nil, fmt.Errorf("list jobs by interviewer: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// Create inserts a new job owned by the given interviewer.
func (r *Repo) Create(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	created, err := scanJob(querier.QueryRow(ctx, createSQL,
		id, j.Title, ptrToText(j.Description), ptrToText(j.RoleType), ptrToText(j.Location),
		j.InterviewerID, now, now,
	))
	if err != nil {
		return nil, postgres.MapError(err, "job", id)
	}

	return created, nil
}

// Update applies a partial update and returns the updated job.
// Nil fields in params are left unchanged.
// Returns domain.ErrNotFound if the job does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.JobUpdateParams) (*domain.Job, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	update := sq.Update("jobs").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + jobColumns).
		PlaceholderFormat(sq.Dollar)

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}
	if params.RoleType != nil {
		update = update.Set("role_type", *params.RoleType)
	}
	if params.Location != nil {
		update = update.Set("location", *params.Location)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update job: %w", err)
	}

	j, err := scanJob(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "job", id)
	}

	return j, nil
}

// Delete removes a job by ID. Applications referencing the job are removed
// by the cascade.
// Returns domain.ErrNotFound if the job does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "job", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanJob(row pgx.Row) (*domain.Job, error) {
	var (
		j           domain.Job
		description pgtype.Text
		roleType    pgtype.Text
		location    pgtype.Text
	)

	err := row.Scan(&j.ID, &j.Title, &description, &roleType, &location,
		&j.InterviewerID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}

	j.Description = textToPtr(description)
	j.RoleType = textToPtr(roleType)
	j.Location = textToPtr(location)

	return &j, nil
}

func scanJobs(rows pgx.Rows) ([]*domain.Job, error) {
	var jobs []*domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}

	if jobs == nil {
		jobs = []*domain.Job{}
	}

	return jobs, nil
}

func textToPtr(t pgtype.Text) *string {
	if t.Valid {
		return &t.String
	}
	return nil
}

func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
