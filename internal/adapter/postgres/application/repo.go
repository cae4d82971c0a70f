// Package application implements the Application repository using PostgreSQL.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/battleworld/backend/internal/adapter/postgres"
	"github.com/battleworld/backend/internal/domain"
)

const applicationColumns = `id, job_id, candidate_id, resume_text, resume_handle, status, created_at, updated_at`

const getByIDSQL = `
SELECT ` + applicationColumns + `
FROM applications
WHERE id = $1`

const listByCandidateSQL = `
SELECT ` + applicationColumns + `
FROM applications
WHERE candidate_id = $1
ORDER BY created_at DESC`

const listByJobSQL = `
SELECT ` + applicationColumns + `
FROM applications
WHERE job_id = $1
ORDER BY created_at DESC`

const countByCandidateAndJobSQL = `
SELECT count(*) FROM applications
WHERE candidate_id = $1 AND job_id = $2`

const createSQL = `
INSERT INTO applications (id, job_id, candidate_id, resume_text, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + applicationColumns

const updateStatusSQL = `
UPDATE applications
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING ` + applicationColumns

const bindResumeSQL = `
UPDATE applications
SET resume_handle = $2, resume_text = COALESCE($3, resume_text), updated_at = now()
WHERE id = $1
RETURNING ` + applicationColumns

const deleteSQL = `DELETE FROM applications WHERE id = $1`

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new application repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns an application by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanApplication(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "application", id)
	}

	return a, nil
}

// ListByCandidate returns all applications submitted by the candidate,
// newest first.
func (r *Repo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByCandidateSQL, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list applications by candidate: %w", err)
	}
	defer rows.Close()

	return scanApplications(rows)
}

// ListByJob returns all applications against the job, newest first.
func (r *Repo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByJobSQL, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications by job: %w", err)
	}
	defer rows.Close()

	return scanApplications(rows)
}

// CountByCandidateAndJob returns how many applications the candidate has
// already submitted to the job. Used by the duplicate-application policy.
func (r *Repo) CountByCandidateAndJob(ctx context.Context, candidateID, jobID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByCandidateAndJobSQL, candidateID, jobID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}

	return count, nil
}

// Create inserts a new application. CandidateID must already be bound to the
// caller by the service layer.
func (r *Repo) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	created, err := scanApplication(querier.QueryRow(ctx, createSQL,
		id, a.JobID, a.CandidateID, ptrToText(a.ResumeText), string(a.Status), now, now,
	))
	if err != nil {
		return nil, postgres.MapError(err, "application", id)
	}

	return created, nil
}

// UpdateStatus transitions the application status and returns the updated row.
// Returns domain.ErrNotFound if the application does not exist.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanApplication(querier.QueryRow(ctx, updateStatusSQL, id, string(status)))
	if err != nil {
		return nil, postgres.MapError(err, "application", id)
	}

	return a, nil
}

// BindResume attaches an uploaded storage handle (and optionally extracted
// text) to the application. Passing nil text keeps the existing resume text.
func (r *Repo) BindResume(ctx context.Context, id uuid.UUID, handle string, text *string) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanApplication(querier.QueryRow(ctx, bindResumeSQL, id, handle, ptrToText(text)))
	if err != nil {
		return nil, postgres.MapError(err, "application", id)
	}

	return a, nil
}

// Delete removes an application by ID.
// Returns domain.ErrNotFound if the application does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "application", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var (
		a            domain.Application
		resumeText   pgtype.Text
		resumeHandle pgtype.Text
		status       string
	)

	err := row.Scan(&a.ID, &a.JobID, &a.CandidateID, &resumeText, &resumeHandle,
		&status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	a.ResumeText = textToPtr(resumeText)
	a.ResumeHandle = textToPtr(resumeHandle)
	a.Status = domain.ApplicationStatus(status)

	return &a, nil
}

func scanApplications(rows pgx.Rows) ([]*domain.Application, error) {
	var apps []*domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}

	if apps == nil {
		apps = []*domain.Application{}
	}

	return apps, nil
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
