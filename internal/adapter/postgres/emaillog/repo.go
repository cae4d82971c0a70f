// Package emaillog implements the EmailLog repository using PostgreSQL.
package emaillog

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

const emailLogColumns = `id, recipient, subject, body, sender_id, type, interview_id, sent_at`

const createSQL = `
INSERT INTO email_logs (id, recipient, subject, body, sender_id, type, interview_id, sent_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + emailLogColumns

const getByIDSQL = `
SELECT ` + emailLogColumns + `
FROM email_logs
WHERE id = $1`

const listSQL = `
SELECT ` + emailLogColumns + `
FROM email_logs
ORDER BY sent_at DESC`

const listByInterviewSQL = `
SELECT ` + emailLogColumns + `
FROM email_logs
WHERE interview_id = $1
ORDER BY sent_at DESC`

const deleteSQL = `DELETE FROM email_logs WHERE id = $1`

// Repo provides email audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new email log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends an audit record for a sent email.
func (r *Repo) Create(ctx context.Context, e *domain.EmailLog) (*domain.EmailLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	sentAt := e.SentAt
	if sentAt.IsZero() {
		sentAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	created, err := scanEmailLog(querier.QueryRow(ctx, createSQL,
		id, e.Recipient, e.Subject, e.Body, e.SenderID, typeToText(e.Type), e.InterviewID, sentAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "email log", id)
	}

	return created, nil
}

// GetByID returns an email log entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.EmailLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEmailLog(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "email log", id)
	}

	return e, nil
}

// List returns the full audit log, newest first.
func (r *Repo) List(ctx context.Context) ([]*domain.EmailLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list email logs: %w", err)
	}
	defer rows.Close()

	return scanEmailLogs(rows)
}

// ListByInterview returns emails sent about a specific interview, newest first.
func (r *Repo) ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]*domain.EmailLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByInterviewSQL, interviewID)
	if err != nil {
		return nil, fmt.Errorf("list email logs by interview: %w", err)
	}
	defer rows.Close()

	return scanEmailLogs(rows)
}

// Delete removes an audit entry. Sender authorization is enforced by the
// service layer before calling this.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "email log", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("email log %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanEmailLog(row pgx.Row) (*domain.EmailLog, error) {
	var (
		e       domain.EmailLog
		rawType pgtype.Text
	)

	err := row.Scan(&e.ID, &e.Recipient, &e.Subject, &e.Body, &e.SenderID,
		&rawType, &e.InterviewID, &e.SentAt)
	if err != nil {
		return nil, err
	}

	if rawType.Valid {
		t := domain.EmailType(rawType.String)
		e.Type = &t
	}

	return &e, nil
}

func scanEmailLogs(rows pgx.Rows) ([]*domain.EmailLog, error) {
	var logs []*domain.EmailLog
	for rows.Next() {
		e, err := scanEmailLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan email log: %w", err)
		}
		logs = append(logs, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate email logs: %w", err)
	}

	if logs == nil {
		logs = []*domain.EmailLog{}
	}

	return logs, nil
}

func typeToText(t *domain.EmailType) pgtype.Text {
	if t == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: string(*t), Valid: true}
}
