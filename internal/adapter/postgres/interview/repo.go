// Package interview implements the Interview repository using PostgreSQL.
//
// The interviewer panel is stored denormalized as a uuid[] column with a GIN
// index; panel membership queries use the array containment operator.
package interview

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

const interviewColumns = `id, title, description, start_time, end_time, status, stream_call_id,
meeting_link, candidate_id, interviewer_ids, reminder_sent_at, created_at, updated_at`

const getByIDSQL = `
SELECT ` + interviewColumns + `
FROM interviews
WHERE id = $1`

const getByStreamCallIDSQL = `
SELECT ` + interviewColumns + `
FROM interviews
WHERE stream_call_id = $1`

const listByCandidateSQL = `
SELECT ` + interviewColumns + `
FROM interviews
WHERE candidate_id = $1
ORDER BY start_time ASC`

const listByInterviewerSQL = `
SELECT ` + interviewColumns + `
FROM interviews
WHERE interviewer_ids @> ARRAY[$1]::uuid[]
ORDER BY start_time ASC`

const createSQL = `
INSERT INTO interviews (id, title, description, start_time, status, stream_call_id,
	meeting_link, candidate_id, interviewer_ids, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + interviewColumns

const listDueForReminderSQL = `
SELECT ` + interviewColumns + `
FROM interviews
WHERE reminder_sent_at IS NULL
  AND status = 'upcoming'
  AND start_time > $1
  AND start_time <= $2
ORDER BY start_time ASC`

const markReminderSentSQL = `
UPDATE interviews
SET reminder_sent_at = $2, updated_at = now()
WHERE id = $1 AND reminder_sent_at IS NULL`

// Repo provides interview persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new interview repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns an interview by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Interview, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	iv, err := scanInterview(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "interview", id)
	}

	return iv, nil
}

// GetByStreamCallID returns the interview keyed by its external call room ID.
// Returns domain.ErrNotFound if no interview uses that room.
func (r *Repo) GetByStreamCallID(ctx context.Context, callID string) (*domain.Interview, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	iv, err := scanInterview(querier.QueryRow(ctx, getByStreamCallIDSQL, callID))
	if err != nil {
		return nil, postgres.MapError(err, "interview", callID)
	}

	return iv, nil
}

// ListByCandidate returns the candidate's interviews ordered by start time.
func (r *Repo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*domain.Interview, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByCandidateSQL, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list interviews by candidate: %w", err)
	}
	defer rows.Close()

	return scanInterviews(rows)
}

// ListByInterviewer returns interviews where the user sits on the panel,
// ordered by start time.
func (r *Repo) ListByInterviewer(ctx context.Context, interviewerID uuid.UUID) ([]*domain.Interview, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByInterviewerSQL, interviewerID)
	if err != nil {
		return nil, fmt.Errorf("list interviews by interviewer: %w", err)
	}
	defer rows.Close()

	return scanInterviews(rows)
}

// Create inserts a new interview with its full panel.
func (r *Repo) Create(ctx context.Context, iv *domain.Interview) (*domain.Interview, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	created, err := scanInterview(querier.QueryRow(ctx, createSQL,
		id, iv.Title, ptrToText(iv.Description), iv.StartTime, string(iv.Status),
		iv.StreamCallID, ptrToText(iv.MeetingLink), iv.CandidateID, iv.InterviewerIDs,
		now, now,
	))
	if err != nil {
		return nil, postgres.MapError(err, "interview", id)
	}

	return created, nil
}

// Update applies a partial update and returns the updated row.
// Returns domain.ErrNotFound if the interview does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.InterviewUpdateParams) (*domain.Interview, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Update("interviews").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + interviewColumns).
		PlaceholderFormat(sq.Dollar)

	if params.Status != nil {
		builder = builder.Set("status", string(*params.Status))
	}
	if params.MeetingLink != nil {
		builder = builder.Set("meeting_link", *params.MeetingLink)
	}
	if params.EndTime != nil {
		builder = builder.Set("end_time", *params.EndTime)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build interview update query: %w", err)
	}

	iv, err := scanInterview(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "interview", id)
	}

	return iv, nil
}

// ListDueForReminder returns upcoming interviews starting within (from, to]
// that have not yet had a reminder sent.
func (r *Repo) ListDueForReminder(ctx context.Context, from, to time.Time) ([]*domain.Interview, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listDueForReminderSQL, from, to)
	if err != nil {
		return nil, fmt.Errorf("list interviews due for reminder: %w", err)
	}
	defer rows.Close()

	return scanInterviews(rows)
}

// MarkReminderSent records that a reminder went out. The update is guarded on
// reminder_sent_at IS NULL so concurrent senders cannot both claim the row;
// the second caller gets ErrNotFound.
func (r *Repo) MarkReminderSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markReminderSentSQL, id, sentAt)
	if err != nil {
		return postgres.MapError(err, "interview", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("interview %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanInterview(row pgx.Row) (*domain.Interview, error) {
	var (
		iv          domain.Interview
		description pgtype.Text
		meetingLink pgtype.Text
		status      string
	)

	err := row.Scan(&iv.ID, &iv.Title, &description, &iv.StartTime, &iv.EndTime,
		&status, &iv.StreamCallID, &meetingLink, &iv.CandidateID, &iv.InterviewerIDs,
		&iv.ReminderSentAt, &iv.CreatedAt, &iv.UpdatedAt)
	if err != nil {
		return nil, err
	}

	iv.Description = textToPtr(description)
	iv.MeetingLink = textToPtr(meetingLink)
	iv.Status = domain.InterviewStatus(status)

	if iv.InterviewerIDs == nil {
		iv.InterviewerIDs = []uuid.UUID{}
	}

	return &iv, nil
}

func scanInterviews(rows pgx.Rows) ([]*domain.Interview, error) {
	var interviews []*domain.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan interview: %w", err)
		}
		interviews = append(interviews, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interviews: %w", err)
	}

	if interviews == nil {
		interviews = []*domain.Interview{}
	}

	return interviews, nil
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
