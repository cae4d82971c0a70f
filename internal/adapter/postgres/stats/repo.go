// Package stats implements dashboard aggregate queries using PostgreSQL.
//
// Each figure is an indexed COUNT rather than a table scan; the dashboard is
// read-heavy and the counts stay cheap as the tables grow.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/battleworld/backend/internal/adapter/postgres"
	"github.com/battleworld/backend/internal/domain"
)

const countJobsSQL = `
SELECT count(*) FROM jobs WHERE interviewer_id = $1`

const countRecentApplicationsSQL = `
SELECT count(*)
FROM applications a
JOIN jobs j ON j.id = a.job_id
WHERE j.interviewer_id = $1 AND a.created_at >= $2`

const countInterviewsSQL = `
SELECT count(*) FROM interviews WHERE interviewer_ids @> ARRAY[$1]::uuid[]`

const countShortlistedSQL = `
SELECT count(*)
FROM applications a
JOIN jobs j ON j.id = a.job_id
WHERE j.interviewer_id = $1 AND a.status = 'shortlisted'`

// Repo provides dashboard aggregates backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new stats repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// InterviewerStats collects the dashboard figures for one interviewer in a
// single call.
func (r *Repo) InterviewerStats(ctx context.Context, interviewerID uuid.UUID, recentSince time.Time) (*domain.InterviewerStats, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.InterviewerStats

	if err := querier.QueryRow(ctx, countJobsSQL, interviewerID).Scan(&s.TotalJobs); err != nil {
		return nil, fmt.Errorf("count jobs: %w", err)
	}
	if err := querier.QueryRow(ctx, countRecentApplicationsSQL, interviewerID, recentSince).Scan(&s.RecentApplications); err != nil {
		return nil, fmt.Errorf("count recent applications: %w", err)
	}
	if err := querier.QueryRow(ctx, countInterviewsSQL, interviewerID).Scan(&s.TotalInterviews); err != nil {
		return nil, fmt.Errorf("count interviews: %w", err)
	}
	if err := querier.QueryRow(ctx, countShortlistedSQL, interviewerID).Scan(&s.TotalShortlisted); err != nil {
		return nil, fmt.Errorf("count shortlisted: %w", err)
	}

	return &s, nil
}
