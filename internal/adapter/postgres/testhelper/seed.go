package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/battleworld/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.New(),
		IdentityKey: "idp-" + suffix,
		Name:        "Test User " + suffix,
		Email:       "testuser-" + suffix + "@example.com",
		Role:        role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, identity_key, name, email, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.IdentityKey, user.Name, user.Email, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedJob creates a job posted by the given interviewer. Returns a filled domain.Job.
func SeedJob(t *testing.T, pool *pgxpool.Pool, interviewerID uuid.UUID) domain.Job {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	desc := "Job description " + suffix
	roleType := "backend"
	location := "remote"
	job := domain.Job{
		ID:            uuid.New(),
		Title:         "Test Job " + suffix,
		Description:   &desc,
		RoleType:      &roleType,
		Location:      &location,
		InterviewerID: interviewerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO jobs (id, title, description, role_type, location, interviewer_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		job.ID, job.Title, job.Description, job.RoleType, job.Location, job.InterviewerID, job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedJob insert job: %v", err)
	}

	return job
}

// SeedApplication creates a pending application from the candidate to the job.
func SeedApplication(t *testing.T, pool *pgxpool.Pool, jobID, candidateID uuid.UUID) domain.Application {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	resume := "Resume text " + suffix
	app := domain.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		CandidateID: candidateID,
		ResumeText:  &resume,
		Status:      domain.ApplicationStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO applications (id, job_id, candidate_id, resume_text, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		app.ID, app.JobID, app.CandidateID, app.ResumeText, string(app.Status), app.CreatedAt, app.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication insert application: %v", err)
	}

	return app
}

// SeedInterview creates an upcoming interview between the candidate and the
// given panel, starting at startTime.
func SeedInterview(t *testing.T, pool *pgxpool.Pool, candidateID uuid.UUID, panel []uuid.UUID, startTime time.Time) domain.Interview {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	iv := domain.Interview{
		ID:             uuid.New(),
		Title:          "Test Interview " + suffix,
		StartTime:      startTime.UTC().Truncate(time.Microsecond),
		Status:         domain.InterviewStatusUpcoming,
		StreamCallID:   "call-" + suffix,
		CandidateID:    candidateID,
		InterviewerIDs: panel,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO interviews (id, title, start_time, status, stream_call_id, candidate_id, interviewer_ids, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		iv.ID, iv.Title, iv.StartTime, string(iv.Status), iv.StreamCallID, iv.CandidateID, iv.InterviewerIDs, iv.CreatedAt, iv.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInterview insert interview: %v", err)
	}

	return iv
}

// SeedChatPermission creates an allow/deny record for a pair of users. The
// pair is canonicalized here so callers can pass ids in any order.
func SeedChatPermission(t *testing.T, pool *pgxpool.Pool, x, y uuid.UUID, canChat bool) domain.ChatPermission {
	t.Helper()
	ctx := context.Background()

	userA, userB := domain.CanonicalPair(x, y)
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.ChatPermission{
		ID:        uuid.New(),
		UserA:     userA,
		UserB:     userB,
		CanChat:   canChat,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO chat_permissions (id, user_a, user_b, can_chat, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.UserA, p.UserB, p.CanChat, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChatPermission insert: %v", err)
	}

	return p
}

// SeedEmailLog creates an email audit entry sent by senderID.
func SeedEmailLog(t *testing.T, pool *pgxpool.Pool, senderID uuid.UUID) domain.EmailLog {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	e := domain.EmailLog{
		ID:        uuid.New(),
		Recipient: "recipient-" + suffix + "@example.com",
		Subject:   "Test Subject " + suffix,
		Body:      "Test body " + suffix,
		SenderID:  &senderID,
		SentAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO email_logs (id, recipient, subject, body, sender_id, sent_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Recipient, e.Subject, e.Body, e.SenderID, e.SentAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEmailLog insert: %v", err)
	}

	return e
}
