package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/config"
	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authedCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func defaultCfg() config.RecruitmentConfig {
	return config.RecruitmentConfig{AllowDuplicateApplications: true}
}

type fixture struct {
	apps      *applicationRepoMock
	jobs      *jobRepoMock
	users     *userRepoMock
	chatPerms *chatPermRepoMock
	emailLogs *emailLogRepoMock
	email     *emailSenderMock
	tx        *txManagerMock
}

func newFixture() *fixture {
	return &fixture{
		apps:      &applicationRepoMock{},
		jobs:      &jobRepoMock{},
		users:     &userRepoMock{},
		chatPerms: &chatPermRepoMock{},
		emailLogs: &emailLogRepoMock{},
		email:     &emailSenderMock{},
		tx:        &txManagerMock{},
	}
}

func (f *fixture) service(cfg config.RecruitmentConfig) *Service {
	return NewService(testLogger(), f.apps, f.jobs, f.users, f.chatPerms, f.emailLogs, f.email, f.tx, cfg)
}

func TestService_Create_BindsCandidateToCaller(t *testing.T) {
	t.Parallel()

	candidateID := uuid.New()
	jobID := uuid.New()

	f := newFixture()
	f.jobs.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
		return &domain.Job{ID: jobID, InterviewerID: uuid.New()}, nil
	}
	f.apps.CreateFunc = func(ctx context.Context, a *domain.Application) (*domain.Application, error) {
		if a.CandidateID != candidateID {
			t.Errorf("candidate must be the caller: got %s, want %s", a.CandidateID, candidateID)
		}
		if a.Status != domain.ApplicationStatusPending {
			t.Errorf("new applications start pending, got %s", a.Status)
		}
		created := *a
		created.ID = uuid.New()
		return &created, nil
	}

	svc := f.service(defaultCfg())

	got, err := svc.Create(authedCtx(candidateID), CreateInput{JobID: jobID})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if got.JobID != jobID {
		t.Errorf("JobID: got %s", got.JobID)
	}
}

func TestService_Create_DuplicatePolicy(t *testing.T) {
	t.Parallel()

	candidateID := uuid.New()
	jobID := uuid.New()

	newSvc := func(allow bool, existing int) *Service {
		f := newFixture()
		f.jobs.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
			return &domain.Job{ID: jobID}, nil
		}
		f.apps.CountByCandidateAndJobFunc = func(ctx context.Context, cid, jid uuid.UUID) (int, error) {
			return existing, nil
		}
		f.apps.CreateFunc = func(ctx context.Context, a *domain.Application) (*domain.Application, error) {
			created := *a
			created.ID = uuid.New()
			return &created, nil
		}
		return f.service(config.RecruitmentConfig{AllowDuplicateApplications: allow})
	}

	// Default policy: re-application is fine.
	if _, err := newSvc(true, 3).Create(authedCtx(candidateID), CreateInput{JobID: jobID}); err != nil {
		t.Fatalf("duplicate allowed: unexpected error: %v", err)
	}

	// Strict policy: second application refused.
	_, err := newSvc(false, 1).Create(authedCtx(candidateID), CreateInput{JobID: jobID})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got: %v", err)
	}

	// Strict policy, first application: fine.
	if _, err := newSvc(false, 0).Create(authedCtx(candidateID), CreateInput{JobID: jobID}); err != nil {
		t.Fatalf("first application under strict policy: unexpected error: %v", err)
	}
}

func TestService_Create_UnknownJob(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.jobs.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
		return nil, domain.ErrNotFound
	}
	svc := f.service(defaultCfg())

	_, err := svc.Create(authedCtx(uuid.New()), CreateInput{JobID: uuid.New()})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestService_Get_VisibleToCandidateAndJobOwner(t *testing.T) {
	t.Parallel()

	candidateID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()
	jobID := uuid.New()
	appID := uuid.New()

	f := newFixture()
	f.apps.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
		return &domain.Application{ID: appID, JobID: jobID, CandidateID: candidateID}, nil
	}
	f.jobs.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
		return &domain.Job{ID: jobID, InterviewerID: ownerID}, nil
	}

	svc := f.service(defaultCfg())

	if _, err := svc.Get(authedCtx(candidateID), appID); err != nil {
		t.Errorf("candidate should see own application: %v", err)
	}
	if _, err := svc.Get(authedCtx(ownerID), appID); err != nil {
		t.Errorf("job owner should see the application: %v", err)
	}
	if _, err := svc.Get(authedCtx(strangerID), appID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger should get ErrForbidden, got %v", err)
	}
}

func TestService_ListByJob_OwnerOnly(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	jobID := uuid.New()

	f := newFixture()
	f.jobs.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
		return &domain.Job{ID: jobID, InterviewerID: owner}, nil
	}
	f.apps.ListByJobFunc = func(ctx context.Context, id uuid.UUID) ([]*domain.Application, error) {
		return []*domain.Application{{ID: uuid.New(), JobID: jobID}}, nil
	}
	svc := f.service(defaultCfg())

	if _, err := svc.ListByJob(authedCtx(uuid.New()), jobID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got: %v", err)
	}

	got, err := svc.ListByJob(authedCtx(owner), jobID)
	if err != nil {
		t.Fatalf("ListByJob by owner: unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 application, got %d", len(got))
	}
}

func TestService_UpdateStatus_ShortlistSideEffects(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	candidateID := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()

	f := newFixture()
	f.apps.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
		return &domain.Application{ID: appID, JobID: jobID, CandidateID: candidateID, Status: domain.ApplicationStatusPending}, nil
	}
	f.jobs.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
		return &domain.Job{ID: jobID, Title: "Arena Champion", InterviewerID: owner}, nil
	}
	f.users.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
		return &domain.User{ID: candidateID, Name: "hero1", Email: "hero1@example.com"}, nil
	}
	f.apps.UpdateStatusFunc = func(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*domain.Application, error) {
		return &domain.Application{ID: appID, JobID: jobID, CandidateID: candidateID, Status: status}, nil
	}

	var grantedA, grantedB uuid.UUID
	var grantedCanChat bool
	f.chatPerms.UpsertFunc = func(ctx context.Context, userA, userB uuid.UUID, canChat bool) (*domain.ChatPermission, error) {
		grantedA, grantedB, grantedCanChat = userA, userB, canChat
		return &domain.ChatPermission{UserA: userA, UserB: userB, CanChat: canChat}, nil
	}

	var loggedType *domain.EmailType
	f.emailLogs.CreateFunc = func(ctx context.Context, e *domain.EmailLog) (*domain.EmailLog, error) {
		loggedType = e.Type
		created := *e
		created.ID = uuid.New()
		return &created, nil
	}

	var sentTo string
	f.email.SendFunc = func(ctx context.Context, to, subject, body string) error {
		sentTo = to
		return nil
	}

	svc := f.service(defaultCfg())

	got, err := svc.UpdateStatus(authedCtx(owner), appID, UpdateStatusInput{Status: "shortlisted"})
	if err != nil {
		t.Fatalf("UpdateStatus: unexpected error: %v", err)
	}
	if got.Status != domain.ApplicationStatusShortlisted {
		t.Errorf("Status: got %s", got.Status)
	}

	wantA, wantB := domain.CanonicalPair(owner, candidateID)
	if grantedA != wantA || grantedB != wantB || !grantedCanChat {
		t.Errorf("chat grant: got (%s, %s, %v), want (%s, %s, true)", grantedA, grantedB, grantedCanChat, wantA, wantB)
	}
	if loggedType == nil || *loggedType != domain.EmailTypeInvite {
		t.Errorf("email log type: got %v, want invite", loggedType)
	}
	if sentTo != "hero1@example.com" {
		t.Errorf("email recipient: got %q", sentTo)
	}
}

func TestService_UpdateStatus_EmailFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()
	candidateID := uuid.New()

	f := newFixture()
	f.apps.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
		return &domain.Application{ID: appID, JobID: jobID, CandidateID: candidateID}, nil
	}
	f.jobs.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
		return &domain.Job{ID: jobID, InterviewerID: owner}, nil
	}
	f.users.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
		return &domain.User{ID: candidateID, Email: "c@example.com"}, nil
	}
	f.apps.UpdateStatusFunc = func(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*domain.Application, error) {
		return &domain.Application{ID: appID, Status: status}, nil
	}
	f.emailLogs.CreateFunc = func(ctx context.Context, e *domain.EmailLog) (*domain.EmailLog, error) {
		return e, nil
	}
	f.email.SendFunc = func(ctx context.Context, to, subject, body string) error {
		return errors.New("relay down")
	}

	svc := f.service(defaultCfg())

	got, err := svc.UpdateStatus(authedCtx(owner), appID, UpdateStatusInput{Status: "rejected"})
	if err != nil {
		t.Fatalf("a mail outage must not fail the status change: %v", err)
	}
	if got.Status != domain.ApplicationStatusRejected {
		t.Errorf("Status: got %s", got.Status)
	}
}

func TestService_UpdateStatus_NonOwnerForbidden(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.apps.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
		return &domain.Application{ID: id, JobID: uuid.New(), CandidateID: uuid.New()}, nil
	}
	f.jobs.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
		return &domain.Job{ID: id, InterviewerID: uuid.New()}, nil
	}
	svc := f.service(defaultCfg())

	_, err := svc.UpdateStatus(authedCtx(uuid.New()), uuid.New(), UpdateStatusInput{Status: "shortlisted"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}
}

func TestService_Delete_CandidateOrJobOwner(t *testing.T) {
	t.Parallel()

	candidateID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()

	newSvc := func(deleted *bool) *Service {
		f := newFixture()
		f.apps.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
			return &domain.Application{ID: appID, JobID: jobID, CandidateID: candidateID}, nil
		}
		f.jobs.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
			return &domain.Job{ID: jobID, InterviewerID: owner}, nil
		}
		f.apps.DeleteFunc = func(ctx context.Context, id uuid.UUID) error {
			*deleted = true
			return nil
		}
		return f.service(defaultCfg())
	}

	var deleted bool
	if err := newSvc(&deleted).Delete(authedCtx(candidateID), appID); err != nil {
		t.Fatalf("candidate withdraw: unexpected error: %v", err)
	}
	if !deleted {
		t.Error("candidate should be able to withdraw")
	}

	deleted = false
	if err := newSvc(&deleted).Delete(authedCtx(owner), appID); err != nil {
		t.Fatalf("job owner delete: unexpected error: %v", err)
	}
	if !deleted {
		t.Error("job owner should be able to delete")
	}

	deleted = false
	if err := newSvc(&deleted).Delete(authedCtx(stranger), appID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for stranger, got: %v", err)
	}
	if deleted {
		t.Error("stranger must not delete")
	}
}
