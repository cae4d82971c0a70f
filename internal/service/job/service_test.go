package job

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func interviewerCtx(userID uuid.UUID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), userID)
	return ctxutil.WithRole(ctx, "interviewer")
}

func candidateCtx(userID uuid.UUID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), userID)
	return ctxutil.WithRole(ctx, "candidate")
}

type jobRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	ListFunc              func(ctx context.Context) ([]*domain.Job, error)
	ListByInterviewerFunc func(ctx context.Context, interviewerID uuid.UUID) ([]*domain.Job, error)
	CreateFunc            func(ctx context.Context, j *domain.Job) (*domain.Job, error)
	UpdateFunc            func(ctx context.Context, id uuid.UUID, params domain.JobUpdateParams) (*domain.Job, error)
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
}

func (m *jobRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *jobRepoMock) List(ctx context.Context) ([]*domain.Job, error) { return m.ListFunc(ctx) }
func (m *jobRepoMock) ListByInterviewer(ctx context.Context, interviewerID uuid.UUID) ([]*domain.Job, error) {
	return m.ListByInterviewerFunc(ctx, interviewerID)
}
func (m *jobRepoMock) Create(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	return m.CreateFunc(ctx, j)
}
func (m *jobRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.JobUpdateParams) (*domain.Job, error) {
	return m.UpdateFunc(ctx, id, params)
}
func (m *jobRepoMock) Delete(ctx context.Context, id uuid.UUID) error { return m.DeleteFunc(ctx, id) }

func ptrString(s string) *string { return &s }

func TestService_Create_SetsOwnerFromContext(t *testing.T) {
	t.Parallel()

	interviewerID := uuid.New()

	svc := NewService(testLogger(), &jobRepoMock{
		CreateFunc: func(ctx context.Context, j *domain.Job) (*domain.Job, error) {
			if j.InterviewerID != interviewerID {
				t.Errorf("owner: got %s, want %s", j.InterviewerID, interviewerID)
			}
			created := *j
			created.ID = uuid.New()
			return &created, nil
		},
	})

	got, err := svc.Create(interviewerCtx(interviewerID), CreateInput{Title: "Doom Slayer Wanted"})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if got.Title != "Doom Slayer Wanted" {
		t.Errorf("Title: got %q", got.Title)
	}
}

func TestService_Create_CandidateForbidden(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &jobRepoMock{})

	_, err := svc.Create(candidateCtx(uuid.New()), CreateInput{Title: "Nope"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}
}

func TestService_Create_EmptyTitle(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &jobRepoMock{})

	_, err := svc.Create(interviewerCtx(uuid.New()), CreateInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
}

func TestService_Update_OwnerOnly(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	intruder := uuid.New()
	jobID := uuid.New()

	repo := &jobRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
			return &domain.Job{ID: jobID, Title: "Original", InterviewerID: owner}, nil
		},
		UpdateFunc: func(ctx context.Context, id uuid.UUID, params domain.JobUpdateParams) (*domain.Job, error) {
			return &domain.Job{ID: jobID, Title: *params.Title, InterviewerID: owner}, nil
		},
	}
	svc := NewService(testLogger(), repo)

	_, err := svc.Update(interviewerCtx(intruder), jobID, UpdateInput{Title: ptrString("Hijacked")})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got: %v", err)
	}

	got, err := svc.Update(interviewerCtx(owner), jobID, UpdateInput{Title: ptrString("Renamed")})
	if err != nil {
		t.Fatalf("Update by owner: unexpected error: %v", err)
	}
	if got.Title != "Renamed" {
		t.Errorf("Title: got %q", got.Title)
	}
}

func TestService_Update_EmptyParamsReturnsExisting(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	jobID := uuid.New()
	existing := &domain.Job{ID: jobID, Title: "Untouched", InterviewerID: owner}

	svc := NewService(testLogger(), &jobRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, id uuid.UUID, params domain.JobUpdateParams) (*domain.Job, error) {
			t.Error("Update should not hit the repo for an empty update")
			return nil, nil
		},
	})

	got, err := svc.Update(interviewerCtx(owner), jobID, UpdateInput{})
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}
	if got != existing {
		t.Error("should return the loaded row unchanged")
	}
}

func TestService_Delete_OwnerOnly(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	jobID := uuid.New()
	deleted := false

	svc := NewService(testLogger(), &jobRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
			return &domain.Job{ID: jobID, InterviewerID: owner}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	})

	if err := svc.Delete(interviewerCtx(uuid.New()), jobID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got: %v", err)
	}
	if deleted {
		t.Fatal("repo Delete should not run for a non-owner")
	}

	if err := svc.Delete(interviewerCtx(owner), jobID); err != nil {
		t.Fatalf("Delete by owner: unexpected error: %v", err)
	}
	if !deleted {
		t.Error("repo Delete should run for the owner")
	}
}

func TestService_ListByInterviewer_NoIdentityRequired(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	svc := NewService(testLogger(), &jobRepoMock{
		ListByInterviewerFunc: func(ctx context.Context, interviewerID uuid.UUID) ([]*domain.Job, error) {
			return []*domain.Job{{ID: uuid.New(), InterviewerID: owner}}, nil
		},
	})

	got, err := svc.ListByInterviewer(context.Background(), owner)
	if err != nil {
		t.Fatalf("ListByInterviewer: unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 job, got %d", len(got))
	}
}

func TestService_ListMine(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	svc := NewService(testLogger(), &jobRepoMock{
		ListByInterviewerFunc: func(ctx context.Context, interviewerID uuid.UUID) ([]*domain.Job, error) {
			if interviewerID != owner {
				t.Errorf("ListByInterviewer called with %s", interviewerID)
			}
			return []*domain.Job{{ID: uuid.New(), InterviewerID: owner}}, nil
		},
	})

	got, err := svc.ListMine(interviewerCtx(owner))
	if err != nil {
		t.Fatalf("ListMine: unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 job, got %d", len(got))
	}
}
