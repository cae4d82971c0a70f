package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
)

var (
	_ applicationRepo = &applicationRepoMock{}
	_ jobRepo         = &jobRepoMock{}
	_ userRepo        = &userRepoMock{}
	_ chatPermRepo    = &chatPermRepoMock{}
	_ emailLogRepo    = &emailLogRepoMock{}
	_ emailSender     = &emailSenderMock{}
	_ txManager       = &txManagerMock{}
)

type applicationRepoMock struct {
	GetByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListByCandidateFunc        func(ctx context.Context, candidateID uuid.UUID) ([]*domain.Application, error)
	ListByJobFunc              func(ctx context.Context, jobID uuid.UUID) ([]*domain.Application, error)
	CountByCandidateAndJobFunc func(ctx context.Context, candidateID, jobID uuid.UUID) (int, error)
	CreateFunc                 func(ctx context.Context, a *domain.Application) (*domain.Application, error)
	UpdateStatusFunc           func(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*domain.Application, error)
	DeleteFunc                 func(ctx context.Context, id uuid.UUID) error
}

func (m *applicationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *applicationRepoMock) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*domain.Application, error) {
	return m.ListByCandidateFunc(ctx, candidateID)
}
func (m *applicationRepoMock) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*domain.Application, error) {
	return m.ListByJobFunc(ctx, jobID)
}
func (m *applicationRepoMock) CountByCandidateAndJob(ctx context.Context, candidateID, jobID uuid.UUID) (int, error) {
	return m.CountByCandidateAndJobFunc(ctx, candidateID, jobID)
}
func (m *applicationRepoMock) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	return m.CreateFunc(ctx, a)
}
func (m *applicationRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*domain.Application, error) {
	return m.UpdateStatusFunc(ctx, id, status)
}
func (m *applicationRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type jobRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Job, error)
}

func (m *jobRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	return m.GetByIDFunc(ctx, id)
}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

type chatPermRepoMock struct {
	UpsertFunc func(ctx context.Context, userA, userB uuid.UUID, canChat bool) (*domain.ChatPermission, error)
}

func (m *chatPermRepoMock) Upsert(ctx context.Context, userA, userB uuid.UUID, canChat bool) (*domain.ChatPermission, error) {
	return m.UpsertFunc(ctx, userA, userB, canChat)
}

type emailLogRepoMock struct {
	CreateFunc func(ctx context.Context, e *domain.EmailLog) (*domain.EmailLog, error)
}

func (m *emailLogRepoMock) Create(ctx context.Context, e *domain.EmailLog) (*domain.EmailLog, error) {
	return m.CreateFunc(ctx, e)
}

type emailSenderMock struct {
	SendFunc func(ctx context.Context, to, subject, body string) error
}

func (m *emailSenderMock) Send(ctx context.Context, to, subject, body string) error {
	return m.SendFunc(ctx, to, subject, body)
}

// txManagerMock runs the callback inline, which is what the pass-through
// transaction manager does outside a real database.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
