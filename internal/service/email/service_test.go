package email

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

func roleCtx(userID uuid.UUID, role string) context.Context {
	return ctxutil.WithRole(ctxutil.WithUserID(context.Background(), userID), role)
}

type emailLogRepoMock struct {
	CreateFunc          func(ctx context.Context, e *domain.EmailLog) (*domain.EmailLog, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.EmailLog, error)
	ListFunc            func(ctx context.Context) ([]*domain.EmailLog, error)
	ListByInterviewFunc func(ctx context.Context, interviewID uuid.UUID) ([]*domain.EmailLog, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *emailLogRepoMock) Create(ctx context.Context, e *domain.EmailLog) (*domain.EmailLog, error) {
	return m.CreateFunc(ctx, e)
}
func (m *emailLogRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.EmailLog, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *emailLogRepoMock) List(ctx context.Context) ([]*domain.EmailLog, error) {
	return m.ListFunc(ctx)
}
func (m *emailLogRepoMock) ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]*domain.EmailLog, error) {
	return m.ListByInterviewFunc(ctx, interviewID)
}
func (m *emailLogRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type senderMock struct {
	SendFunc func(ctx context.Context, to, subject, body string) error
}

func (m *senderMock) Send(ctx context.Context, to, subject, body string) error {
	return m.SendFunc(ctx, to, subject, body)
}

func validInput() SendInput {
	return SendInput{
		Recipient: "candidate@example.com",
		Subject:   "Interview follow-up",
		Body:      "<p>Thanks for your time.</p>",
	}
}

func TestService_Send_LogsAndDelivers(t *testing.T) {
	t.Parallel()

	caller := uuid.New()
	sent := false

	emails := &emailLogRepoMock{
		CreateFunc: func(ctx context.Context, e *domain.EmailLog) (*domain.EmailLog, error) {
			if e.SenderID == nil || *e.SenderID != caller {
				t.Errorf("SenderID: got %v, want caller %s", e.SenderID, caller)
			}
			created := *e
			created.ID = uuid.New()
			return &created, nil
		},
	}
	relay := &senderMock{
		SendFunc: func(ctx context.Context, to, subject, body string) error {
			sent = true
			if to != "candidate@example.com" {
				t.Errorf("to: got %q", to)
			}
			return nil
		},
	}

	svc := NewService(testLogger(), emails, relay)

	res, err := svc.Send(roleCtx(caller, "interviewer"), validInput())
	if err != nil {
		t.Fatalf("Send: unexpected error: %v", err)
	}
	if !sent {
		t.Error("relay was not called")
	}
	if !res.Delivered {
		t.Error("Delivered: got false, want true")
	}
	if res.Log.ID == uuid.Nil {
		t.Error("log entry was not persisted")
	}
}

func TestService_Send_RelayFailureStillLogged(t *testing.T) {
	t.Parallel()

	logged := false
	emails := &emailLogRepoMock{
		CreateFunc: func(ctx context.Context, e *domain.EmailLog) (*domain.EmailLog, error) {
			logged = true
			created := *e
			created.ID = uuid.New()
			return &created, nil
		},
	}
	relay := &senderMock{
		SendFunc: func(ctx context.Context, to, subject, body string) error {
			return errors.New("relay: rate limited")
		},
	}

	svc := NewService(testLogger(), emails, relay)

	res, err := svc.Send(roleCtx(uuid.New(), "interviewer"), validInput())
	if err != nil {
		t.Fatalf("Send: relay failure must not fail the operation: %v", err)
	}
	if res.Delivered {
		t.Error("Delivered: got true, want false")
	}
	if !logged {
		t.Error("audit entry must be written even when the relay rejects")
	}
}

func TestService_Send_CandidateForbidden(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &emailLogRepoMock{}, &senderMock{})

	_, err := svc.Send(roleCtx(uuid.New(), "candidate"), validInput())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}
}

func TestService_Send_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &emailLogRepoMock{}, &senderMock{})
	ctx := roleCtx(uuid.New(), "interviewer")

	badType := "newsletter"
	tests := []struct {
		name  string
		input SendInput
	}{
		{"missing recipient", SendInput{Subject: "s", Body: "b"}},
		{"malformed recipient", SendInput{Recipient: "not-an-address", Subject: "s", Body: "b"}},
		{"missing subject", SendInput{Recipient: "a@b.com", Body: "b"}},
		{"missing body", SendInput{Recipient: "a@b.com", Subject: "s"}},
		{"unknown type", SendInput{Recipient: "a@b.com", Subject: "s", Body: "b", Type: &badType}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Send(ctx, tt.input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got: %v", err)
			}
		})
	}
}

func TestService_Delete_SenderOnly(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	entryID := uuid.New()

	emails := &emailLogRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.EmailLog, error) {
			return &domain.EmailLog{ID: entryID, SenderID: &owner}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			return nil
		},
	}
	svc := NewService(testLogger(), emails, &senderMock{})

	if err := svc.Delete(roleCtx(owner, "interviewer"), entryID); err != nil {
		t.Errorf("sender delete: %v", err)
	}
	if err := svc.Delete(roleCtx(uuid.New(), "interviewer"), entryID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger delete: expected ErrForbidden, got %v", err)
	}
}

func TestService_Delete_SystemEntryForbidden(t *testing.T) {
	t.Parallel()

	emails := &emailLogRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.EmailLog, error) {
			return &domain.EmailLog{ID: id, SenderID: nil}, nil
		},
	}
	svc := NewService(testLogger(), emails, &senderMock{})

	err := svc.Delete(roleCtx(uuid.New(), "interviewer"), uuid.New())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for system entry, got: %v", err)
	}
}
