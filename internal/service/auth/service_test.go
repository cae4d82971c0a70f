package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/auth"
	"github.com/battleworld/backend/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptrString(s string) *string { return &s }

func TestService_Login_ProvisionsNewCandidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	identity := &auth.Identity{
		SubjectID: "idp_123",
		Email:     "Hero1@Example.com",
		Name:      ptrString("Hero One"),
		AvatarURL: ptrString("https://example.com/a.png"),
	}

	verifierMock := &identityVerifierMock{
		VerifyTokenFunc: func(ctx context.Context, token string) (*auth.Identity, error) {
			if token != "provider-token" {
				t.Errorf("VerifyToken called with %q", token)
			}
			return identity, nil
		},
	}

	var created *domain.User
	usersMock := &userRepoMock{
		GetByIdentityKeyFunc: func(ctx context.Context, key string) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			u := *user
			u.ID = userID
			created = &u
			return &u, nil
		},
	}

	jwtMock := &jwtManagerMock{
		GenerateSessionTokenFunc: func(id uuid.UUID, role string) (string, error) {
			if id != userID {
				t.Errorf("token issued for wrong user: %s", id)
			}
			if role != "candidate" {
				t.Errorf("role claim: got %q, want %q", role, "candidate")
			}
			return "session-token", nil
		},
	}

	svc := NewService(testLogger(), usersMock, verifierMock, jwtMock)

	result, err := svc.Login(ctx, LoginInput{ProviderToken: "provider-token"})
	if err != nil {
		t.Fatalf("Login: unexpected error: %v", err)
	}

	if result.SessionToken != "session-token" {
		t.Errorf("SessionToken: got %q", result.SessionToken)
	}
	if created == nil {
		t.Fatal("expected a user to be created")
	}
	if created.IdentityKey != "idp_123" {
		t.Errorf("IdentityKey: got %q", created.IdentityKey)
	}
	if created.Email != "hero1@example.com" {
		t.Errorf("Email should be normalized: got %q", created.Email)
	}
	if created.Role != domain.UserRoleCandidate {
		t.Errorf("new users must start as candidates, got %s", created.Role)
	}
}

func TestService_Login_ExistingUserKeepsStoredRole(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	existing := &domain.User{
		ID:          uuid.New(),
		IdentityKey: "idp_456",
		Name:        "Doom One",
		Email:       "doom1@example.com",
		Role:        domain.UserRoleInterviewer,
	}

	verifierMock := &identityVerifierMock{
		VerifyTokenFunc: func(ctx context.Context, token string) (*auth.Identity, error) {
			return &auth.Identity{SubjectID: "idp_456", Email: existing.Email}, nil
		},
	}

	usersMock := &userRepoMock{
		GetByIdentityKeyFunc: func(ctx context.Context, key string) (*domain.User, error) {
			if key != "idp_456" {
				t.Errorf("lookup key: got %q", key)
			}
			return existing, nil
		},
	}

	jwtMock := &jwtManagerMock{
		GenerateSessionTokenFunc: func(id uuid.UUID, role string) (string, error) {
			// The role claim snapshots whatever the store says now.
			if role != "interviewer" {
				t.Errorf("role claim: got %q, want %q", role, "interviewer")
			}
			return "session-token", nil
		},
	}

	svc := NewService(testLogger(), usersMock, verifierMock, jwtMock)

	result, err := svc.Login(ctx, LoginInput{ProviderToken: "tok"})
	if err != nil {
		t.Fatalf("Login: unexpected error: %v", err)
	}
	if result.User.ID != existing.ID {
		t.Errorf("wrong user returned: %s", result.User.ID)
	}
}

func TestService_Login_ConcurrentProvisionFallsBackToWinner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	winner := &domain.User{ID: uuid.New(), IdentityKey: "idp_race", Email: "race@example.com", Role: domain.UserRoleCandidate}

	lookups := 0
	usersMock := &userRepoMock{
		GetByIdentityKeyFunc: func(ctx context.Context, key string) (*domain.User, error) {
			lookups++
			if lookups == 1 {
				return nil, domain.ErrNotFound
			}
			return winner, nil
		},
		CreateFunc: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			return nil, domain.ErrAlreadyExists
		},
	}

	verifierMock := &identityVerifierMock{
		VerifyTokenFunc: func(ctx context.Context, token string) (*auth.Identity, error) {
			return &auth.Identity{SubjectID: "idp_race", Email: winner.Email}, nil
		},
	}

	jwtMock := &jwtManagerMock{
		GenerateSessionTokenFunc: func(id uuid.UUID, role string) (string, error) {
			return "session-token", nil
		},
	}

	svc := NewService(testLogger(), usersMock, verifierMock, jwtMock)

	result, err := svc.Login(ctx, LoginInput{ProviderToken: "tok"})
	if err != nil {
		t.Fatalf("Login: unexpected error: %v", err)
	}
	if result.User.ID != winner.ID {
		t.Errorf("should return the winner's row, got %s", result.User.ID)
	}
}

func TestService_Login_RejectedToken(t *testing.T) {
	t.Parallel()

	verifierMock := &identityVerifierMock{
		VerifyTokenFunc: func(ctx context.Context, token string) (*auth.Identity, error) {
			return nil, domain.ErrUnauthorized
		},
	}

	svc := NewService(testLogger(), &userRepoMock{}, verifierMock, &jwtManagerMock{})

	_, err := svc.Login(context.Background(), LoginInput{ProviderToken: "bad"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
}

func TestService_Login_EmptyToken(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &userRepoMock{}, &identityVerifierMock{}, &jwtManagerMock{})

	_, err := svc.Login(context.Background(), LoginInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
}
