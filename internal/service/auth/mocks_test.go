package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/auth"
	"github.com/battleworld/backend/internal/domain"
)

var (
	_ userRepo         = &userRepoMock{}
	_ identityVerifier = &identityVerifierMock{}
	_ jwtManager       = &jwtManagerMock{}
)

type userRepoMock struct {
	GetByIdentityKeyFunc func(ctx context.Context, identityKey string) (*domain.User, error)
	CreateFunc           func(ctx context.Context, user *domain.User) (*domain.User, error)
}

func (m *userRepoMock) GetByIdentityKey(ctx context.Context, identityKey string) (*domain.User, error) {
	if m.GetByIdentityKeyFunc == nil {
		panic("userRepoMock.GetByIdentityKeyFunc is nil")
	}
	return m.GetByIdentityKeyFunc(ctx, identityKey)
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.CreateFunc == nil {
		panic("userRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, user)
}

type identityVerifierMock struct {
	VerifyTokenFunc func(ctx context.Context, token string) (*auth.Identity, error)
}

func (m *identityVerifierMock) VerifyToken(ctx context.Context, token string) (*auth.Identity, error) {
	if m.VerifyTokenFunc == nil {
		panic("identityVerifierMock.VerifyTokenFunc is nil")
	}
	return m.VerifyTokenFunc(ctx, token)
}

type jwtManagerMock struct {
	GenerateSessionTokenFunc func(userID uuid.UUID, role string) (string, error)
}

func (m *jwtManagerMock) GenerateSessionToken(userID uuid.UUID, role string) (string, error) {
	if m.GenerateSessionTokenFunc == nil {
		panic("jwtManagerMock.GenerateSessionTokenFunc is nil")
	}
	return m.GenerateSessionTokenFunc(userID, role)
}
