package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/battleworld/backend/pkg/ctxutil"
)

type tokenValidatorMock struct {
	ValidateSessionTokenFunc func(token string) (uuid.UUID, string, error)
}

func (m *tokenValidatorMock) ValidateSessionToken(token string) (uuid.UUID, string, error) {
	return m.ValidateSessionTokenFunc(token)
}

func TestAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	validator := &tokenValidatorMock{
		ValidateSessionTokenFunc: func(token string) (uuid.UUID, string, error) {
			if token == "valid-token" {
				return userID, "interviewer", nil
			}
			return uuid.Nil, "", errors.New("invalid token")
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, ok := ctxutil.UserIDFromCtx(r.Context())
		if !ok {
			t.Error("expected userID in context")
			return
		}
		if gotUserID != userID {
			t.Errorf("expected userID %v, got %v", userID, gotUserID)
		}
		if !ctxutil.IsInterviewerCtx(r.Context()) {
			t.Error("expected role claim in context")
		}
		w.WriteHeader(http.StatusOK)
	})

	wrapped := Auth(validator)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	validator := &tokenValidatorMock{
		ValidateSessionTokenFunc: func(token string) (uuid.UUID, string, error) {
			return uuid.Nil, "", errors.New("invalid token")
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for an invalid token")
	})

	wrapped := Auth(validator)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuth_NoToken_Anonymous(t *testing.T) {
	validator := &tokenValidatorMock{
		ValidateSessionTokenFunc: func(token string) (uuid.UUID, string, error) {
			t.Error("validator should not be called without a token")
			return uuid.Nil, "", nil
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
			t.Error("expected no userID for anonymous request")
		}
		w.WriteHeader(http.StatusOK)
	})

	wrapped := Auth(validator)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
