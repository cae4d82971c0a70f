package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/battleworld/backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	ProviderToken string `json:"providerToken"`
}

type loginResponse struct {
	SessionToken string       `json:"sessionToken"`
	User         userResponse `json:"user"`
}

// Login handles POST /auth/login. It exchanges an identity provider token
// for a session token, provisioning the user on first login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{ProviderToken: req.ProviderToken})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		SessionToken: result.SessionToken,
		User:         toUserResponse(result.User),
	})
}
