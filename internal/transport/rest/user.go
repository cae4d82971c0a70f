package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	GetMe(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	SetRole(ctx context.Context, input user.SetRoleInput) (*domain.User, error)
	Delete(ctx context.Context) error
}

// UserHandler serves user REST endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

// GetMe handles GET /users/me.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetMe(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

type updateProfileRequest struct {
	Name          *string  `json:"name"`
	AvatarURL     *string  `json:"avatarUrl"`
	Backstory     *string  `json:"backstory"`
	Skills        []string `json:"skills"`
	Weaknesses    []string `json:"weaknesses"`
	Achievements  []string `json:"achievements"`
	PreferredRole *string  `json:"preferredRole"`
}

// UpdateProfile handles PATCH /users/me. Absent fields stay unchanged.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		Name:          req.Name,
		AvatarURL:     req.AvatarURL,
		Backstory:     req.Backstory,
		Skills:        req.Skills,
		Weaknesses:    req.Weaknesses,
		Achievements:  req.Achievements,
		PreferredRole: req.PreferredRole,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// SetRole handles POST /users/me/role.
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	var req setRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	u, err := h.svc.SetRole(r.Context(), user.SetRoleInput{Role: req.Role})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Delete handles DELETE /users/me.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
