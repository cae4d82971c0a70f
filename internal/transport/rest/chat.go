package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
)

// chatService defines the minimal interface needed by ChatHandler.
type chatService interface {
	Allow(ctx context.Context, otherID uuid.UUID) (*domain.ChatPermission, error)
	Revoke(ctx context.Context, otherID uuid.UUID) (*domain.ChatPermission, bool, error)
	CanChat(ctx context.Context, otherID uuid.UUID) (bool, error)
	StreamToken(ctx context.Context) (string, error)
	ChannelID(ctx context.Context, otherID uuid.UUID) (string, error)
}

// ChatHandler serves chat permission and token REST endpoints.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type chatTargetRequest struct {
	UserID string `json:"userId"`
}

func (h *ChatHandler) targetID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	var req chatTargetRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.UserID)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("userId", "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// Allow handles POST /chat/allow. Interviewer only.
func (h *ChatHandler) Allow(w http.ResponseWriter, r *http.Request) {
	otherID, ok := h.targetID(w, r)
	if !ok {
		return
	}

	perm, err := h.svc.Allow(r.Context(), otherID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"canChat": perm.CanChat})
}

// Revoke handles POST /chat/revoke. Interviewer only. The response reports
// whether a grant existed before the revoke.
func (h *ChatHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	otherID, ok := h.targetID(w, r)
	if !ok {
		return
	}

	perm, existed, err := h.svc.Revoke(r.Context(), otherID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"canChat": perm.CanChat, "hadGrant": existed})
}

// CanChat handles GET /chat/can-chat/{userId}.
func (h *ChatHandler) CanChat(w http.ResponseWriter, r *http.Request) {
	otherID, err := pathUUID(r, "userId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	allowed, err := h.svc.CanChat(r.Context(), otherID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"canChat": allowed})
}

// StreamToken handles GET /chat/token.
func (h *ChatHandler) StreamToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.svc.StreamToken(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// ChannelID handles GET /chat/channel/{userId}.
func (h *ChatHandler) ChannelID(w http.ResponseWriter, r *http.Request) {
	otherID, err := pathUUID(r, "userId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	channelID, err := h.svc.ChannelID(r.Context(), otherID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"channelId": channelID})
}
