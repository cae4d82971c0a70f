package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/internal/service/email"
)

// emailService defines the minimal interface needed by EmailHandler.
type emailService interface {
	Send(ctx context.Context, input email.SendInput) (*email.SendResult, error)
	List(ctx context.Context) ([]*domain.EmailLog, error)
	ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]*domain.EmailLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EmailHandler serves email REST endpoints.
type EmailHandler struct {
	svc emailService
	log *slog.Logger
}

// NewEmailHandler creates an EmailHandler.
func NewEmailHandler(svc emailService, logger *slog.Logger) *EmailHandler {
	return &EmailHandler{svc: svc, log: logger.With("handler", "email")}
}

type sendEmailRequest struct {
	Recipient   string  `json:"recipient"`
	Subject     string  `json:"subject"`
	Body        string  `json:"body"`
	Type        *string `json:"type"`
	InterviewID *string `json:"interviewId"`
}

type sendEmailResponse struct {
	Log       emailLogResponse `json:"log"`
	Delivered bool             `json:"delivered"`
}

// Send handles POST /email. Interviewer only. Delivered=false means the
// relay rejected the message but the audit entry was still written.
func (h *EmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := email.SendInput{
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Body:      req.Body,
		Type:      req.Type,
	}
	if req.InterviewID != nil {
		id, err := uuid.Parse(*req.InterviewID)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("interviewId", "must be a valid UUID"))
			return
		}
		input.InterviewID = &id
	}

	result, err := h.svc.Send(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sendEmailResponse{
		Log:       toEmailLogResponse(result.Log),
		Delivered: result.Delivered,
	})
}

// List handles GET /email. Interviewer only.
func (h *EmailHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmailLogResponses(logs))
}

// ListByInterview handles GET /interviews/{id}/emails. Interviewer only.
func (h *EmailHandler) ListByInterview(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	logs, err := h.svc.ListByInterview(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmailLogResponses(logs))
}

// Delete handles DELETE /email/{id}. Original sender only.
func (h *EmailHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
