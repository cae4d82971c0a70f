package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/adapter/storage"
	"github.com/battleworld/backend/internal/domain"
)

// resumeService defines the minimal interface needed by ResumeHandler.
type resumeService interface {
	CreateUploadURL(ctx context.Context, fileName string) (*storage.UploadTicket, error)
	BindResume(ctx context.Context, applicationID uuid.UUID, handle string) (*domain.Application, error)
	ResolveURL(handle string) string
}

// ResumeHandler serves resume upload REST endpoints.
type ResumeHandler struct {
	svc resumeService
	log *slog.Logger
}

// NewResumeHandler creates a ResumeHandler.
func NewResumeHandler(svc resumeService, logger *slog.Logger) *ResumeHandler {
	return &ResumeHandler{svc: svc, log: logger.With("handler", "resume")}
}

type uploadURLRequest struct {
	FileName string `json:"fileName"`
}

type uploadURLResponse struct {
	UploadURL string    `json:"uploadUrl"`
	Handle    string    `json:"handle"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// CreateUploadURL handles POST /resumes/upload-url.
func (h *ResumeHandler) CreateUploadURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ticket, err := h.svc.CreateUploadURL(r.Context(), req.FileName)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, uploadURLResponse{
		UploadURL: ticket.UploadURL,
		Handle:    ticket.Handle,
		ExpiresAt: ticket.ExpiresAt,
	})
}

type bindResumeRequest struct {
	Handle string `json:"handle"`
}

// BindResume handles POST /applications/{id}/resume. Candidate owner only.
func (h *ResumeHandler) BindResume(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req bindResumeRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.BindResume(r.Context(), id, req.Handle)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(a, h.svc.ResolveURL))
}
