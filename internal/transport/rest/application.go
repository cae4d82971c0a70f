package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/internal/service/application"
)

// applicationService defines the minimal interface needed by ApplicationHandler.
type applicationService interface {
	Create(ctx context.Context, input application.CreateInput) (*domain.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListMine(ctx context.Context) ([]*domain.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*domain.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input application.UpdateStatusInput) (*domain.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// resumeResolver turns a stored resume handle into a retrievable URL.
type resumeResolver interface {
	ResolveURL(handle string) string
}

// ApplicationHandler serves application REST endpoints.
type ApplicationHandler struct {
	svc     applicationService
	resumes resumeResolver
	log     *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(svc applicationService, resumes resumeResolver, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		svc:     svc,
		resumes: resumes,
		log:     logger.With("handler", "application"),
	}
}

func (h *ApplicationHandler) toResponse(a *domain.Application) applicationResponse {
	return toApplicationResponse(a, h.resumes.ResolveURL)
}

func (h *ApplicationHandler) toResponses(apps []*domain.Application) []applicationResponse {
	out := make([]applicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, h.toResponse(a))
	}
	return out
}

type createApplicationRequest struct {
	JobID      string  `json:"jobId"`
	ResumeText *string `json:"resumeText"`
}

// Create handles POST /applications. The candidate is always the caller.
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("jobId", "must be a valid UUID"))
		return
	}

	a, err := h.svc.Create(r.Context(), application.CreateInput{
		JobID:      jobID,
		ResumeText: req.ResumeText,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.toResponse(a))
}

// Get handles GET /applications/{id}.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(a))
}

// ListMine handles GET /applications/mine.
func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.ListMine(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponses(apps))
}

// ListByJob handles GET /jobs/{id}/applications. Job owner only.
func (h *ApplicationHandler) ListByJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	apps, err := h.svc.ListByJob(r.Context(), jobID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponses(apps))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles POST /applications/{id}/status. Job owner only;
// shortlisting triggers the chat grant and invite email.
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.UpdateStatus(r.Context(), id, application.UpdateStatusInput{Status: req.Status})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(a))
}

// Delete handles DELETE /applications/{id}.
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
