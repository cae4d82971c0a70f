package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/internal/service/job"
)

// jobService defines the minimal interface needed by JobHandler.
type jobService interface {
	Create(ctx context.Context, input job.CreateInput) (*domain.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	List(ctx context.Context) ([]*domain.Job, error)
	ListByInterviewer(ctx context.Context, interviewerID uuid.UUID) ([]*domain.Job, error)
	ListMine(ctx context.Context) ([]*domain.Job, error)
	Update(ctx context.Context, id uuid.UUID, input job.UpdateInput) (*domain.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// JobHandler serves job REST endpoints.
type JobHandler struct {
	svc jobService
	log *slog.Logger
}

// NewJobHandler creates a JobHandler.
func NewJobHandler(svc jobService, logger *slog.Logger) *JobHandler {
	return &JobHandler{svc: svc, log: logger.With("handler", "job")}
}

type createJobRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	RoleType    *string `json:"roleType"`
	Location    *string `json:"location"`
}

// Create handles POST /jobs.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	j, err := h.svc.Create(r.Context(), job.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		RoleType:    req.RoleType,
		Location:    req.Location,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toJobResponse(j))
}

// Get handles GET /jobs/{id}.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	j, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponse(j))
}

// List handles GET /jobs.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponses(jobs))
}

// ListByInterviewer handles GET /users/{id}/jobs.
func (h *JobHandler) ListByInterviewer(w http.ResponseWriter, r *http.Request) {
	interviewerID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	jobs, err := h.svc.ListByInterviewer(r.Context(), interviewerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponses(jobs))
}

// ListMine handles GET /jobs/mine.
func (h *JobHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.ListMine(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponses(jobs))
}

type updateJobRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	RoleType    *string `json:"roleType"`
	Location    *string `json:"location"`
}

// Update handles PATCH /jobs/{id}.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateJobRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	j, err := h.svc.Update(r.Context(), id, job.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		RoleType:    req.RoleType,
		Location:    req.Location,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponse(j))
}

// Delete handles DELETE /jobs/{id}.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
