package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
	"github.com/battleworld/backend/internal/service/comment"
	"github.com/battleworld/backend/internal/service/interview"
)

// interviewService defines the minimal interface needed by InterviewHandler.
type interviewService interface {
	Create(ctx context.Context, input interview.CreateInput) (*domain.Interview, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Interview, error)
	GetByChannelID(ctx context.Context, callID string) (*domain.Interview, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*domain.Interview, error)
	ListMineAsCandidate(ctx context.Context) ([]*domain.Interview, error)
	ListMineAsInterviewer(ctx context.Context) ([]*domain.Interview, error)
	Update(ctx context.Context, id uuid.UUID, input interview.UpdateInput) (*domain.Interview, error)
}

// commentService defines the minimal interface for interview feedback.
type commentService interface {
	Add(ctx context.Context, input comment.AddInput) (*domain.Comment, error)
	ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]*domain.Comment, error)
}

// InterviewHandler serves interview and feedback REST endpoints.
type InterviewHandler struct {
	svc      interviewService
	comments commentService
	log      *slog.Logger
}

// NewInterviewHandler creates an InterviewHandler.
func NewInterviewHandler(svc interviewService, comments commentService, logger *slog.Logger) *InterviewHandler {
	return &InterviewHandler{
		svc:      svc,
		comments: comments,
		log:      logger.With("handler", "interview"),
	}
}

type createInterviewRequest struct {
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	StartTime      time.Time `json:"startTime"`
	StreamCallID   string    `json:"streamCallId"`
	MeetingLink    *string   `json:"meetingLink"`
	CandidateID    string    `json:"candidateId"`
	InterviewerIDs []string  `json:"interviewerIds"`
}

// Create handles POST /interviews. Interviewer only.
func (h *InterviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInterviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("candidateId", "must be a valid UUID"))
		return
	}

	panel := make([]uuid.UUID, 0, len(req.InterviewerIDs))
	for _, raw := range req.InterviewerIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("interviewerIds", "must be valid UUIDs"))
			return
		}
		panel = append(panel, id)
	}

	iv, err := h.svc.Create(r.Context(), interview.CreateInput{
		Title:          req.Title,
		Description:    req.Description,
		StartTime:      req.StartTime,
		StreamCallID:   req.StreamCallID,
		MeetingLink:    req.MeetingLink,
		CandidateID:    candidateID,
		InterviewerIDs: panel,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInterviewResponse(iv))
}

// Get handles GET /interviews/{id}. Participants only.
func (h *InterviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	iv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInterviewResponse(iv))
}

// GetByChannel handles GET /interviews/by-channel/{channelId}. Clients probe
// this during call setup; a room with no interview is a 404, not a 500.
func (h *InterviewHandler) GetByChannel(w http.ResponseWriter, r *http.Request) {
	iv, err := h.svc.GetByChannelID(r.Context(), r.PathValue("channelId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInterviewResponse(iv))
}

// ListByCandidate handles GET /users/{id}/interviews.
func (h *InterviewHandler) ListByCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	interviews, err := h.svc.ListByCandidate(r.Context(), candidateID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInterviewResponses(interviews))
}

// ListMineAsCandidate handles GET /interviews/mine/candidate.
func (h *InterviewHandler) ListMineAsCandidate(w http.ResponseWriter, r *http.Request) {
	interviews, err := h.svc.ListMineAsCandidate(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInterviewResponses(interviews))
}

// ListMineAsInterviewer handles GET /interviews/mine/interviewer.
func (h *InterviewHandler) ListMineAsInterviewer(w http.ResponseWriter, r *http.Request) {
	interviews, err := h.svc.ListMineAsInterviewer(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInterviewResponses(interviews))
}

type updateInterviewRequest struct {
	Status      *string `json:"status"`
	MeetingLink *string `json:"meetingLink"`
}

// Update handles PATCH /interviews/{id}. Participants only.
func (h *InterviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateInterviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	iv, err := h.svc.Update(r.Context(), id, interview.UpdateInput{
		Status:      req.Status,
		MeetingLink: req.MeetingLink,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInterviewResponse(iv))
}

type addCommentRequest struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// AddComment handles POST /interviews/{id}/comments. Interviewer only.
func (h *InterviewHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req addCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.comments.Add(r.Context(), comment.AddInput{
		InterviewID: id,
		Content:     req.Content,
		Rating:      req.Rating,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(c))
}

// ListComments handles GET /interviews/{id}/comments.
func (h *InterviewHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	comments, err := h.comments.ListByInterview(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}
