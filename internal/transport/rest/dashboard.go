package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/battleworld/backend/internal/domain"
)

// dashboardService defines the minimal interface needed by DashboardHandler.
type dashboardService interface {
	GetInterviewerStats(ctx context.Context) (*domain.InterviewerStats, error)
}

// DashboardHandler serves interviewer dashboard REST endpoints.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type dashboardStatsResponse struct {
	TotalJobs          int `json:"totalJobs"`
	RecentApplications int `json:"recentApplications"`
	TotalInterviews    int `json:"totalInterviews"`
	TotalShortlisted   int `json:"totalShortlisted"`
}

// Stats handles GET /dashboard/stats. Interviewer only.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetInterviewerStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboardStatsResponse{
		TotalJobs:          stats.TotalJobs,
		RecentApplications: stats.RecentApplications,
		TotalInterviews:    stats.TotalInterviews,
		TotalShortlisted:   stats.TotalShortlisted,
	})
}
