package rest

import (
	"net/http"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	User        *UserHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Interview   *InterviewHandler
	Chat        *ChatHandler
	Dashboard   *DashboardHandler
	Email       *EmailHandler
	Resume      *ResumeHandler
}

// NewRouter builds the route table. Method and path matching is done by the
// stdlib mux; authentication and the rest of the middleware chain wrap the
// returned handler at the server level.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /auth/login", h.Auth.Login)

	mux.HandleFunc("GET /users/me", h.User.GetMe)
	mux.HandleFunc("PATCH /users/me", h.User.UpdateProfile)
	mux.HandleFunc("POST /users/me/role", h.User.SetRole)
	mux.HandleFunc("DELETE /users/me", h.User.Delete)
	mux.HandleFunc("GET /users/{id}/jobs", h.Job.ListByInterviewer)
	mux.HandleFunc("GET /users/{id}/interviews", h.Interview.ListByCandidate)

	mux.HandleFunc("POST /jobs", h.Job.Create)
	mux.HandleFunc("GET /jobs", h.Job.List)
	mux.HandleFunc("GET /jobs/mine", h.Job.ListMine)
	mux.HandleFunc("GET /jobs/{id}", h.Job.Get)
	mux.HandleFunc("PATCH /jobs/{id}", h.Job.Update)
	mux.HandleFunc("DELETE /jobs/{id}", h.Job.Delete)
	mux.HandleFunc("GET /jobs/{id}/applications", h.Application.ListByJob)

	mux.HandleFunc("POST /applications", h.Application.Create)
	mux.HandleFunc("GET /applications/mine", h.Application.ListMine)
	mux.HandleFunc("GET /applications/{id}", h.Application.Get)
	mux.HandleFunc("POST /applications/{id}/status", h.Application.UpdateStatus)
	mux.HandleFunc("DELETE /applications/{id}", h.Application.Delete)
	mux.HandleFunc("POST /applications/{id}/resume", h.Resume.BindResume)

	mux.HandleFunc("POST /resumes/upload-url", h.Resume.CreateUploadURL)

	mux.HandleFunc("POST /interviews", h.Interview.Create)
	mux.HandleFunc("GET /interviews/mine/candidate", h.Interview.ListMineAsCandidate)
	mux.HandleFunc("GET /interviews/mine/interviewer", h.Interview.ListMineAsInterviewer)
	mux.HandleFunc("GET /interviews/by-channel/{channelId}", h.Interview.GetByChannel)
	mux.HandleFunc("GET /interviews/{id}", h.Interview.Get)
	mux.HandleFunc("PATCH /interviews/{id}", h.Interview.Update)
	mux.HandleFunc("POST /interviews/{id}/comments", h.Interview.AddComment)
	mux.HandleFunc("GET /interviews/{id}/comments", h.Interview.ListComments)
	mux.HandleFunc("GET /interviews/{id}/emails", h.Email.ListByInterview)

	mux.HandleFunc("POST /chat/allow", h.Chat.Allow)
	mux.HandleFunc("POST /chat/revoke", h.Chat.Revoke)
	mux.HandleFunc("GET /chat/can-chat/{userId}", h.Chat.CanChat)
	mux.HandleFunc("GET /chat/channel/{userId}", h.Chat.ChannelID)
	mux.HandleFunc("GET /chat/token", h.Chat.StreamToken)

	mux.HandleFunc("GET /dashboard/stats", h.Dashboard.Stats)

	mux.HandleFunc("POST /email", h.Email.Send)
	mux.HandleFunc("GET /email", h.Email.List)
	mux.HandleFunc("DELETE /email/{id}", h.Email.Delete)

	return mux
}
