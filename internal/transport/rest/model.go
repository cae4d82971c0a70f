package rest

import (
	"time"

	"github.com/battleworld/backend/internal/domain"
)

// JSON representations of domain entities. Shared across handlers so every
// endpoint serializes an entity the same way.

type userResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	AvatarURL     *string   `json:"avatarUrl,omitempty"`
	Role          string    `json:"role"`
	Backstory     *string   `json:"backstory,omitempty"`
	Skills        []string  `json:"skills,omitempty"`
	Weaknesses    []string  `json:"weaknesses,omitempty"`
	Achievements  []string  `json:"achievements,omitempty"`
	PreferredRole *string   `json:"preferredRole,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:            u.ID.String(),
		Name:          u.Name,
		Email:         u.Email,
		AvatarURL:     u.AvatarURL,
		Role:          u.Role.String(),
		Backstory:     u.Profile.Backstory,
		Skills:        u.Profile.Skills,
		Weaknesses:    u.Profile.Weaknesses,
		Achievements:  u.Profile.Achievements,
		PreferredRole: u.Profile.PreferredRole,
		CreatedAt:     u.CreatedAt,
	}
}

type jobResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	RoleType      *string   `json:"roleType,omitempty"`
	Location      *string   `json:"location,omitempty"`
	InterviewerID string    `json:"interviewerId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:            j.ID.String(),
		Title:         j.Title,
		Description:   j.Description,
		RoleType:      j.RoleType,
		Location:      j.Location,
		InterviewerID: j.InterviewerID.String(),
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}

func toJobResponses(jobs []*domain.Job) []jobResponse {
	out := make([]jobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobResponse(j))
	}
	return out
}

type applicationResponse struct {
	ID           string    `json:"id"`
	JobID        string    `json:"jobId"`
	CandidateID  string    `json:"candidateId"`
	ResumeText   *string   `json:"resumeText,omitempty"`
	ResumeHandle *string   `json:"resumeHandle,omitempty"`
	ResumeURL    string    `json:"resumeUrl,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toApplicationResponse(a *domain.Application, resolveURL func(string) string) applicationResponse {
	resp := applicationResponse{
		ID:           a.ID.String(),
		JobID:        a.JobID.String(),
		CandidateID:  a.CandidateID.String(),
		ResumeText:   a.ResumeText,
		ResumeHandle: a.ResumeHandle,
		Status:       a.Status.String(),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if a.ResumeHandle != nil && resolveURL != nil {
		resp.ResumeURL = resolveURL(*a.ResumeHandle)
	}
	return resp
}

type interviewResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	StartTime      time.Time  `json:"startTime"`
	EndTime        *time.Time `json:"endTime,omitempty"`
	Status         string     `json:"status"`
	StreamCallID   string     `json:"streamCallId"`
	MeetingLink    *string    `json:"meetingLink,omitempty"`
	CandidateID    string     `json:"candidateId"`
	InterviewerIDs []string   `json:"interviewerIds"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func toInterviewResponse(iv *domain.Interview) interviewResponse {
	panel := make([]string, 0, len(iv.InterviewerIDs))
	for _, id := range iv.InterviewerIDs {
		panel = append(panel, id.String())
	}
	return interviewResponse{
		ID:             iv.ID.String(),
		Title:          iv.Title,
		Description:    iv.Description,
		StartTime:      iv.StartTime,
		EndTime:        iv.EndTime,
		Status:         iv.Status.String(),
		StreamCallID:   iv.StreamCallID,
		MeetingLink:    iv.MeetingLink,
		CandidateID:    iv.CandidateID.String(),
		InterviewerIDs: panel,
		CreatedAt:      iv.CreatedAt,
		UpdatedAt:      iv.UpdatedAt,
	}
}

func toInterviewResponses(interviews []*domain.Interview) []interviewResponse {
	out := make([]interviewResponse, 0, len(interviews))
	for _, iv := range interviews {
		out = append(out, toInterviewResponse(iv))
	}
	return out
}

type commentResponse struct {
	ID            string    `json:"id"`
	InterviewID   string    `json:"interviewId"`
	InterviewerID string    `json:"interviewerId"`
	Content       string    `json:"content"`
	Rating        int       `json:"rating"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:            c.ID.String(),
		InterviewID:   c.InterviewID.String(),
		InterviewerID: c.InterviewerID.String(),
		Content:       c.Content,
		Rating:        c.Rating,
		CreatedAt:     c.CreatedAt,
	}
}

type emailLogResponse struct {
	ID          string    `json:"id"`
	Recipient   string    `json:"recipient"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	SenderID    *string   `json:"senderId,omitempty"`
	Type        *string   `json:"type,omitempty"`
	InterviewID *string   `json:"interviewId,omitempty"`
	SentAt      time.Time `json:"sentAt"`
}

func toEmailLogResponse(e *domain.EmailLog) emailLogResponse {
	resp := emailLogResponse{
		ID:        e.ID.String(),
		Recipient: e.Recipient,
		Subject:   e.Subject,
		Body:      e.Body,
		SentAt:    e.SentAt,
	}
	if e.SenderID != nil {
		s := e.SenderID.String()
		resp.SenderID = &s
	}
	if e.Type != nil {
		s := e.Type.String()
		resp.Type = &s
	}
	if e.InterviewID != nil {
		s := e.InterviewID.String()
		resp.InterviewID = &s
	}
	return resp
}

func toEmailLogResponses(logs []*domain.EmailLog) []emailLogResponse {
	out := make([]emailLogResponse, 0, len(logs))
	for _, e := range logs {
		out = append(out, toEmailLogResponse(e))
	}
	return out
}
