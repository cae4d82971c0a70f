package interview

import (
	"time"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
)

const (
	maxTitleLen = 200
	maxDescLen  = 10000
	maxLinkLen  = 2000
	maxPanel    = 20
)

// CreateInput holds parameters for scheduling an interview. StreamCallID is
// the external room key; the client derives it so video can start before the
// record exists.
type CreateInput struct {
	Title          string
	Description    *string
	StartTime      time.Time
	StreamCallID   string
	MeetingLink    *string
	CandidateID    uuid.UUID
	InterviewerIDs []uuid.UUID
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Description != nil && len(*i.Description) > maxDescLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.StartTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_time", Message: "required"})
	}
	if i.StreamCallID == "" {
		errs = append(errs, domain.FieldError{Field: "stream_call_id", Message: "required"})
	} else if len(i.StreamCallID) > 200 {
		errs = append(errs, domain.FieldError{Field: "stream_call_id", Message: "too long"})
	}
	if i.MeetingLink != nil && len(*i.MeetingLink) > maxLinkLen {
		errs = append(errs, domain.FieldError{Field: "meeting_link", Message: "too long"})
	}
	if i.CandidateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "candidate_id", Message: "required"})
	}
	if len(i.InterviewerIDs) > maxPanel {
		errs = append(errs, domain.FieldError{Field: "interviewer_ids", Message: "too many panel members"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for a status/link update.
type UpdateInput struct {
	Status      *string
	MeetingLink *string
}

// Validate validates the update input. Status is deliberately open: unknown
// values are stored as-is.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && *i.Status == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "cannot be empty"})
	}
	if i.MeetingLink != nil && len(*i.MeetingLink) > maxLinkLen {
		errs = append(errs, domain.FieldError{Field: "meeting_link", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
