package application

import (
	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
)

const maxResumeTextLen = 50000

// CreateInput holds parameters for submitting an application. The candidate
// is always the caller; it is never part of the input.
type CreateInput struct {
	JobID      uuid.UUID
	ResumeText *string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.JobID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "job_id", Message: "required"})
	}
	if i.ResumeText != nil && len(*i.ResumeText) > maxResumeTextLen {
		errs = append(errs, domain.FieldError{Field: "resume_text", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateStatusInput holds parameters for a status transition.
type UpdateStatusInput struct {
	Status string
}

// Validate validates the status input.
func (i UpdateStatusInput) Validate() error {
	if !domain.ApplicationStatus(i.Status).IsValid() {
		return domain.NewValidationError("status", "must be pending, shortlisted or rejected")
	}
	return nil
}
