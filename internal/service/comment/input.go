package comment

import (
	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
)

const maxContentLen = 10000

// AddInput holds parameters for leaving feedback on an interview.
type AddInput struct {
	InterviewID uuid.UUID
	Content     string
	Rating      int
}

// Validate validates the add input.
func (i AddInput) Validate() error {
	var errs []domain.FieldError

	if i.InterviewID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "interview_id", Message: "required"})
	}
	if i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if len(i.Content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}
	if i.Rating < 1 || i.Rating > 5 {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
