package email

import (
	"net/mail"

	"github.com/google/uuid"

	"github.com/battleworld/backend/internal/domain"
)

const (
	maxSubjectLen = 500
	maxBodyLen    = 100000
)

// SendInput holds parameters for an outbound email.
type SendInput struct {
	Recipient   string
	Subject     string
	Body        string
	Type        *string
	InterviewID *uuid.UUID
}

// Validate validates the send input.
func (i SendInput) Validate() error {
	var errs []domain.FieldError

	if i.Recipient == "" {
		errs = append(errs, domain.FieldError{Field: "recipient", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Recipient); err != nil {
		errs = append(errs, domain.FieldError{Field: "recipient", Message: "invalid email address"})
	}
	if i.Subject == "" {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "required"})
	} else if len(i.Subject) > maxSubjectLen {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "too long"})
	}
	if i.Body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	} else if len(i.Body) > maxBodyLen {
		errs = append(errs, domain.FieldError{Field: "body", Message: "too long"})
	}
	if i.Type != nil && !domain.EmailType(*i.Type).IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown email type"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
