package auth

import "github.com/battleworld/backend/internal/domain"

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	ProviderToken string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.ProviderToken == "" {
		errs = append(errs, domain.FieldError{Field: "provider_token", Message: "required"})
	} else if len(i.ProviderToken) > 4096 {
		errs = append(errs, domain.FieldError{Field: "provider_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
