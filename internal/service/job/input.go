package job

import "github.com/battleworld/backend/internal/domain"

const (
	maxTitleLen = 200
	maxDescLen  = 10000
	maxFieldLen = 200
)

// CreateInput holds parameters for creating a job posting.
type CreateInput struct {
	Title       string
	Description *string
	RoleType    *string
	Location    *string
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
	if i.RoleType != nil && len(*i.RoleType) > maxFieldLen {
		errs = append(errs, domain.FieldError{Field: "role_type", Message: "too long"})
	}
	if i.Location != nil && len(*i.Location) > maxFieldLen {
		errs = append(errs, domain.FieldError{Field: "location", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for a partial job update.
type UpdateInput struct {
	Title       *string
	Description *string
	RoleType    *string
	Location    *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if *i.Title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be empty"})
		} else if len(*i.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}
	if i.Description != nil && len(*i.Description) > maxDescLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.RoleType != nil && len(*i.RoleType) > maxFieldLen {
		errs = append(errs, domain.FieldError{Field: "role_type", Message: "too long"})
	}
	if i.Location != nil && len(*i.Location) > maxFieldLen {
		errs = append(errs, domain.FieldError{Field: "location", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
