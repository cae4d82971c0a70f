package user

import (
	"github.com/battleworld/backend/internal/domain"
)

const (
	maxNameLen      = 200
	maxTextLen      = 5000
	maxListItems    = 50
	maxListItemLen  = 200
	maxShortTextLen = 200
)

// UpdateProfileInput holds parameters for a partial profile update.
// Nil fields are left unchanged; empty slices clear the list.
type UpdateProfileInput struct {
	Name          *string
	AvatarURL     *string
	Backstory     *string
	Skills        []string
	Weaknesses    []string
	Achievements  []string
	PreferredRole *string
}

// Validate validates the profile update input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be empty"})
		} else if len(*i.Name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	if i.Backstory != nil && len(*i.Backstory) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "backstory", Message: "too long"})
	}
	if i.PreferredRole != nil && len(*i.PreferredRole) > maxShortTextLen {
		errs = append(errs, domain.FieldError{Field: "preferred_role", Message: "too long"})
	}

	errs = append(errs, validateList("skills", i.Skills)...)
	errs = append(errs, validateList("weaknesses", i.Weaknesses)...)
	errs = append(errs, validateList("achievements", i.Achievements)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateList(field string, items []string) []domain.FieldError {
	var errs []domain.FieldError
	if len(items) > maxListItems {
		errs = append(errs, domain.FieldError{Field: field, Message: "too many items"})
	}
	for _, item := range items {
		if len(item) > maxListItemLen {
			errs = append(errs, domain.FieldError{Field: field, Message: "item too long"})
			break
		}
	}
	return errs
}

// SetRoleInput holds parameters for the role change operation.
type SetRoleInput struct {
	Role string
}

// Validate validates the role input.
func (i SetRoleInput) Validate() error {
	if !domain.UserRole(i.Role).IsValid() {
		return domain.NewValidationError("role", "must be candidate or interviewer")
	}
	return nil
}
