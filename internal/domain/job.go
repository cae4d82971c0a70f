package domain

import (
	"time"

	"github.com/google/uuid"
)

// Job is a position posted by an interviewer. InterviewerID is the owning
// user; every mutating operation must verify ownership against it.
type Job struct {
	ID            uuid.UUID
	Title         string
	Description   *string
	RoleType      *string
	Location      *string
	InterviewerID uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// JobUpdateParams describes a partial job update. Nil means "leave unchanged".
type JobUpdateParams struct {
	Title       *string
	Description *string
	RoleType    *string
	Location    *string
}

// IsEmpty reports whether the update would change nothing.
func (p JobUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.RoleType == nil && p.Location == nil
}
