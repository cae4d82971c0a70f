package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application is a candidate's submission against a job. CandidateID is
// always the identity of the caller who created it; it can never be supplied
// by the client.
type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	CandidateID uuid.UUID
	ResumeText  *string
	// ResumeHandle is the opaque object-storage reference bound after a
	// two-phase upload, if a file resume was provided.
	ResumeHandle *string
	Status       ApplicationStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
