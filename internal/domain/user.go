package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an application user. IdentityKey is the subject id issued
// by the external identity provider; it is the stable cross-system key,
// while ID is the local primary key.
type User struct {
	ID          uuid.UUID
	IdentityKey string
	Name        string
	Email       string
	AvatarURL   *string
	Role        UserRole
	Profile     CandidateProfile
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CandidateProfile holds the candidate-only profile fields. All fields are
// empty for interviewers.
type CandidateProfile struct {
	Backstory     *string
	Skills        []string
	Weaknesses    []string
	Achievements  []string
	PreferredRole *string
}

// ProfileUpdateParams describes a partial profile update. Nil means
// "leave unchanged".
type ProfileUpdateParams struct {
	Name          *string
	AvatarURL     *string
	Backstory     *string
	Skills        []string
	Weaknesses    []string
	Achievements  []string
	PreferredRole *string
}
