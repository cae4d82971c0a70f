package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Interview is a scheduled session between a candidate and a panel of
// interviewers. StreamCallID keys the external video room; both sides derive
// it deterministically so no server-side registry is needed.
type Interview struct {
	ID             uuid.UUID
	Title          string
	Description    *string
	StartTime      time.Time
	EndTime        *time.Time
	Status         InterviewStatus
	StreamCallID   string
	MeetingLink    *string
	CandidateID    uuid.UUID
	InterviewerIDs []uuid.UUID
	ReminderSentAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasPanelMember reports whether the given user sits on the interview panel.
// InterviewerIDs is authoritative for panel membership.
func (i *Interview) HasPanelMember(userID uuid.UUID) bool {
	return slices.Contains(i.InterviewerIDs, userID)
}

// InterviewUpdateParams describes a status/link update. EndTime is derived by
// the service: it is set exactly when Status transitions to completed.
type InterviewUpdateParams struct {
	Status      *InterviewStatus
	MeetingLink *string
	EndTime     *time.Time
}
