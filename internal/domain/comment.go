package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is post-interview feedback left by a panel interviewer.
// Comments are immutable once created.
type Comment struct {
	ID            uuid.UUID
	InterviewID   uuid.UUID
	InterviewerID uuid.UUID
	Content       string
	Rating        int
	CreatedAt     time.Time
}
