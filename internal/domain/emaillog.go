package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmailLog is an append-only audit record of an outbound email. Only the
// original sender may delete an entry.
type EmailLog struct {
	ID          uuid.UUID
	Recipient   string
	Subject     string
	Body        string
	SenderID    *uuid.UUID
	Type        *EmailType
	InterviewID *uuid.UUID
	SentAt      time.Time
}
