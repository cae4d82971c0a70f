package domain

// UserRole classifies a user as candidate or interviewer.
// The role is binary and exclusive; there are no multi-role users.
type UserRole string

const (
	UserRoleCandidate   UserRole = "candidate"
	UserRoleInterviewer UserRole = "interviewer"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCandidate, UserRoleInterviewer:
		return true
	}
	return false
}

func (r UserRole) IsInterviewer() bool {
	return r == UserRoleInterviewer
}

// ApplicationStatus represents the lifecycle state of a job application.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusShortlisted, ApplicationStatusRejected:
		return true
	}
	return false
}

// InterviewStatus is a free-form string at the data layer; these are the
// values the application itself writes and recognizes. Unknown values are
// stored as-is and never rejected.
type InterviewStatus string

const (
	InterviewStatusUpcoming   InterviewStatus = "upcoming"
	InterviewStatusInProgress InterviewStatus = "in-progress"
	InterviewStatusCompleted  InterviewStatus = "completed"
	InterviewStatusCancelled  InterviewStatus = "cancelled"
)

func (s InterviewStatus) String() string { return string(s) }

// IsCompleted reports whether the status marks the interview finished.
func (s InterviewStatus) IsCompleted() bool {
	return s == InterviewStatusCompleted
}

// EmailType categorizes entries in the email audit log.
type EmailType string

const (
	EmailTypeInvite    EmailType = "invite"
	EmailTypeRejection EmailType = "rejection"
	EmailTypeFollowup  EmailType = "followup"
)

func (t EmailType) String() string { return string(t) }

func (t EmailType) IsValid() bool {
	switch t {
	case EmailTypeInvite, EmailTypeRejection, EmailTypeFollowup:
		return true
	}
	return false
}
