package domain

import "testing"

func TestUserRole_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role UserRole
		want bool
	}{
		{UserRoleCandidate, true},
		{UserRoleInterviewer, true},
		{UserRole("admin"), false},
		{UserRole(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			t.Parallel()
			if got := tt.role.IsValid(); got != tt.want {
				t.Errorf("UserRole(%q).IsValid() = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestUserRole_IsInterviewer(t *testing.T) {
	t.Parallel()

	if !UserRoleInterviewer.IsInterviewer() {
		t.Error("interviewer role should report IsInterviewer")
	}
	if UserRoleCandidate.IsInterviewer() {
		t.Error("candidate role should not report IsInterviewer")
	}
}

func TestApplicationStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status ApplicationStatus
		want   bool
	}{
		{ApplicationStatusPending, true},
		{ApplicationStatusShortlisted, true},
		{ApplicationStatusRejected, true},
		{ApplicationStatus("hired"), false},
		{ApplicationStatus(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("ApplicationStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestInterviewStatus_IsCompleted(t *testing.T) {
	t.Parallel()

	if !InterviewStatusCompleted.IsCompleted() {
		t.Error("completed status should report IsCompleted")
	}
	for _, s := range []InterviewStatus{InterviewStatusUpcoming, InterviewStatusInProgress, InterviewStatusCancelled, InterviewStatus("custom")} {
		if s.IsCompleted() {
			t.Errorf("InterviewStatus(%q).IsCompleted() = true, want false", s)
		}
	}
}

func TestEmailType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  EmailType
		want bool
	}{
		{EmailTypeInvite, true},
		{EmailTypeRejection, true},
		{EmailTypeFollowup, true},
		{EmailType("newsletter"), false},
		{EmailType(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			t.Parallel()
			if got := tt.typ.IsValid(); got != tt.want {
				t.Errorf("EmailType(%q).IsValid() = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}
