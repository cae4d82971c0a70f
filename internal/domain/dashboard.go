package domain

// InterviewerStats is the dashboard summary for an interviewer.
type InterviewerStats struct {
	TotalJobs          int
	RecentApplications int
	TotalInterviews    int
	TotalShortlisted   int
}
