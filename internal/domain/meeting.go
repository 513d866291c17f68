package domain

import "time"

type Meeting struct {
	ID           int64      `json:"id" db:"id"`
	RepositoryID int64      `json:"repository_id" db:"repository_id"`
	Title        string     `json:"title" db:"title"`
	Platform     string     `json:"platform" db:"platform"` // zoom, google_meet
	MeetingURL   string     `json:"meeting_url" db:"meeting_url"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty" db:"scheduled_at"`
	CreatedBy    string     `json:"created_by" db:"created_by"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}
