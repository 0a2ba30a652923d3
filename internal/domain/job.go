package domain

import "time"

type Job struct {
	ID           string     `db:"id"            json:"job_id"`
	SessionID    string     `db:"session_id"    json:"session_id"`
	Status       Status     `db:"status"        json:"status"`
	Total        int        `db:"total"         json:"total"`
	Processed    int        `db:"processed"     json:"processed"`
	Percentage   int        `db:"-"             json:"percentage"`
	CurrentLabel string     `db:"current_label" json:"current_label"`
	ArchiveKey   string     `db:"archive_key"   json:"-"`
	ErrorMessage string     `db:"error_message" json:"error,omitempty"`
	CreatedAt    time.Time  `db:"created_at"    json:"created_at"`
	FinishedAt   *time.Time `db:"finished_at"   json:"finished_at,omitempty"`
}
