package game

import "time"

type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// SummaryJob tracks one asynchronous note-summary generation for a record.
// The worker writes the result onto the record's ai_summary column exactly
// once; a record whose summary is already set is never recomputed.
type SummaryJob struct {
	ID string `gorm:"primaryKey;size:26"` // ULID length

	RecordID uint64    `gorm:"index;not null"`
	Status   JobStatus `gorm:"type:varchar(16);index;not null"`

	// Filled when failed
	Error *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SummaryJob) TableName() string { return "summary_jobs" }
