package domain

import "time"

// DefaultStatus is the status assigned to a job created without one.
const DefaultStatus = "Saved"

// Job is a tracked job application. CurrentStatus is denormalized from
// the status history: it always mirrors the most recent history entry,
// and only a recorded status change moves it after creation.
type Job struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Company        string    `gorm:"type:text;not null" json:"company"`
	JobTitle       string    `gorm:"column:job_title;type:text;not null" json:"jobTitle"`
	Website        string    `gorm:"type:text" json:"website,omitempty"`
	JobDescription string    `gorm:"column:job_description;type:text" json:"jobDescription,omitempty"`
	ContactPerson  string    `gorm:"column:contact_person;type:text" json:"contactPerson,omitempty"`
	ContactLink    string    `gorm:"column:contact_link;type:text" json:"contactLink,omitempty"`
	CurrentStatus  string    `gorm:"column:current_status;type:text;not null;default:Saved" json:"currentStatus"`
	Deadline       *string   `gorm:"type:text" json:"deadline,omitempty"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`

	History []StatusHistoryEntry `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
	Todos   []PrepTodo           `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the database table name for Job.
func (Job) TableName() string {
	return "jobs"
}

// StatusHistoryEntry is one row of a job's append-only status ledger.
// Status is a string snapshot rather than a foreign key so the ledger
// survives catalog renames and deletions. Entries are never updated or
// deleted individually; they go away only when the owning job does.
type StatusHistoryEntry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	JobID         uint      `gorm:"column:job_id;not null;index" json:"jobId"`
	Status        string    `gorm:"type:text;not null" json:"status"`
	ChangedAt     time.Time `gorm:"column:changed_at;not null" json:"changedAt"`
	ContactPerson string    `gorm:"column:contact_person;type:text" json:"contactPerson,omitempty"`
	ContactLink   string    `gorm:"column:contact_link;type:text" json:"contactLink,omitempty"`
	Note          string    `gorm:"type:text" json:"note,omitempty"`
}

// TableName returns the database table name for StatusHistoryEntry.
func (StatusHistoryEntry) TableName() string {
	return "job_status_history"
}

// JobDetail is a job joined with its full history (newest first) and
// prep todos (insertion order), as returned by the job detail endpoint.
type JobDetail struct {
	Job
	History []StatusHistoryEntry `json:"history"`
	Todos   []PrepTodo           `json:"todos"`
}
