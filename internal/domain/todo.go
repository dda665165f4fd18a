package domain

import "time"

// PrepTodo is a per-job interview-prep checklist item. Independent
// lifecycle; deleted in cascade with its job.
type PrepTodo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	JobID     uint      `gorm:"column:job_id;not null;index" json:"jobId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the database table name for PrepTodo.
func (PrepTodo) TableName() string {
	return "job_prep_todos"
}

// DashboardTodo is a free-standing todo shown on the dashboard, not
// tied to any job.
type DashboardTodo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the database table name for DashboardTodo.
func (DashboardTodo) TableName() string {
	return "dashboard_todos"
}
