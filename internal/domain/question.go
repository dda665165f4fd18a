package domain

import "time"

// InterviewQuestion is a practice Q&A card with a free-text label used
// for grouping (e.g. "Behavioral", "System Design").
type InterviewQuestion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text" json:"answer,omitempty"`
	Label     string    `gorm:"type:text;not null" json:"label"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the database table name for InterviewQuestion.
func (InterviewQuestion) TableName() string {
	return "interview_questions"
}
