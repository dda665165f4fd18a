package repository

import (
	"context"

	"github.com/timmy/goodjob/internal/domain"
	"gorm.io/gorm"
)

// QuestionRepository handles interview question data operations.
type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// List retrieves all interview questions, newest first.
func (r *QuestionRepository) List(ctx context.Context) ([]domain.InterviewQuestion, error) {
	var questions []domain.InterviewQuestion
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Create inserts an interview question.
func (r *QuestionRepository) Create(ctx context.Context, q *domain.InterviewQuestion) error {
	return r.db.WithContext(ctx).Create(q).Error
}

// GetByID retrieves an interview question by its ID.
func (r *QuestionRepository) GetByID(ctx context.Context, id uint) (*domain.InterviewQuestion, error) {
	var q domain.InterviewQuestion
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// Update persists a modified interview question.
func (r *QuestionRepository) Update(ctx context.Context, q *domain.InterviewQuestion) error {
	return r.db.WithContext(ctx).Save(q).Error
}

// Delete removes an interview question by ID.
func (r *QuestionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.InterviewQuestion{}, "id = ?", id).Error
}
