package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/timmy/goodjob/internal/domain"
	"github.com/timmy/goodjob/internal/repository"
	"gorm.io/gorm"
)

// QuestionService manages interview practice questions.
type QuestionService struct {
	repo *repository.QuestionRepository
}

// NewQuestionService creates a new interview question service.
func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{repo: repo}
}

// QuestionInput carries the fields of an interview question. Question
// and label are required; the answer may be filled in later.
type QuestionInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Label    string `json:"label"`
}

// List returns all questions, newest first.
func (s *QuestionService) List(ctx context.Context) ([]domain.InterviewQuestion, error) {
	return s.repo.List(ctx)
}

// Create adds a question card.
func (s *QuestionService) Create(ctx context.Context, in QuestionInput) (*domain.InterviewQuestion, error) {
	if in.Question == "" {
		return nil, fmt.Errorf("%w: question is required", domain.ErrValidation)
	}
	if in.Label == "" {
		return nil, fmt.Errorf("%w: label is required", domain.ErrValidation)
	}

	q := &domain.InterviewQuestion{
		Question: in.Question,
		Answer:   in.Answer,
		Label:    in.Label,
	}
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return q, nil
}

// Update replaces a question card's content.
func (s *QuestionService) Update(ctx context.Context, id uint, in QuestionInput) (*domain.InterviewQuestion, error) {
	if in.Question == "" {
		return nil, fmt.Errorf("%w: question is required", domain.ErrValidation)
	}
	if in.Label == "" {
		return nil, fmt.Errorf("%w: label is required", domain.ErrValidation)
	}

	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %d", domain.ErrNotFound, id)
		}
		return nil, err
	}

	q.Question = in.Question
	q.Answer = in.Answer
	q.Label = in.Label

	if err := s.repo.Update(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}
	return q, nil
}

// Delete removes a question card. Unknown ids are not an error.
func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
