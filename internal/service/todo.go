package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/timmy/goodjob/internal/domain"
	"github.com/timmy/goodjob/internal/repository"
	"gorm.io/gorm"
)

// PrepTodoService manages per-job prep checklists. No cross-entity
// invariants beyond the job existing at creation time.
type PrepTodoService struct {
	prepRepo *repository.PrepTodoRepository
	jobRepo  *repository.JobRepository
}

// NewPrepTodoService creates a new prep checklist service.
func NewPrepTodoService(prepRepo *repository.PrepTodoRepository, jobRepo *repository.JobRepository) *PrepTodoService {
	return &PrepTodoService{prepRepo: prepRepo, jobRepo: jobRepo}
}

// TodoUpdateInput carries a partial todo update.
type TodoUpdateInput struct {
	Content   *string `json:"content"`
	Completed *bool   `json:"completed"`
}

// ListByJob returns a job's checklist in insertion order.
func (s *PrepTodoService) ListByJob(ctx context.Context, jobID uint) ([]domain.PrepTodo, error) {
	return s.prepRepo.ListByJob(ctx, jobID)
}

// Create adds a checklist item to a job.
func (s *PrepTodoService) Create(ctx context.Context, jobID uint, content string) (*domain.PrepTodo, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job %d", domain.ErrNotFound, jobID)
		}
		return nil, err
	}

	todo := &domain.PrepTodo{JobID: jobID, Content: content}
	if err := s.prepRepo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create prep todo: %w", err)
	}
	return todo, nil
}

// Update applies a partial update to a checklist item.
func (s *PrepTodoService) Update(ctx context.Context, id uint, in TodoUpdateInput) (*domain.PrepTodo, error) {
	todo, err := s.prepRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: todo %d", domain.ErrNotFound, id)
		}
		return nil, err
	}

	if in.Content != nil {
		if *in.Content == "" {
			return nil, fmt.Errorf("%w: content cannot be empty", domain.ErrValidation)
		}
		todo.Content = *in.Content
	}
	if in.Completed != nil {
		todo.Completed = *in.Completed
	}

	if err := s.prepRepo.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to update prep todo: %w", err)
	}
	return todo, nil
}

// Delete removes a checklist item. Unknown ids are not an error.
func (s *PrepTodoService) Delete(ctx context.Context, id uint) error {
	return s.prepRepo.Delete(ctx, id)
}

// DashboardTodoService manages free-standing dashboard todos.
type DashboardTodoService struct {
	repo *repository.DashboardTodoRepository
}

// NewDashboardTodoService creates a new dashboard todo service.
func NewDashboardTodoService(repo *repository.DashboardTodoRepository) *DashboardTodoService {
	return &DashboardTodoService{repo: repo}
}

// List returns all dashboard todos, newest first.
func (s *DashboardTodoService) List(ctx context.Context) ([]domain.DashboardTodo, error) {
	return s.repo.List(ctx)
}

// Create adds a dashboard todo.
func (s *DashboardTodoService) Create(ctx context.Context, content string) (*domain.DashboardTodo, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	todo := &domain.DashboardTodo{Content: content}
	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo, nil
}

// Update applies a partial update to a dashboard todo.
func (s *DashboardTodoService) Update(ctx context.Context, id uint, in TodoUpdateInput) (*domain.DashboardTodo, error) {
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: todo %d", domain.ErrNotFound, id)
		}
		return nil, err
	}

	if in.Content != nil {
		if *in.Content == "" {
			return nil, fmt.Errorf("%w: content cannot be empty", domain.ErrValidation)
		}
		todo.Content = *in.Content
	}
	if in.Completed != nil {
		todo.Completed = *in.Completed
	}

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}
	return todo, nil
}

// Delete removes a dashboard todo. Unknown ids are not an error.
func (s *DashboardTodoService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
