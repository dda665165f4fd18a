package repository

import (
	"context"

	"github.com/timmy/goodjob/internal/domain"
	"gorm.io/gorm"
)

// PrepTodoRepository handles per-job prep checklist items.
type PrepTodoRepository struct {
	db *gorm.DB
}

// NewPrepTodoRepository creates a new PrepTodoRepository.
func NewPrepTodoRepository(db *gorm.DB) *PrepTodoRepository {
	return &PrepTodoRepository{db: db}
}

// ListByJob retrieves a job's checklist in insertion order.
func (r *PrepTodoRepository) ListByJob(ctx context.Context, jobID uint) ([]domain.PrepTodo, error) {
	var todos []domain.PrepTodo
	if err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// Create inserts a checklist item.
func (r *PrepTodoRepository) Create(ctx context.Context, todo *domain.PrepTodo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// GetByID retrieves a checklist item by its ID.
func (r *PrepTodoRepository) GetByID(ctx context.Context, id uint) (*domain.PrepTodo, error) {
	var todo domain.PrepTodo
	if err := r.db.WithContext(ctx).First(&todo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// Update persists a modified checklist item.
func (r *PrepTodoRepository) Update(ctx context.Context, todo *domain.PrepTodo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

// Delete removes a checklist item by ID.
func (r *PrepTodoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.PrepTodo{}, "id = ?", id).Error
}

// DashboardTodoRepository handles free-standing dashboard todos.
type DashboardTodoRepository struct {
	db *gorm.DB
}

// NewDashboardTodoRepository creates a new DashboardTodoRepository.
func NewDashboardTodoRepository(db *gorm.DB) *DashboardTodoRepository {
	return &DashboardTodoRepository{db: db}
}

// List retrieves all dashboard todos, newest first.
func (r *DashboardTodoRepository) List(ctx context.Context) ([]domain.DashboardTodo, error) {
	var todos []domain.DashboardTodo
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// Create inserts a dashboard todo.
func (r *DashboardTodoRepository) Create(ctx context.Context, todo *domain.DashboardTodo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// GetByID retrieves a dashboard todo by its ID.
func (r *DashboardTodoRepository) GetByID(ctx context.Context, id uint) (*domain.DashboardTodo, error) {
	var todo domain.DashboardTodo
	if err := r.db.WithContext(ctx).First(&todo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// Update persists a modified dashboard todo.
func (r *DashboardTodoRepository) Update(ctx context.Context, todo *domain.DashboardTodo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

// Delete removes a dashboard todo by ID.
func (r *DashboardTodoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.DashboardTodo{}, "id = ?", id).Error
}
