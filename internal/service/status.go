package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/timmy/goodjob/internal/domain"
	"github.com/timmy/goodjob/internal/logger"
	"github.com/timmy/goodjob/internal/repository"
	"gorm.io/gorm"
)

// StatusService manages the status catalog.
type StatusService struct {
	statusRepo *repository.StatusRepository
	jobRepo    *repository.JobRepository
}

// NewStatusService creates a new status catalog service.
// Parameters:
//   - statusRepo: repository for catalog entries.
//   - jobRepo: repository for jobs, used for the delete-block check.
// Returns:
//   - *StatusService: initialized service.
func NewStatusService(statusRepo *repository.StatusRepository, jobRepo *repository.JobRepository) *StatusService {
	return &StatusService{
		statusRepo: statusRepo,
		jobRepo:    jobRepo,
	}
}

// StatusUpdateInput carries a partial catalog update. Nil fields are
// left unchanged. No uniqueness or contiguity repair is attempted on
// sort orders.
type StatusUpdateInput struct {
	Name      *string `json:"name"`
	Color     *string `json:"color"`
	SortOrder *int    `json:"sortOrder"`
}

// List returns the catalog in display order.
func (s *StatusService) List(ctx context.Context) ([]domain.Status, error) {
	return s.statusRepo.List(ctx)
}

// Create appends a new status at the end of the catalog, one past the
// current maximum sort order (0 for an empty catalog). Duplicate names
// are allowed.
func (s *StatusService) Create(ctx context.Context, name, color string) (*domain.Status, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if color == "" {
		return nil, fmt.Errorf("%w: color is required", domain.ErrValidation)
	}

	maxOrder, err := s.statusRepo.MaxSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to determine sort order: %w", err)
	}

	status := &domain.Status{
		Name:      name,
		Color:     color,
		SortOrder: maxOrder + 1,
	}
	if err := s.statusRepo.Create(ctx, status); err != nil {
		return nil, fmt.Errorf("failed to create status: %w", err)
	}
	return status, nil
}

// Update applies a partial update to a catalog entry.
func (s *StatusService) Update(ctx context.Context, id uint, in StatusUpdateInput) (*domain.Status, error) {
	status, err := s.statusRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: status %d", domain.ErrNotFound, id)
		}
		return nil, err
	}

	if in.Name != nil {
		status.Name = *in.Name
	}
	if in.Color != nil {
		status.Color = *in.Color
	}
	if in.SortOrder != nil {
		status.SortOrder = *in.SortOrder
	}

	if err := s.statusRepo.Update(ctx, status); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	return status, nil
}

// Delete removes a catalog entry. The delete is blocked with
// ErrStatusInUse while any job still carries the status name, so the
// catalog can never leave jobs pointing at a name that no longer
// exists. History snapshots are not considered; they are meant to
// outlive the catalog.
func (s *StatusService) Delete(ctx context.Context, id uint) error {
	status, err := s.statusRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: status %d", domain.ErrNotFound, id)
		}
		return err
	}

	inUse, err := s.jobRepo.CountByStatus(ctx, status.Name)
	if err != nil {
		return fmt.Errorf("failed to check status references: %w", err)
	}
	if inUse > 0 {
		return fmt.Errorf("%w: %q is the current status of %d job(s)", domain.ErrStatusInUse, status.Name, inUse)
	}

	return s.statusRepo.Delete(ctx, id)
}

// SeedDefaults inserts the default catalog into an empty database.
// A non-empty catalog is left untouched.
func (s *StatusService) SeedDefaults(ctx context.Context) (int, error) {
	count, err := s.statusRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.CtxInfo(ctx, "Status catalog already has %d entries, skipping seed", count)
		return 0, nil
	}

	for i := range domain.DefaultStatuses {
		status := domain.DefaultStatuses[i]
		if err := s.statusRepo.Create(ctx, &status); err != nil {
			return i, fmt.Errorf("failed to seed status %q: %w", status.Name, err)
		}
	}
	return len(domain.DefaultStatuses), nil
}
