package repository

import (
	"context"

	"github.com/timmy/goodjob/internal/domain"
	"gorm.io/gorm"
)

// StatusRepository handles status catalog data operations.
type StatusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates a new StatusRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *StatusRepository: repository instance bound to db.
func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// List retrieves all statuses ordered by sort order.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - []domain.Status: catalog entries in display order.
//   - error: non-nil if the query fails.
func (r *StatusRepository) List(ctx context.Context) ([]domain.Status, error) {
	var statuses []domain.Status
	if err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// Create inserts a new catalog entry.
func (r *StatusRepository) Create(ctx context.Context, status *domain.Status) error {
	return r.db.WithContext(ctx).Create(status).Error
}

// GetByID retrieves a status by its ID.
func (r *StatusRepository) GetByID(ctx context.Context, id uint) (*domain.Status, error) {
	var status domain.Status
	if err := r.db.WithContext(ctx).First(&status, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// Update persists a modified catalog entry.
func (r *StatusRepository) Update(ctx context.Context, status *domain.Status) error {
	return r.db.WithContext(ctx).Save(status).Error
}

// Delete removes a catalog entry by ID.
func (r *StatusRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Status{}, "id = ?", id).Error
}

// MaxSortOrder returns the highest sort order in the catalog, or -1
// when the catalog is empty, so the next entry lands at max+1.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - int: maximum sort order or -1.
//   - error: non-nil if the query fails.
func (r *StatusRepository) MaxSortOrder(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Model(&domain.Status{}).
		Select("COALESCE(MAX(sort_order), -1)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

// Count returns the number of catalog entries.
func (r *StatusRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Status{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ColorMap builds the status name to color lookup from the full
// catalog. Later duplicates win, matching display order.
func (r *StatusRepository) ColorMap(ctx context.Context) (map[string]string, error) {
	statuses, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	colors := make(map[string]string, len(statuses))
	for _, s := range statuses {
		colors[s.Name] = s.Color
	}
	return colors, nil
}
