package repository

import (
	"context"
	"time"

	"github.com/timmy/goodjob/internal/domain"
	"gorm.io/gorm"
)

// JobRepository handles job records and their append-only status
// history. The two multi-step writes (create with initial history,
// record status change) run inside a transaction so a job can never be
// observed without a matching ledger entry.
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *JobRepository: repository instance bound to db.
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// HistoryEventRow is a history entry joined with its owning job's
// display fields, used by the calendar aggregator.
type HistoryEventRow struct {
	ID            uint
	JobID         uint
	Company       string
	JobTitle      string
	Status        string
	ChangedAt     time.Time
	ContactPerson string
	Note          string
}

// CreateWithHistory inserts a job and its initial history entry in one
// transaction. The ledger invariant is that every job has at least one
// entry from the moment it becomes visible.
func (r *JobRepository) CreateWithHistory(ctx context.Context, job *domain.Job, entry *domain.StatusHistoryEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(job).Error; err != nil {
			return err
		}
		entry.JobID = job.ID
		return tx.Create(entry).Error
	})
}

// AppendStatusChange appends a history entry and moves the job's
// denormalized current status to the entry's status, in one
// transaction. Returns gorm.ErrRecordNotFound when the job is missing.
func (r *JobRepository) AppendStatusChange(ctx context.Context, jobID uint, entry *domain.StatusHistoryEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job domain.Job
		if err := tx.First(&job, "id = ?", jobID).Error; err != nil {
			return err
		}
		entry.JobID = jobID
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Job{}).
			Where("id = ?", jobID).
			Update("current_status", entry.Status).Error
	})
}

// GetByID retrieves a job by its ID.
func (r *JobRepository) GetByID(ctx context.Context, id uint) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// List retrieves all jobs, newest first.
func (r *JobRepository) List(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update persists modified descriptive fields of a job.
func (r *JobRepository) Update(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Delete removes a job along with its history entries and prep todos.
// Deleting an id that does not exist is not an error.
func (r *JobRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Explicit child deletes so the cascade does not depend on the
		// driver honoring FK constraints
		if err := tx.Delete(&domain.StatusHistoryEntry{}, "job_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.PrepTodo{}, "job_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Job{}, "id = ?", id).Error
	})
}

// History retrieves a job's status ledger, newest change first.
func (r *JobRepository) History(ctx context.Context, jobID uint) ([]domain.StatusHistoryEntry, error) {
	var entries []domain.StatusHistoryEntry
	if err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("changed_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// CountByStatus counts jobs whose denormalized current status equals
// the given name. Used to block catalog deletes that would leave
// dangling references.
func (r *JobRepository) CountByStatus(ctx context.Context, name string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Job{}).
		Where("current_status = ?", name).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HistoryInRange retrieves history entries with changed_at inside the
// inclusive [start, end] window, joined to their owning job.
func (r *JobRepository) HistoryInRange(ctx context.Context, start, end time.Time) ([]HistoryEventRow, error) {
	var rows []HistoryEventRow
	if err := r.db.WithContext(ctx).
		Model(&domain.StatusHistoryEntry{}).
		Select("job_status_history.id, job_status_history.job_id, jobs.company, jobs.job_title, job_status_history.status, job_status_history.changed_at, job_status_history.contact_person, job_status_history.note").
		Joins("INNER JOIN jobs ON jobs.id = job_status_history.job_id").
		Where("job_status_history.changed_at >= ? AND job_status_history.changed_at <= ?", start, end).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeadlinesInRange retrieves jobs whose deadline date falls inside the
// inclusive [start, end] window. Deadlines are ISO dates stored as
// text, so the comparison is lexical.
func (r *JobRepository) DeadlinesInRange(ctx context.Context, start, end string) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.db.WithContext(ctx).
		Where("deadline IS NOT NULL AND deadline >= ? AND deadline <= ?", start, end).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
