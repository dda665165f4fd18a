package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/timmy/goodjob/internal/domain"
	"github.com/timmy/goodjob/internal/logger"
	"github.com/timmy/goodjob/internal/repository"
	"gorm.io/gorm"
)

// JobService manages job records together with their status history
// ledger. The job's current status is denormalized for fast list reads;
// after creation it only ever moves through RecordStatusChange, which
// appends a ledger entry and updates the job in the same transaction.
// Field updates deliberately cannot touch the status, so the ledger's
// newest entry and the denormalized value cannot drift apart.
type JobService struct {
	jobRepo    *repository.JobRepository
	prepRepo   *repository.PrepTodoRepository
	statusRepo *repository.StatusRepository
}

// NewJobService creates a new job service.
// Parameters:
//   - jobRepo: repository for jobs and history.
//   - prepRepo: repository for prep checklist items.
//   - statusRepo: repository for the status catalog, used to flag
//     unknown status names.
// Returns:
//   - *JobService: initialized service.
func NewJobService(
	jobRepo *repository.JobRepository,
	prepRepo *repository.PrepTodoRepository,
	statusRepo *repository.StatusRepository,
) *JobService {
	return &JobService{
		jobRepo:    jobRepo,
		prepRepo:   prepRepo,
		statusRepo: statusRepo,
	}
}

// JobCreateInput carries the fields for a new job record.
type JobCreateInput struct {
	Company        string  `json:"company"`
	JobTitle       string  `json:"jobTitle"`
	Website        string  `json:"website"`
	JobDescription string  `json:"jobDescription"`
	ContactPerson  string  `json:"contactPerson"`
	ContactLink    string  `json:"contactLink"`
	CurrentStatus  string  `json:"currentStatus"`
	Deadline       *string `json:"deadline"`
	Notes          string  `json:"notes"`
}

// JobUpdateInput carries a partial update of a job's descriptive
// fields. Nil fields are left unchanged. There is intentionally no
// status field here: the only way to move a job's status is
// RecordStatusChange.
type JobUpdateInput struct {
	Company        *string `json:"company"`
	JobTitle       *string `json:"jobTitle"`
	Website        *string `json:"website"`
	JobDescription *string `json:"jobDescription"`
	ContactPerson  *string `json:"contactPerson"`
	ContactLink    *string `json:"contactLink"`
	Deadline       *string `json:"deadline"`
	Notes          *string `json:"notes"`
}

// StatusChangeInput carries one status transition. ChangedAt accepts
// RFC3339 or a bare YYYY-MM-DD date and may be backdated; empty means
// now.
type StatusChangeInput struct {
	Status        string `json:"status"`
	ChangedAt     string `json:"changedAt"`
	ContactPerson string `json:"contactPerson"`
	ContactLink   string `json:"contactLink"`
	Note          string `json:"note"`
}

// Create inserts a new job and its initial history entry. The status
// defaults to "Saved" when unspecified; the initial ledger entry
// carries the same status and contact fields, stamped with the
// creation time.
func (s *JobService) Create(ctx context.Context, in JobCreateInput) (*domain.Job, error) {
	if in.Company == "" {
		return nil, fmt.Errorf("%w: company is required", domain.ErrValidation)
	}
	if in.JobTitle == "" {
		return nil, fmt.Errorf("%w: jobTitle is required", domain.ErrValidation)
	}
	// Empty string means no deadline, same as the update path.
	deadline := in.Deadline
	if deadline != nil && *deadline == "" {
		deadline = nil
	}
	if deadline != nil {
		if err := validateDate(*deadline); err != nil {
			return nil, err
		}
	}

	status := in.CurrentStatus
	if status == "" {
		status = domain.DefaultStatus
	}
	s.flagUnknownStatus(ctx, status)

	job := &domain.Job{
		Company:        in.Company,
		JobTitle:       in.JobTitle,
		Website:        in.Website,
		JobDescription: in.JobDescription,
		ContactPerson:  in.ContactPerson,
		ContactLink:    in.ContactLink,
		CurrentStatus:  status,
		Deadline:       deadline,
		Notes:          in.Notes,
	}
	entry := &domain.StatusHistoryEntry{
		Status:        status,
		ChangedAt:     time.Now(),
		ContactPerson: in.ContactPerson,
		ContactLink:   in.ContactLink,
	}

	if err := s.jobRepo.CreateWithHistory(ctx, job, entry); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	logger.CtxInfo(ctx, "Created job %d (%s at %s) with status %q", job.ID, job.JobTitle, job.Company, status)
	return job, nil
}

// RecordStatusChange appends a history entry and moves the job's
// current status to match, in one transaction. This is the only path
// that changes a job's status after creation.
func (s *JobService) RecordStatusChange(ctx context.Context, jobID uint, in StatusChangeInput) (*domain.StatusHistoryEntry, error) {
	if in.Status == "" {
		return nil, fmt.Errorf("%w: status is required", domain.ErrValidation)
	}

	changedAt := time.Now()
	if in.ChangedAt != "" {
		parsed, err := parseChangedAt(in.ChangedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: changedAt %q is not RFC3339 or YYYY-MM-DD", domain.ErrValidation, in.ChangedAt)
		}
		changedAt = parsed
	}

	s.flagUnknownStatus(ctx, in.Status)

	entry := &domain.StatusHistoryEntry{
		Status:        in.Status,
		ChangedAt:     changedAt,
		ContactPerson: in.ContactPerson,
		ContactLink:   in.ContactLink,
		Note:          in.Note,
	}
	if err := s.jobRepo.AppendStatusChange(ctx, jobID, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job %d", domain.ErrNotFound, jobID)
		}
		return nil, fmt.Errorf("failed to record status change: %w", err)
	}

	logger.CtxInfo(ctx, "Job %d moved to status %q", jobID, in.Status)
	return entry, nil
}

// Get returns a job joined with its full history (newest first) and
// prep checklist (insertion order).
func (s *JobService) Get(ctx context.Context, id uint) (*domain.JobDetail, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job %d", domain.ErrNotFound, id)
		}
		return nil, err
	}

	history, err := s.jobRepo.History(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	todos, err := s.prepRepo.ListByJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load prep todos: %w", err)
	}

	return &domain.JobDetail{Job: *job, History: history, Todos: todos}, nil
}

// Update applies a partial update to a job's descriptive fields.
// Company and jobTitle cannot be blanked out.
func (s *JobService) Update(ctx context.Context, id uint, in JobUpdateInput) (*domain.Job, error) {
	if in.Company != nil && *in.Company == "" {
		return nil, fmt.Errorf("%w: company cannot be empty", domain.ErrValidation)
	}
	if in.JobTitle != nil && *in.JobTitle == "" {
		return nil, fmt.Errorf("%w: jobTitle cannot be empty", domain.ErrValidation)
	}
	if in.Deadline != nil && *in.Deadline != "" {
		if err := validateDate(*in.Deadline); err != nil {
			return nil, err
		}
	}

	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job %d", domain.ErrNotFound, id)
		}
		return nil, err
	}

	if in.Company != nil {
		job.Company = *in.Company
	}
	if in.JobTitle != nil {
		job.JobTitle = *in.JobTitle
	}
	if in.Website != nil {
		job.Website = *in.Website
	}
	if in.JobDescription != nil {
		job.JobDescription = *in.JobDescription
	}
	if in.ContactPerson != nil {
		job.ContactPerson = *in.ContactPerson
	}
	if in.ContactLink != nil {
		job.ContactLink = *in.ContactLink
	}
	if in.Deadline != nil {
		if *in.Deadline == "" {
			job.Deadline = nil
		} else {
			job.Deadline = in.Deadline
		}
	}
	if in.Notes != nil {
		job.Notes = *in.Notes
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// Delete removes a job with its history and checklist. Unknown ids are
// not an error.
func (s *JobService) Delete(ctx context.Context, id uint) error {
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

// List returns all jobs, newest first.
func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	return s.jobRepo.List(ctx)
}

// History returns a job's status ledger, newest first.
func (s *JobService) History(ctx context.Context, jobID uint) ([]domain.StatusHistoryEntry, error) {
	return s.jobRepo.History(ctx, jobID)
}

// flagUnknownStatus logs a warning when a status name is not in the
// live catalog. Free-text statuses stay accepted, but nobody finds out
// at render time that their calendar went gray.
func (s *JobService) flagUnknownStatus(ctx context.Context, name string) {
	colors, err := s.statusRepo.ColorMap(ctx)
	if err != nil {
		logger.CtxWarn(ctx, "Could not load status catalog to validate %q: %v", name, err)
		return
	}
	if _, ok := colors[name]; !ok {
		logger.CtxWarn(ctx, "Status %q is not in the catalog; it will render with the default color", name)
	}
}

// parseChangedAt accepts RFC3339 timestamps or bare ISO dates.
func parseChangedAt(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// validateDate rejects deadline strings that are not bare ISO dates.
// Deadlines are compared lexically in range queries, so the stored
// format has to be uniform.
func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", domain.ErrValidation, s)
	}
	return nil
}
