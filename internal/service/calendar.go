package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/timmy/goodjob/internal/domain"
	"github.com/timmy/goodjob/internal/repository"
)

// Default window applied when a bound is omitted; wide enough to mean
// "everything" for a personal tracker.
const (
	defaultRangeStart = "2000-01-01"
	defaultRangeEnd   = "2099-12-31"
)

// CalendarService derives the unified event timeline from the status
// history ledger (change dates) and the job store (deadline dates),
// annotated with a catalog color lookup. Events are synthesized per
// query and never persisted.
type CalendarService struct {
	jobRepo    *repository.JobRepository
	statusRepo *repository.StatusRepository
}

// NewCalendarService creates a new calendar aggregator.
// Parameters:
//   - jobRepo: repository for jobs and history.
//   - statusRepo: repository for the status catalog colors.
// Returns:
//   - *CalendarService: initialized service.
func NewCalendarService(jobRepo *repository.JobRepository, statusRepo *repository.StatusRepository) *CalendarService {
	return &CalendarService{
		jobRepo:    jobRepo,
		statusRepo: statusRepo,
	}
}

// Events returns all calendar events in the inclusive [start, end]
// date range plus the status color map. History-derived events come
// first, deadline events are appended; no overall date sort is
// guaranteed, callers sort if they need to. Bounds are YYYY-MM-DD;
// empty bounds default to a wide-open window.
func (s *CalendarService) Events(ctx context.Context, start, end string) (*domain.CalendarView, error) {
	if start == "" {
		start = defaultRangeStart
	}
	if end == "" {
		end = defaultRangeEnd
	}
	startDay, err := time.ParseInLocation("2006-01-02", start, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: start %q is not YYYY-MM-DD", domain.ErrValidation, start)
	}
	endDay, err := time.ParseInLocation("2006-01-02", end, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: end %q is not YYYY-MM-DD", domain.ErrValidation, end)
	}
	// Inclusive end: cover the whole final day
	endOfRange := endDay.AddDate(0, 0, 1).Add(-time.Nanosecond)

	historyRows, err := s.jobRepo.HistoryInRange(ctx, startDay, endOfRange)
	if err != nil {
		return nil, fmt.Errorf("failed to load history events: %w", err)
	}

	deadlineJobs, err := s.jobRepo.DeadlinesInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load deadline events: %w", err)
	}

	colors, err := s.statusRepo.ColorMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load status colors: %w", err)
	}

	events := make([]domain.CalendarEvent, 0, len(historyRows)+len(deadlineJobs))
	for _, row := range historyRows {
		events = append(events, domain.CalendarEvent{
			ID:            strconv.FormatUint(uint64(row.ID), 10),
			JobID:         row.JobID,
			Company:       row.Company,
			JobTitle:      row.JobTitle,
			Status:        row.Status,
			Date:          row.ChangedAt.Format(time.RFC3339),
			ContactPerson: row.ContactPerson,
			Note:          row.Note,
		})
	}
	for _, job := range deadlineJobs {
		// "deadline-" prefix keeps these ids disjoint from the numeric
		// history ids when both lists are merged client-side
		events = append(events, domain.CalendarEvent{
			ID:       "deadline-" + strconv.FormatUint(uint64(job.ID), 10),
			JobID:    job.ID,
			Company:  job.Company,
			JobTitle: job.JobTitle,
			Status:   domain.DeadlineStatus,
			Date:     *job.Deadline,
			Note:     "Application deadline",
		})
	}

	return &domain.CalendarView{Events: events, ColorMap: colors}, nil
}
