package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/timmy/goodjob/internal/domain"
)

// stampAfter returns an RFC3339 timestamp offset from now, so ordering
// assertions hold no matter when the suite runs. The initial history
// entry is stamped at creation time, so forward offsets keep recorded
// changes strictly newer than it.
func stampAfter(offset time.Duration) string {
	return time.Now().Add(offset).UTC().Format(time.RFC3339)
}

func TestJobCreate_InitialHistoryEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job, err := env.jobService.Create(ctx, JobCreateInput{
		Company:       "Acme",
		JobTitle:      "SWE",
		ContactPerson: "Jordan",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.CurrentStatus != "Saved" {
		t.Errorf("expected default status %q, got %q", "Saved", job.CurrentStatus)
	}

	history, err := env.jobService.History(ctx, job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected exactly 1 history entry after create, got %d", len(history))
	}
	if history[0].Status != job.CurrentStatus {
		t.Errorf("initial history status %q does not match job status %q", history[0].Status, job.CurrentStatus)
	}
	if history[0].ContactPerson != "Jordan" {
		t.Errorf("expected contact person on initial entry, got %q", history[0].ContactPerson)
	}
}

func TestJobCreate_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input JobCreateInput
	}{
		{name: "missing company", input: JobCreateInput{JobTitle: "SWE"}},
		{name: "missing title", input: JobCreateInput{Company: "Acme"}},
		{name: "bad deadline", input: JobCreateInput{Company: "Acme", JobTitle: "SWE", Deadline: strPtr("March 15")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := env.jobService.Create(ctx, tt.input); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestJobDeadline_EmptyStringMeansUnset(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job, err := env.jobService.Create(ctx, JobCreateInput{
		Company:  "Acme",
		JobTitle: "SWE",
		Deadline: strPtr(""),
	})
	if err != nil {
		t.Fatalf("expected empty deadline to be accepted, got %v", err)
	}
	if job.Deadline != nil {
		t.Errorf("expected no deadline, got %q", *job.Deadline)
	}

	// Set one, then clear it with the same empty string.
	updated, err := env.jobService.Update(ctx, job.ID, JobUpdateInput{Deadline: strPtr("2030-01-15")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Deadline == nil || *updated.Deadline != "2030-01-15" {
		t.Fatalf("expected deadline set, got %v", updated.Deadline)
	}
	cleared, err := env.jobService.Update(ctx, job.ID, JobUpdateInput{Deadline: strPtr("")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cleared.Deadline != nil {
		t.Errorf("expected deadline cleared, got %q", *cleared.Deadline)
	}
}

func TestRecordStatusChange_Sequence(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job, err := env.jobService.Create(ctx, JobCreateInput{Company: "Acme", JobTitle: "SWE"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Explicit timestamps keep the ordering deterministic
	changes := []StatusChangeInput{
		{Status: "Applied", ChangedAt: stampAfter(1 * time.Hour)},
		{Status: "Phone Screen", ChangedAt: stampAfter(2 * time.Hour)},
		{Status: "First Interview", ChangedAt: stampAfter(3 * time.Hour)},
	}
	for _, change := range changes {
		if _, err := env.jobService.RecordStatusChange(ctx, job.ID, change); err != nil {
			t.Fatalf("unexpected error recording %q: %v", change.Status, err)
		}
	}

	detail, err := env.jobService.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.CurrentStatus != "First Interview" {
		t.Errorf("expected current status %q, got %q", "First Interview", detail.CurrentStatus)
	}
	if len(detail.History) != len(changes)+1 {
		t.Fatalf("expected %d history entries, got %d", len(changes)+1, len(detail.History))
	}
	if detail.History[0].Status != "First Interview" {
		t.Errorf("expected newest-first ordering, history[0] = %q", detail.History[0].Status)
	}
	if detail.History[len(detail.History)-1].Status != "Saved" {
		t.Errorf("expected oldest entry to be the initial status, got %q", detail.History[len(detail.History)-1].Status)
	}
}

func TestRecordStatusChange_AcmeScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job, err := env.jobService.Create(ctx, JobCreateInput{
		Company:       "Acme",
		JobTitle:      "SWE",
		CurrentStatus: "Saved",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history, _ := env.jobService.History(ctx, job.ID)
	if len(history) != 1 || history[0].Status != "Saved" {
		t.Fatalf("expected history = [Saved], got %+v", history)
	}

	if _, err := env.jobService.RecordStatusChange(ctx, job.ID, StatusChangeInput{
		Status:    "Applied",
		ChangedAt: stampAfter(1 * time.Hour),
		Note:      "sent via referral",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	detail, err := env.jobService.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.CurrentStatus != "Applied" {
		t.Errorf("expected current status Applied, got %q", detail.CurrentStatus)
	}
	if len(detail.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(detail.History))
	}
	if detail.History[0].Status != "Applied" || detail.History[0].Note != "sent via referral" {
		t.Errorf("unexpected newest entry: %+v", detail.History[0])
	}
	if detail.History[1].Status != "Saved" {
		t.Errorf("unexpected oldest entry: %+v", detail.History[1])
	}
}

func TestRecordStatusChange_DefaultedTimestamp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job, err := env.jobService.Create(ctx, JobCreateInput{Company: "Acme", JobTitle: "SWE"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No ChangedAt: the entry is stamped with the operation time and
	// must still sort newer than the initial entry.
	if _, err := env.jobService.RecordStatusChange(ctx, job.ID, StatusChangeInput{
		Status: "Applied",
		Note:   "sent via referral",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	detail, err := env.jobService.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.CurrentStatus != "Applied" {
		t.Errorf("expected current status Applied, got %q", detail.CurrentStatus)
	}
	if len(detail.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(detail.History))
	}
	if detail.History[0].Status != "Applied" || detail.History[1].Status != "Saved" {
		t.Errorf("expected [Applied, Saved] newest-first, got [%q, %q]",
			detail.History[0].Status, detail.History[1].Status)
	}
}

func TestRecordStatusChange_Backdated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job, _ := env.jobService.Create(ctx, JobCreateInput{Company: "Acme", JobTitle: "SWE"})

	entry, err := env.jobService.RecordStatusChange(ctx, job.ID, StatusChangeInput{
		Status:    "Applied",
		ChangedAt: "2020-01-15",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := entry.ChangedAt.Format("2006-01-02"); got != "2020-01-15" {
		t.Errorf("expected backdated entry at 2020-01-15, got %s", got)
	}

	// The denormalized status tracks the latest append, even when the
	// appended entry is older than the initial one.
	detail, _ := env.jobService.Get(ctx, job.ID)
	if detail.CurrentStatus != "Applied" {
		t.Errorf("expected current status Applied, got %q", detail.CurrentStatus)
	}
}

func TestRecordStatusChange_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job, _ := env.jobService.Create(ctx, JobCreateInput{Company: "Acme", JobTitle: "SWE"})

	if _, err := env.jobService.RecordStatusChange(ctx, 9999, StatusChangeInput{Status: "Applied"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown job, got %v", err)
	}
	if _, err := env.jobService.RecordStatusChange(ctx, job.ID, StatusChangeInput{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for empty status, got %v", err)
	}
	if _, err := env.jobService.RecordStatusChange(ctx, job.ID, StatusChangeInput{Status: "Applied", ChangedAt: "yesterday"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for bad changedAt, got %v", err)
	}
}

func TestJobUpdate_CannotMoveStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job, _ := env.jobService.Create(ctx, JobCreateInput{Company: "Acme", JobTitle: "SWE"})

	updated, err := env.jobService.Update(ctx, job.ID, JobUpdateInput{
		Company: strPtr("Acme Corp"),
		Notes:   strPtr("recruiter reached out"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Company != "Acme Corp" {
		t.Errorf("expected company updated, got %q", updated.Company)
	}
	if updated.CurrentStatus != "Saved" {
		t.Errorf("field update must not move status, got %q", updated.CurrentStatus)
	}

	// The ledger still has only the initial entry
	history, _ := env.jobService.History(ctx, job.ID)
	if len(history) != 1 {
		t.Errorf("field update must not append history, got %d entries", len(history))
	}
}

func TestJobDelete_Cascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job, _ := env.jobService.Create(ctx, JobCreateInput{Company: "Acme", JobTitle: "SWE"})
	env.jobService.RecordStatusChange(ctx, job.ID, StatusChangeInput{Status: "Applied", ChangedAt: stampAfter(1 * time.Hour)})
	if _, err := env.prepService.Create(ctx, job.ID, "review system design notes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := env.jobService.Delete(ctx, job.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := env.jobService.Get(ctx, job.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	history, err := env.jobService.History(ctx, job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("expected empty history after cascade, got %d entries", len(history))
	}
	todos, err := env.prepService.ListByJob(ctx, job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("expected empty checklist after cascade, got %d items", len(todos))
	}

	// Deleting again is not an error
	if err := env.jobService.Delete(ctx, job.ID); err != nil {
		t.Errorf("expected idempotent delete, got %v", err)
	}
}

func TestJobList_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, company := range []string{"Acme", "Globex", "Initech"} {
		if _, err := env.jobService.Create(ctx, JobCreateInput{Company: company, JobTitle: "SWE"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	jobs, err := env.jobService.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}
	for i := 1; i < len(jobs); i++ {
		if jobs[i].CreatedAt.After(jobs[i-1].CreatedAt) {
			t.Errorf("expected createdAt descending, jobs[%d] is newer than jobs[%d]", i, i-1)
		}
	}
}

func strPtr(s string) *string { return &s }
