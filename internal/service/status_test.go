package service

import (
	"context"
	"errors"
	"testing"

	"github.com/timmy/goodjob/internal/domain"
)

func TestStatusCreate_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.statusService.SeedDefaults(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before, _ := env.statusService.List(ctx)
	maxOrder := -1
	for _, s := range before {
		if s.SortOrder > maxOrder {
			maxOrder = s.SortOrder
		}
	}

	created, err := env.statusService.Create(ctx, "Ghosted", "#000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.SortOrder != maxOrder+1 {
		t.Errorf("expected sortOrder %d, got %d", maxOrder+1, created.SortOrder)
	}

	statuses, err := env.statusService.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, s := range statuses {
		if s.Name == "Ghosted" && s.Color == "#000000" && s.SortOrder == maxOrder+1 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Ghosted/#000000 in catalog listing, got %+v", statuses)
	}
}

func TestStatusCreate_EmptyCatalogStartsAtZero(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.statusService.Create(ctx, "Saved", "#94a3b8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.SortOrder != 0 {
		t.Errorf("expected first status at sortOrder 0, got %d", created.SortOrder)
	}
}

func TestStatusCreate_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.statusService.Create(ctx, "", "#fff"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for empty name, got %v", err)
	}
	if _, err := env.statusService.Create(ctx, "Ghosted", ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for empty color, got %v", err)
	}
}

func TestStatusUpdate_Partial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, _ := env.statusService.Create(ctx, "Applied", "#3b82f6")

	color := "#1d4ed8"
	updated, err := env.statusService.Update(ctx, created.ID, StatusUpdateInput{Color: &color})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Color != "#1d4ed8" {
		t.Errorf("expected color updated, got %q", updated.Color)
	}
	if updated.Name != "Applied" || updated.SortOrder != created.SortOrder {
		t.Errorf("partial update touched other fields: %+v", updated)
	}

	if _, err := env.statusService.Update(ctx, 9999, StatusUpdateInput{Color: &color}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStatusDelete_BlockedWhileReferenced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, _ := env.statusService.Create(ctx, "Applied", "#3b82f6")
	job, _ := env.jobService.Create(ctx, JobCreateInput{
		Company:       "Acme",
		JobTitle:      "SWE",
		CurrentStatus: "Applied",
	})

	if err := env.statusService.Delete(ctx, created.ID); !errors.Is(err, domain.ErrStatusInUse) {
		t.Fatalf("expected ErrStatusInUse while a job holds the status, got %v", err)
	}

	// Move the job off the status; history keeps the "Applied" snapshot
	// but that does not block the delete.
	if _, err := env.jobService.RecordStatusChange(ctx, job.ID, StatusChangeInput{Status: "Rejected"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := env.statusService.Delete(ctx, created.ID); err != nil {
		t.Fatalf("expected delete to succeed once unreferenced, got %v", err)
	}

	history, _ := env.jobService.History(ctx, job.ID)
	if len(history) != 2 || history[1].Status != "Applied" {
		t.Errorf("expected history snapshot to survive catalog delete, got %+v", history)
	}
}

func TestStatusDelete_NotFound(t *testing.T) {
	env := newTestEnv(t)
	if err := env.statusService.Delete(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seeded, err := env.statusService.SeedDefaults(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seeded != len(domain.DefaultStatuses) {
		t.Errorf("expected %d seeded, got %d", len(domain.DefaultStatuses), seeded)
	}

	seeded, err = env.statusService.SeedDefaults(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seeded != 0 {
		t.Errorf("expected second seed to be a no-op, got %d", seeded)
	}

	statuses, _ := env.statusService.List(ctx)
	if len(statuses) != len(domain.DefaultStatuses) {
		t.Errorf("expected catalog of %d, got %d", len(domain.DefaultStatuses), len(statuses))
	}
	if statuses[0].Name != "Saved" || statuses[len(statuses)-1].Name != "Withdrawn" {
		t.Errorf("expected catalog in sortOrder, got first=%q last=%q", statuses[0].Name, statuses[len(statuses)-1].Name)
	}
}
