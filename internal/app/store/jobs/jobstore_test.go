package jobstore_test

import (
	"context"
	"errors"
	"testing"

	jobstore "github.com/kestrelworks/backoffice/internal/app/store/jobs"
	"github.com/kestrelworks/backoffice/internal/app/system/indexes"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"github.com/kestrelworks/backoffice/internal/testutil"
)

func setupStore(t *testing.T) *jobstore.Store {
	t.Helper()
	db := testutil.SetupTestDB(t)
	if err := indexes.EnsureAll(context.Background(), db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	return jobstore.New(db)
}

func TestCreate_DuplicateSlug(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if _, err := store.Create(ctx, models.Job{Title: "Backend Engineer", Slug: "backend-engineer"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create(ctx, models.Job{Title: "Another", Slug: "backend-engineer"})
	if !errors.Is(err, jobstore.ErrDuplicateSlug) {
		t.Errorf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestRequirementsFlow(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, models.Job{
		Title:        "Backend Engineer",
		Slug:         "backend-engineer",
		Requirements: []string{"A"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Append(ctx, created.ID, jobstore.FieldRequirements, "B"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	job, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(job.Requirements) != 2 || job.Requirements[0] != "A" || job.Requirements[1] != "B" {
		t.Fatalf("expected [A B], got %v", job.Requirements)
	}

	if err := store.RemoveAt(ctx, created.ID, jobstore.FieldRequirements, 0); err != nil {
		t.Fatalf("RemoveAt failed: %v", err)
	}
	job, err = store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(job.Requirements) != 1 || job.Requirements[0] != "B" {
		t.Errorf("expected [B], got %v", job.Requirements)
	}
}

func TestUpdate_ChangesSurvive(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, models.Job{Title: "Old Title", Slug: "role"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	created.Title = "New Title"
	updated, err := store.Update(ctx, created.ID, created)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "New Title" {
		t.Errorf("expected updated title, got %q", updated.Title)
	}
	if updated.Version != created.Version+1 {
		t.Errorf("expected version bump to %d, got %d", created.Version+1, updated.Version)
	}
}
