package submissionstore_test

import (
	"context"
	"testing"
	"time"

	submissionstore "github.com/kestrelworks/backoffice/internal/app/store/submissions"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"github.com/kestrelworks/backoffice/internal/testutil"
)

func TestList_NewestFirstAndStateFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := submissionstore.New(db)
	ctx := context.Background()

	older, err := store.Create(ctx, models.ContactSubmission{Name: "First", Email: "first@example.com", Message: "hi"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	// Mongo stores timestamps at millisecond precision; keep the two
	// submissions in distinct instants.
	time.Sleep(5 * time.Millisecond)
	newer, err := store.Create(ctx, models.ContactSubmission{Name: "Second", Email: "second@example.com", Message: "hello"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(list))
	}
	if list[0].ID != newer.ID || list[1].ID != older.ID {
		t.Errorf("expected newest first, got %q then %q", list[0].Name, list[1].Name)
	}

	if err := store.MarkReplyPending(ctx, older.ID, "dispatch-1", "On it"); err != nil {
		t.Fatalf("MarkReplyPending failed: %v", err)
	}
	pending, err := store.List(ctx, models.ReplyStatePending)
	if err != nil {
		t.Fatalf("List pending failed: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != older.ID {
		t.Errorf("expected only the pending submission, got %d rows", len(pending))
	}
}
