package seqfield_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kestrelworks/backoffice/internal/app/store/seqfield"
	"github.com/kestrelworks/backoffice/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func seedParent(t *testing.T, c *mongo.Collection, items ...any) primitive.ObjectID {
	t.Helper()
	id := primitive.NewObjectID()
	_, err := c.InsertOne(context.Background(), bson.M{
		"_id":     id,
		"items":   bson.A(items),
		"version": int64(1),
	})
	if err != nil {
		t.Fatalf("seed parent: %v", err)
	}
	return id
}

func readItems(t *testing.T, c *mongo.Collection, id primitive.ObjectID) []string {
	t.Helper()
	var doc struct {
		Items   []string `bson:"items"`
		Version int64    `bson:"version"`
	}
	if err := c.FindOne(context.Background(), bson.M{"_id": id}).Decode(&doc); err != nil {
		t.Fatalf("read parent: %v", err)
	}
	return doc.Items
}

func TestAppend_AddsAtTail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	c := db.Collection("parents")
	id := seedParent(t, c, "A", "B")

	if err := seqfield.Append(context.Background(), c, id, "items", "C"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got := readItems(t, c, id)
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestAppend_MissingFieldStartsEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	c := db.Collection("parents")

	id := primitive.NewObjectID()
	if _, err := c.InsertOne(context.Background(), bson.M{"_id": id, "version": int64(1)}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := seqfield.Append(context.Background(), c, id, "items", "A"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	got := readItems(t, c, id)
	if len(got) != 1 || got[0] != "A" {
		t.Errorf("expected [A], got %v", got)
	}
}

func TestReplaceAt_PreservesLength(t *testing.T) {
	db := testutil.SetupTestDB(t)
	c := db.Collection("parents")
	id := seedParent(t, c, "A", "B", "C")

	if err := seqfield.ReplaceAt(context.Background(), c, id, "items", 1, "X"); err != nil {
		t.Fatalf("ReplaceAt failed: %v", err)
	}

	got := readItems(t, c, id)
	if len(got) != 3 {
		t.Fatalf("expected length 3, got %d", len(got))
	}
	if got[0] != "A" || got[1] != "X" || got[2] != "C" {
		t.Errorf("expected [A X C], got %v", got)
	}
}

func TestRemoveAt_PreservesOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	c := db.Collection("parents")
	id := seedParent(t, c, "A", "B", "C")

	if err := seqfield.RemoveAt(context.Background(), c, id, "items", 0); err != nil {
		t.Fatalf("RemoveAt failed: %v", err)
	}

	got := readItems(t, c, id)
	if len(got) != 2 || got[0] != "B" || got[1] != "C" {
		t.Errorf("expected [B C], got %v", got)
	}
}

func TestReplaceAt_OutOfRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	c := db.Collection("parents")
	id := seedParent(t, c, "A")

	err := seqfield.ReplaceAt(context.Background(), c, id, "items", 5, "X")
	if !errors.Is(err, seqfield.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}

	// The parent must be untouched after a rejected operation.
	got := readItems(t, c, id)
	if len(got) != 1 || got[0] != "A" {
		t.Errorf("expected [A] unchanged, got %v", got)
	}
}

func TestRemoveAt_OutOfRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	c := db.Collection("parents")
	id := seedParent(t, c, "A")

	if err := seqfield.RemoveAt(context.Background(), c, id, "items", 1); !errors.Is(err, seqfield.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestOperations_MissingParent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	c := db.Collection("parents")
	id := primitive.NewObjectID()

	if err := seqfield.Append(context.Background(), c, id, "items", "A"); !errors.Is(err, seqfield.ErrNotFound) {
		t.Errorf("Append: expected ErrNotFound, got %v", err)
	}
	if err := seqfield.ReplaceAt(context.Background(), c, id, "items", 0, "A"); !errors.Is(err, seqfield.ErrNotFound) {
		t.Errorf("ReplaceAt: expected ErrNotFound, got %v", err)
	}
	if err := seqfield.RemoveAt(context.Background(), c, id, "items", 0); !errors.Is(err, seqfield.ErrNotFound) {
		t.Errorf("RemoveAt: expected ErrNotFound, got %v", err)
	}
}

func readVersion(t *testing.T, c *mongo.Collection, id primitive.ObjectID) int64 {
	t.Helper()
	var doc struct {
		Version int64 `bson:"version"`
	}
	if err := c.FindOne(context.Background(), bson.M{"_id": id}).Decode(&doc); err != nil {
		t.Fatalf("read parent: %v", err)
	}
	return doc.Version
}

func TestAppend_MissingVersionToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	c := db.Collection("parents")

	// A document inserted outside the API, with no version token at all.
	id := primitive.NewObjectID()
	if _, err := c.InsertOne(context.Background(), bson.M{"_id": id, "items": bson.A{"A"}}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := seqfield.Append(context.Background(), c, id, "items", "B"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	got := readItems(t, c, id)
	if len(got) != 2 || got[1] != "B" {
		t.Errorf("expected [A B], got %v", got)
	}
	if v := readVersion(t, c, id); v != 1 {
		t.Errorf("expected a numeric token after the edit, got %d", v)
	}
}

func TestAppend_MalformedVersionToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	c := db.Collection("parents")

	id := primitive.NewObjectID()
	_, err := c.InsertOne(context.Background(), bson.M{
		"_id":     id,
		"items":   bson.A{"A"},
		"version": "not-a-number",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// The edit must go through and leave behind a usable numeric token.
	if err := seqfield.Append(context.Background(), c, id, "items", "B"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if v := readVersion(t, c, id); v != 1 {
		t.Errorf("expected the token rewritten to 1, got %d", v)
	}
	if err := seqfield.Append(context.Background(), c, id, "items", "C"); err != nil {
		t.Fatalf("second Append failed: %v", err)
	}
	got := readItems(t, c, id)
	if len(got) != 3 {
		t.Errorf("expected [A B C], got %v", got)
	}
}
