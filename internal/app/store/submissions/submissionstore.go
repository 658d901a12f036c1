// internal/app/store/submissions/submissionstore.go
package submissionstore

import (
	"context"
	"time"

	"github.com/kestrelworks/backoffice/internal/app/store/replymark"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the contact_submissions collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_submissions")}
}

func (s *Store) Create(ctx context.Context, sub models.ContactSubmission) (models.ContactSubmission, error) {
	sub.ID = primitive.NewObjectID()
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	sub.Replied = false
	sub.Version = 1
	if _, err := s.c.InsertOne(ctx, sub); err != nil {
		return models.ContactSubmission{}, err
	}
	return sub, nil
}

// List returns submissions newest first. An optional replyState narrows
// to one dispatch state; "pending" is the reconciliation view.
func (s *Store) List(ctx context.Context, replyState string) ([]models.ContactSubmission, error) {
	filter := bson.M{}
	if replyState != "" {
		filter["reply_state"] = replyState
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	subs := []models.ContactSubmission{}
	if err := cur.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.ContactSubmission, error) {
	var sub models.ContactSubmission
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sub); err != nil {
		return models.ContactSubmission{}, err
	}
	return sub, nil
}

// MarkReplyPending records a dispatch attempt before the send.
func (s *Store) MarkReplyPending(ctx context.Context, id primitive.ObjectID, dispatchID, reply string) error {
	return replymark.Pending(ctx, s.c, id, dispatchID, reply)
}

// MarkReplySent confirms the send.
func (s *Store) MarkReplySent(ctx context.Context, id primitive.ObjectID) error {
	return replymark.Sent(ctx, s.c, id)
}

// MarkReplyFailed records a transport failure.
func (s *Store) MarkReplyFailed(ctx context.Context, id primitive.ObjectID) error {
	return replymark.Failed(ctx, s.c, id)
}
