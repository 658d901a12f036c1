// internal/app/store/applications/applicationstore.go
package applicationstore

import (
	"context"
	"time"

	"github.com/kestrelworks/backoffice/internal/app/store/replymark"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the job_applications collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("job_applications")}
}

func (s *Store) Create(ctx context.Context, a models.JobApplication) (models.JobApplication, error) {
	a.ID = primitive.NewObjectID()
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now().UTC()
	}
	a.Replied = false
	a.Version = 1
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.JobApplication{}, err
	}
	return a, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.JobApplication, error) {
	var a models.JobApplication
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return models.JobApplication{}, err
	}
	return a, nil
}

// List returns applications newest first, each joined with the job it
// references (nil when the job has been deleted). An optional replyState
// narrows the result to one dispatch state — "pending" is the
// reconciliation view for replies whose outcome was never recorded.
// A zero jobID means all jobs.
func (s *Store) List(ctx context.Context, jobID primitive.ObjectID, replyState string) ([]models.JobApplicationWithJob, error) {
	match := bson.M{}
	if !jobID.IsZero() {
		match["job_id"] = jobID
	}
	if replyState != "" {
		match["reply_state"] = replyState
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "applied_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "jobs",
			"localField":   "job_id",
			"foreignField": "_id",
			"as":           "job",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$job",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []models.JobApplicationWithJob{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
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
