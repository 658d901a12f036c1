// internal/app/store/jobs/jobstore.go
package jobstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/kestrelworks/backoffice/internal/app/store/seqfield"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sequence fields on a job document.
const (
	FieldRequirements     = "requirements"
	FieldResponsibilities = "responsibilities"
	FieldBenefits         = "benefits"
)

var ErrDuplicateSlug = errors.New("a job with this slug already exists")

// Store provides access to the jobs collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("jobs")}
}

func (s *Store) Create(ctx context.Context, j models.Job) (models.Job, error) {
	now := time.Now().UTC()
	j.ID = primitive.NewObjectID()
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	if j.Responsibilities == nil {
		j.Responsibilities = []string{}
	}
	if j.Benefits == nil {
		j.Benefits = []string{}
	}
	j.CreatedAt = now
	j.UpdatedAt = now
	j.Version = 1
	if _, err := s.c.InsertOne(ctx, j); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Job{}, ErrDuplicateSlug
		}
		return models.Job{}, err
	}
	return j, nil
}

func (s *Store) List(ctx context.Context) ([]models.Job, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	jobs := []models.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Job, error) {
	var j models.Job
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&j); err != nil {
		return models.Job{}, err
	}
	return j, nil
}

// Update replaces the job's fields wholesale, version-checked when the
// incoming document carries a version.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, j models.Job) (models.Job, error) {
	filter := bson.M{"_id": id}
	if j.Version > 0 {
		filter["version"] = j.Version
	}
	update := bson.M{
		"$set": bson.M{
			"title":             j.Title,
			"slug":              j.Slug,
			"department":        j.Department,
			"location":          j.Location,
			"type":              j.Type,
			"experience":        j.Experience,
			"gender_preference": j.GenderPreference,
			"salary":            j.Salary,
			"posted_date":       j.PostedDate,
			"description":       j.Description,
			"requirements":      j.Requirements,
			"responsibilities":  j.Responsibilities,
			"benefits":          j.Benefits,
			"updated_at":        time.Now().UTC(),
		},
		"$inc": bson.M{"version": 1},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Job
	err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		n, cntErr := s.c.CountDocuments(ctx, bson.M{"_id": id})
		if cntErr != nil {
			return models.Job{}, cntErr
		}
		if n > 0 {
			return models.Job{}, seqfield.ErrStaleDocument
		}
		return models.Job{}, mongo.ErrNoDocuments
	}
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Job{}, ErrDuplicateSlug
		}
		return models.Job{}, err
	}
	return updated, nil
}

// Delete removes a job by ID. Applications referencing the job are left
// in place; the reference is informational only.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) Append(ctx context.Context, id primitive.ObjectID, field string, item any) error {
	return seqfield.Append(ctx, s.c, id, field, item)
}

func (s *Store) ReplaceAt(ctx context.Context, id primitive.ObjectID, field string, idx int, item any) error {
	return seqfield.ReplaceAt(ctx, s.c, id, field, idx, item)
}

func (s *Store) RemoveAt(ctx context.Context, id primitive.ObjectID, field string, idx int) error {
	return seqfield.RemoveAt(ctx, s.c, id, field, idx)
}
