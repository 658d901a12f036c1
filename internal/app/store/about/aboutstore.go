// internal/app/store/about/aboutstore.go
package aboutstore

import (
	"context"
	"time"

	"github.com/kestrelworks/backoffice/internal/app/store/seqfield"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sequence fields on an about page document. These are the only fields
// the sub-collection routes may touch.
const (
	FieldSections    = "sections"
	FieldOurValues   = "our_values"
	FieldTeamMembers = "team_members"
)

// Store provides access to the about_pages collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new about page store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("about_pages")}
}

func (s *Store) Create(ctx context.Context, p models.AboutPage) (models.AboutPage, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	if p.Sections == nil {
		p.Sections = []models.SectionBlock{}
	}
	if p.OurValues == nil {
		p.OurValues = []models.SectionBlock{}
	}
	if p.TeamMembers == nil {
		p.TeamMembers = []models.TeamMember{}
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Version = 1
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.AboutPage{}, err
	}
	return p, nil
}

func (s *Store) List(ctx context.Context) ([]models.AboutPage, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	pages := []models.AboutPage{}
	if err := cur.All(ctx, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.AboutPage, error) {
	var p models.AboutPage
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.AboutPage{}, err
	}
	return p, nil
}

// Update replaces the page content wholesale. When the incoming document
// carries a version, the write is rejected if the stored version moved on
// (seqfield.ErrStaleDocument); a zero version skips the check.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p models.AboutPage) (models.AboutPage, error) {
	filter := bson.M{"_id": id}
	if p.Version > 0 {
		filter["version"] = p.Version
	}
	update := bson.M{
		"$set": bson.M{
			"sections":     p.Sections,
			"our_values":   p.OurValues,
			"team_members": p.TeamMembers,
			"updated_at":   time.Now().UTC(),
		},
		"$inc": bson.M{"version": 1},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.AboutPage
	err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		n, cntErr := s.c.CountDocuments(ctx, bson.M{"_id": id})
		if cntErr != nil {
			return models.AboutPage{}, cntErr
		}
		if n > 0 {
			return models.AboutPage{}, seqfield.ErrStaleDocument
		}
		return models.AboutPage{}, mongo.ErrNoDocuments
	}
	if err != nil {
		return models.AboutPage{}, err
	}
	return updated, nil
}

// Delete removes a page by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Append pushes item onto one of the page's sequences.
func (s *Store) Append(ctx context.Context, id primitive.ObjectID, field string, item any) error {
	return seqfield.Append(ctx, s.c, id, field, item)
}

// ReplaceAt overwrites one element of a sequence in place.
func (s *Store) ReplaceAt(ctx context.Context, id primitive.ObjectID, field string, idx int, item any) error {
	return seqfield.ReplaceAt(ctx, s.c, id, field, idx, item)
}

// RemoveAt splices one element out of a sequence.
func (s *Store) RemoveAt(ctx context.Context, id primitive.ObjectID, field string, idx int) error {
	return seqfield.RemoveAt(ctx, s.c, id, field, idx)
}
