// internal/app/store/blogposts/blogstore.go
package blogstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/kestrelworks/backoffice/internal/app/store/seqfield"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrDuplicateSlug = errors.New("a blog post with this slug already exists")

// contentPolicy strips anything the dashboard's editor should not emit
// from block text before it is stored. Sanitize-on-write: reads serve the
// stored HTML as-is.
var contentPolicy = bluemonday.UGCPolicy()

// Store provides access to the blog_posts collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("blog_posts")}
}

func sanitizeBlocks(blocks []models.ContentBlock) []models.ContentBlock {
	if blocks == nil {
		return []models.ContentBlock{}
	}
	out := make([]models.ContentBlock, len(blocks))
	for i, b := range blocks {
		b.Text = contentPolicy.Sanitize(b.Text)
		out[i] = b
	}
	return out
}

func (s *Store) Create(ctx context.Context, p models.BlogPost) (models.BlogPost, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.Content = sanitizeBlocks(p.Content)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	p.Version = 1
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if wafflemongo.IsDup(err) {
			return models.BlogPost{}, ErrDuplicateSlug
		}
		return models.BlogPost{}, err
	}
	return p, nil
}

// List returns posts newest first.
func (s *Store) List(ctx context.Context) ([]models.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []models.BlogPost{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.BlogPost, error) {
	var p models.BlogPost
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.BlogPost{}, err
	}
	return p, nil
}

func (s *Store) GetBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	var p models.BlogPost
	if err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&p); err != nil {
		return models.BlogPost{}, err
	}
	return p, nil
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p models.BlogPost) (models.BlogPost, error) {
	filter := bson.M{"_id": id}
	if p.Version > 0 {
		filter["version"] = p.Version
	}
	update := bson.M{
		"$set": bson.M{
			"title":       p.Title,
			"slug":        p.Slug,
			"author":      p.Author,
			"summary":     p.Summary,
			"cover_image": p.CoverImage,
			"content":     sanitizeBlocks(p.Content),
			"updated_at":  time.Now().UTC(),
		},
		"$inc": bson.M{"version": 1},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.BlogPost
	err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		n, cntErr := s.c.CountDocuments(ctx, bson.M{"_id": id})
		if cntErr != nil {
			return models.BlogPost{}, cntErr
		}
		if n > 0 {
			return models.BlogPost{}, seqfield.ErrStaleDocument
		}
		return models.BlogPost{}, mongo.ErrNoDocuments
	}
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.BlogPost{}, ErrDuplicateSlug
		}
		return models.BlogPost{}, err
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
