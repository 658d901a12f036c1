// internal/app/store/services/servicestore.go
package servicestore

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

// Sequence fields on a service document. SubServices holds objects, the
// rest are strings; the protocol treats them the same way.
const (
	FieldFeatures     = "features"
	FieldTechnologies = "technologies"
	FieldBenefits     = "benefits"
	FieldSubServices  = "sub_services"
)

var ErrDuplicateSlug = errors.New("a service with this slug already exists")

// Store provides access to the services collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("services")}
}

func (s *Store) Create(ctx context.Context, svc models.Service) (models.Service, error) {
	now := time.Now().UTC()
	svc.ID = primitive.NewObjectID()
	if svc.Features == nil {
		svc.Features = []string{}
	}
	if svc.Technologies == nil {
		svc.Technologies = []string{}
	}
	if svc.Benefits == nil {
		svc.Benefits = []string{}
	}
	if svc.SubServices == nil {
		svc.SubServices = []models.SubService{}
	}
	svc.CreatedAt = now
	svc.UpdatedAt = now
	svc.Version = 1
	if _, err := s.c.InsertOne(ctx, svc); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Service{}, ErrDuplicateSlug
		}
		return models.Service{}, err
	}
	return svc, nil
}

func (s *Store) List(ctx context.Context) ([]models.Service, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	services := []models.Service{}
	if err := cur.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Service, error) {
	var svc models.Service
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&svc); err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, svc models.Service) (models.Service, error) {
	filter := bson.M{"_id": id}
	if svc.Version > 0 {
		filter["version"] = svc.Version
	}
	update := bson.M{
		"$set": bson.M{
			"title":             svc.Title,
			"slug":              svc.Slug,
			"short_description": svc.ShortDescription,
			"full_description":  svc.FullDescription,
			"features":          svc.Features,
			"technologies":      svc.Technologies,
			"benefits":          svc.Benefits,
			"sub_services":      svc.SubServices,
			"updated_at":        time.Now().UTC(),
		},
		"$inc": bson.M{"version": 1},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Service
	err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		n, cntErr := s.c.CountDocuments(ctx, bson.M{"_id": id})
		if cntErr != nil {
			return models.Service{}, cntErr
		}
		if n > 0 {
			return models.Service{}, seqfield.ErrStaleDocument
		}
		return models.Service{}, mongo.ErrNoDocuments
	}
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Service{}, ErrDuplicateSlug
		}
		return models.Service{}, err
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

func (s *Store) Append(ctx context.Context, id primitive.ObjectID, field string, item any) error {
	return seqfield.Append(ctx, s.c, id, field, item)
}

func (s *Store) ReplaceAt(ctx context.Context, id primitive.ObjectID, field string, idx int, item any) error {
	return seqfield.ReplaceAt(ctx, s.c, id, field, idx, item)
}

func (s *Store) RemoveAt(ctx context.Context, id primitive.ObjectID, field string, idx int) error {
	return seqfield.RemoveAt(ctx, s.c, id, field, idx)
}
