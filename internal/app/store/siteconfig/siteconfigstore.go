// internal/app/store/siteconfig/siteconfigstore.go
package siteconfigstore

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

// Store provides access to the site_config collection.
//
// The site expects a single config document but the store does not
// enforce it; First returns whichever document the store yields first,
// which is what reply dispatch uses to resolve the support mailbox.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("site_config")}
}

func (s *Store) Create(ctx context.Context, cfg models.SiteConfig) (models.SiteConfig, error) {
	now := time.Now().UTC()
	cfg.ID = primitive.NewObjectID()
	if cfg.ContactEmails == nil {
		cfg.ContactEmails = []string{}
	}
	if cfg.ContactPhones == nil {
		cfg.ContactPhones = []string{}
	}
	cfg.CreatedAt = now
	cfg.UpdatedAt = now
	cfg.Version = 1
	if _, err := s.c.InsertOne(ctx, cfg); err != nil {
		return models.SiteConfig{}, err
	}
	return cfg, nil
}

func (s *Store) List(ctx context.Context) ([]models.SiteConfig, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	configs := []models.SiteConfig{}
	if err := cur.All(ctx, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.SiteConfig, error) {
	var cfg models.SiteConfig
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cfg); err != nil {
		return models.SiteConfig{}, err
	}
	return cfg, nil
}

// First returns the first config document in store order, or
// mongo.ErrNoDocuments when none exists.
func (s *Store) First(ctx context.Context) (models.SiteConfig, error) {
	var cfg models.SiteConfig
	if err := s.c.FindOne(ctx, bson.M{}).Decode(&cfg); err != nil {
		return models.SiteConfig{}, err
	}
	return cfg, nil
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, cfg models.SiteConfig) (models.SiteConfig, error) {
	filter := bson.M{"_id": id}
	if cfg.Version > 0 {
		filter["version"] = cfg.Version
	}
	update := bson.M{
		"$set": bson.M{
			"site_name":       cfg.SiteName,
			"logo_url":        cfg.LogoURL,
			"contact_emails":  cfg.ContactEmails,
			"contact_phones":  cfg.ContactPhones,
			"contact_address": cfg.ContactAddress,
			"updated_at":      time.Now().UTC(),
		},
		"$inc": bson.M{"version": 1},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.SiteConfig
	err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		n, cntErr := s.c.CountDocuments(ctx, bson.M{"_id": id})
		if cntErr != nil {
			return models.SiteConfig{}, cntErr
		}
		if n > 0 {
			return models.SiteConfig{}, seqfield.ErrStaleDocument
		}
		return models.SiteConfig{}, mongo.ErrNoDocuments
	}
	if err != nil {
		return models.SiteConfig{}, err
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

// SetSupportIdentity stores the per-site outbound mail identity. Both
// fields are set together; validation happens at the handler.
func (s *Store) SetSupportIdentity(ctx context.Context, id primitive.ObjectID, email, appPassword string) (models.SiteConfig, error) {
	update := bson.M{
		"$set": bson.M{
			"support_email":        email,
			"support_app_password": appPassword,
			"updated_at":           time.Now().UTC(),
		},
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.SiteConfig
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return models.SiteConfig{}, err
	}
	return updated, nil
}

// ClearSupportIdentity removes the per-site outbound mail identity, so
// reply dispatch falls back to the process default.
func (s *Store) ClearSupportIdentity(ctx context.Context, id primitive.ObjectID) (models.SiteConfig, error) {
	update := bson.M{
		"$unset": bson.M{
			"support_email":        "",
			"support_app_password": "",
		},
		"$set": bson.M{"updated_at": time.Now().UTC()},
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.SiteConfig
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return models.SiteConfig{}, err
	}
	return updated, nil
}
