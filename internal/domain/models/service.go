// internal/domain/models/service.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is one service offering shown on the public site.
type Service struct {
	ID primitive.ObjectID `bson:"_id" json:"_id"`

	Title            string `bson:"title" json:"title"`
	Slug             string `bson:"slug" json:"slug"`
	ShortDescription string `bson:"short_description" json:"shortDescription"`
	FullDescription  string `bson:"full_description" json:"fullDescription"`

	Features     []string     `bson:"features" json:"features"`
	Technologies []string     `bson:"technologies" json:"technologies"`
	Benefits     []string     `bson:"benefits" json:"benefits"`
	SubServices  []SubService `bson:"sub_services" json:"subServices"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
	Version   int64     `bson:"version" json:"version"`
}

// SubService is a nested offering under a Service. Sub-services are
// index-addressed like the scalar lists; replacing one overwrites the
// whole element, so callers resend every field.
type SubService struct {
	Name         string   `bson:"name" json:"name"`
	Description  string   `bson:"description" json:"description"`
	Features     []string `bson:"features" json:"features"`
	Technologies []string `bson:"technologies" json:"technologies"`
}
