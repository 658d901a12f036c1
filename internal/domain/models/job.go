// internal/domain/models/job.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job is a published job opening on the careers page.
//
// Requirements, responsibilities and benefits are ordered lists the admin
// dashboard edits by index (append / replace-at / remove-at), the same
// protocol the about page uses for its sections.
type Job struct {
	ID primitive.ObjectID `bson:"_id" json:"_id"`

	Title            string `bson:"title" json:"title"`
	Slug             string `bson:"slug" json:"slug"`
	Department       string `bson:"department" json:"department"`
	Location         string `bson:"location" json:"location"`
	Type             string `bson:"type" json:"type"` // e.g. "Full-time", "Contract"
	Experience       string `bson:"experience" json:"experience"`
	GenderPreference string `bson:"gender_preference,omitempty" json:"genderPreference,omitempty"`
	Salary           string `bson:"salary" json:"salary"`
	PostedDate       string `bson:"posted_date" json:"postedDate"`
	Description      string `bson:"description" json:"description"`

	Requirements     []string `bson:"requirements" json:"requirements"`
	Responsibilities []string `bson:"responsibilities" json:"responsibilities"`
	Benefits         []string `bson:"benefits" json:"benefits"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
	Version   int64     `bson:"version" json:"version"`
}
