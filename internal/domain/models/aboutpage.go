// internal/domain/models/aboutpage.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AboutPage is the editable "about us" document for the public site.
//
// The page is built from three ordered sequences that the admin dashboard
// edits by index: narrative sections, company values, and team members.
// The site expects a single about page, but nothing in the store enforces
// that; "the" about page is simply the first document.
type AboutPage struct {
	ID primitive.ObjectID `bson:"_id" json:"_id"`

	Sections    []SectionBlock `bson:"sections" json:"sections"`
	OurValues   []SectionBlock `bson:"our_values" json:"ourValues"`
	TeamMembers []TeamMember   `bson:"team_members" json:"teamMembers"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`

	// Version is the optimistic concurrency token. Every write increments
	// it and filters on the value it read, so a stale read-modify-write
	// cycle fails instead of silently overwriting a concurrent edit.
	Version int64 `bson:"version" json:"version"`
}

// SectionBlock is one titled block of page content. Used for both the
// about page's sections and its "our values" list.
type SectionBlock struct {
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"`
}

// TeamMember is one entry in the about page's team roster.
type TeamMember struct {
	Name string `bson:"name" json:"name"`
	Role string `bson:"role" json:"role"`
	Bio  string `bson:"bio" json:"bio"`
}
