// internal/domain/models/blogpost.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is one article on the site's blog. Content is an ordered list
// of blocks, each an image, a passage of rich text, or both.
type BlogPost struct {
	ID primitive.ObjectID `bson:"_id" json:"_id"`

	Title      string         `bson:"title" json:"title"`
	Slug       string         `bson:"slug" json:"slug"`
	Author     string         `bson:"author" json:"author"`
	Summary    string         `bson:"summary" json:"summary"`
	CoverImage string         `bson:"cover_image" json:"coverImage"`
	Content    []ContentBlock `bson:"content" json:"content"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
	Version   int64     `bson:"version" json:"version"`
}

// ContentBlock is one block of blog content. Text may carry HTML from the
// dashboard's editor; it is sanitized on write, not on read.
type ContentBlock struct {
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Text  string `bson:"text,omitempty" json:"text,omitempty"`
}
