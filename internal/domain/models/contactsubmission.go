// internal/domain/models/contactsubmission.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactSubmission is one message from the public contact form.
type ContactSubmission struct {
	ID primitive.ObjectID `bson:"_id" json:"_id"`

	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Company string `bson:"company,omitempty" json:"company,omitempty"`
	Service string `bson:"service,omitempty" json:"service,omitempty"`
	Message string `bson:"message" json:"message"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`

	Reply      string     `bson:"reply,omitempty" json:"reply,omitempty"`
	Replied    bool       `bson:"replied" json:"replied"`
	ReplyState string     `bson:"reply_state,omitempty" json:"replyState,omitempty"`
	DispatchID string     `bson:"dispatch_id,omitempty" json:"dispatchId,omitempty"`
	RepliedAt  *time.Time `bson:"replied_at,omitempty" json:"repliedAt,omitempty"`

	Version int64 `bson:"version" json:"version"`
}
