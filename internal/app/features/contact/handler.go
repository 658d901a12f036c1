// internal/app/features/contact/handler.go
package contact

import (
	submissionstore "github.com/kestrelworks/backoffice/internal/app/store/submissions"
	"github.com/kestrelworks/backoffice/internal/app/system/replies"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves contact submissions and their replies.
type Handler struct {
	Store      *submissionstore.Store
	Dispatcher *replies.Dispatcher
	Identity   *replies.IdentityResolver
	Log        *zap.Logger
}

// NewHandler wires the contact feature against the given database.
func NewHandler(db *mongo.Database, dispatcher *replies.Dispatcher, identity *replies.IdentityResolver, logger *zap.Logger) *Handler {
	return &Handler{
		Store:      submissionstore.New(db),
		Dispatcher: dispatcher,
		Identity:   identity,
		Log:        logger,
	}
}
