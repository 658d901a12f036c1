// internal/app/features/jobs/handler.go
package jobs

import (
	applicationstore "github.com/kestrelworks/backoffice/internal/app/store/applications"
	jobstore "github.com/kestrelworks/backoffice/internal/app/store/jobs"
	"github.com/kestrelworks/backoffice/internal/app/system/replies"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves job postings, their applications, and application
// replies.
type Handler struct {
	Jobs         *jobstore.Store
	Applications *applicationstore.Store
	Dispatcher   *replies.Dispatcher
	Identity     *replies.IdentityResolver
	Log          *zap.Logger
}

// NewHandler wires the jobs feature against the given database.
func NewHandler(db *mongo.Database, dispatcher *replies.Dispatcher, identity *replies.IdentityResolver, logger *zap.Logger) *Handler {
	return &Handler{
		Jobs:         jobstore.New(db),
		Applications: applicationstore.New(db),
		Dispatcher:   dispatcher,
		Identity:     identity,
		Log:          logger,
	}
}
