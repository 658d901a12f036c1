// internal/app/features/about/handler.go
package about

import (
	aboutstore "github.com/kestrelworks/backoffice/internal/app/store/about"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the about feature: CRUD
// on about pages plus the index-addressed section/member/value routes.
type Handler struct {
	Store *aboutstore.Store
	Log   *zap.Logger
}

// NewHandler constructs an about Handler. It is typically called from the
// bootstrap BuildHandler function, where the application's DB and logger
// are already initialized.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: aboutstore.New(db),
		Log:   logger,
	}
}
