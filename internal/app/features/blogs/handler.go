// internal/app/features/blogs/handler.go
package blogs

import (
	blogstore "github.com/kestrelworks/backoffice/internal/app/store/blogposts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves blog posts.
type Handler struct {
	Store *blogstore.Store
	Log   *zap.Logger
}

// NewHandler wires the blogs feature against the given database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Store: blogstore.New(db), Log: logger}
}
