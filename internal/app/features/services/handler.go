// internal/app/features/services/handler.go
package services

import (
	servicestore "github.com/kestrelworks/backoffice/internal/app/store/services"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the service catalog.
type Handler struct {
	Store *servicestore.Store
	Log   *zap.Logger
}

// NewHandler wires the services feature against the given database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Store: servicestore.New(db), Log: logger}
}
