// internal/app/features/siteconfig/handler.go
package siteconfig

import (
	siteconfigstore "github.com/kestrelworks/backoffice/internal/app/store/siteconfig"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves site-wide configuration, including the support mailbox
// used as the outbound identity for replies.
type Handler struct {
	Store *siteconfigstore.Store
	Log   *zap.Logger
}

// NewHandler wires the site-config feature against the given database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Store: siteconfigstore.New(db), Log: logger}
}
