// internal/app/features/services/routes.go
package services

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// CRUD
	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	// Index-addressed sub-collections.
	r.Post("/{id}/feature", h.HandleAppendFeature)
	r.Patch("/{id}/feature/{idx}", h.HandleReplaceFeature)
	r.Delete("/{id}/feature/{idx}", h.HandleRemoveFeature)

	r.Post("/{id}/technology", h.HandleAppendTechnology)
	r.Patch("/{id}/technology/{idx}", h.HandleReplaceTechnology)
	r.Delete("/{id}/technology/{idx}", h.HandleRemoveTechnology)

	r.Post("/{id}/benefit", h.HandleAppendBenefit)
	r.Patch("/{id}/benefit/{idx}", h.HandleReplaceBenefit)
	r.Delete("/{id}/benefit/{idx}", h.HandleRemoveBenefit)

	r.Post("/{id}/subservice", h.HandleAppendSubService)
	r.Patch("/{id}/subservice/{idx}", h.HandleReplaceSubService)
	r.Delete("/{id}/subservice/{idx}", h.HandleRemoveSubService)

	return r
}
