// internal/app/features/siteconfig/routes.go
package siteconfig

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	// Support mailbox used as the outbound reply identity.
	r.Post("/{id}/support-email", h.HandleSetSupportEmail)
	r.Delete("/{id}/support-email", h.HandleClearSupportEmail)

	return r
}
