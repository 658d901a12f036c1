// internal/app/features/about/routes.go
package about

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

	// Index-addressed sub-collections: sections, team members, values.
	// POST appends, PATCH replaces in place, DELETE splices out.
	r.Post("/{id}/section", h.HandleAppendSection)
	r.Patch("/{id}/section/{idx}", h.HandleReplaceSection)
	r.Delete("/{id}/section/{idx}", h.HandleRemoveSection)

	r.Post("/{id}/member", h.HandleAppendMember)
	r.Patch("/{id}/member/{idx}", h.HandleReplaceMember)
	r.Delete("/{id}/member/{idx}", h.HandleRemoveMember)

	r.Post("/{id}/value", h.HandleAppendValue)
	r.Patch("/{id}/value/{idx}", h.HandleReplaceValue)
	r.Delete("/{id}/value/{idx}", h.HandleRemoveValue)

	return r
}
