// internal/app/features/jobs/routes.go
package jobs

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Applications come before /{id} so chi matches the static segment.
	r.Get("/applications", h.ServeAllApplications)
	r.Post("/applications/{applicationID}/reply", h.HandleReply)

	// CRUD
	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	r.Get("/{id}/applications", h.ServeJobApplications)
	r.Post("/{id}/applications", h.HandleApply)

	// Index-addressed sub-collections.
	r.Post("/{id}/requirement", h.HandleAppendRequirement)
	r.Patch("/{id}/requirement/{idx}", h.HandleReplaceRequirement)
	r.Delete("/{id}/requirement/{idx}", h.HandleRemoveRequirement)

	r.Post("/{id}/responsibility", h.HandleAppendResponsibility)
	r.Patch("/{id}/responsibility/{idx}", h.HandleReplaceResponsibility)
	r.Delete("/{id}/responsibility/{idx}", h.HandleRemoveResponsibility)

	r.Post("/{id}/benefit", h.HandleAppendBenefit)
	r.Patch("/{id}/benefit/{idx}", h.HandleReplaceBenefit)
	r.Delete("/{id}/benefit/{idx}", h.HandleRemoveBenefit)

	return r
}
