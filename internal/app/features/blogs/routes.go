// internal/app/features/blogs/routes.go
package blogs

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)
	// The public site links posts by slug; /slug is static so it wins
	// over /{id}.
	r.Get("/slug/{slug}", h.ServeBySlug)
	r.Get("/{id}", h.ServeGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
