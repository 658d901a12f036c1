// internal/app/features/about/crud.go
package about

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kestrelworks/backoffice/internal/app/system/httpjson"
	"github.com/kestrelworks/backoffice/internal/app/system/timeouts"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const notFoundMsg = "About entry not found"

// HandleCreate handles POST /api/about.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var page models.AboutPage
	if err := httpjson.Decode(r, &page); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, page)
	if err != nil {
		h.Log.Error("create about page failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}

// ServeList handles GET /api/about.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	pages, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list about pages failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, pages)
}

// ServeGet handles GET /api/about/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid about page id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	page, err := h.Store.GetByID(ctx, id)
	if err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}
	httpjson.Write(w, http.StatusOK, page)
}

// HandleUpdate handles PUT /api/about/{id}. The body replaces the page
// content wholesale; sending the version it was read at turns on the
// stale-write check.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid about page id")
		return
	}

	var page models.AboutPage
	if err := httpjson.Decode(r, &page); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.Update(ctx, id, page)
	if err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/about/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid about page id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete about page failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, notFoundMsg)
		return
	}
	httpjson.Message(w, "About entry deleted")
}
