// internal/app/features/blogs/crud.go
package blogs

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	blogstore "github.com/kestrelworks/backoffice/internal/app/store/blogposts"
	"github.com/kestrelworks/backoffice/internal/app/system/httpjson"
	"github.com/kestrelworks/backoffice/internal/app/system/timeouts"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const notFoundMsg = "Blog not found"

// HandleCreate handles POST /api/blogs. Content blocks are sanitized in
// the store before the post is written.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var post models.BlogPost
	if err := httpjson.Decode(r, &post); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, post)
	if err != nil {
		if errors.Is(err, blogstore.ErrDuplicateSlug) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("create blog post failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}

// ServeList handles GET /api/blogs, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list blog posts failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, list)
}

// ServeBySlug handles GET /api/blogs/slug/{slug}.
func (h *Handler) ServeBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	post, err := h.Store.GetBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}
	httpjson.Write(w, http.StatusOK, post)
}

// ServeGet handles GET /api/blogs/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid blog id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	post, err := h.Store.GetByID(ctx, id)
	if err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}
	httpjson.Write(w, http.StatusOK, post)
}

// HandleUpdate handles PUT /api/blogs/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid blog id")
		return
	}

	var post models.BlogPost
	if err := httpjson.Decode(r, &post); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.Update(ctx, id, post)
	if err != nil {
		if errors.Is(err, blogstore.ErrDuplicateSlug) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/blogs/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid blog id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete blog post failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, notFoundMsg)
		return
	}
	httpjson.Message(w, "Blog deleted")
}
