// internal/app/features/siteconfig/crud.go
package siteconfig

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kestrelworks/backoffice/internal/app/system/httpjson"
	"github.com/kestrelworks/backoffice/internal/app/system/inputval"
	"github.com/kestrelworks/backoffice/internal/app/system/timeouts"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const notFoundMsg = "Site config not found"

// HandleCreate handles POST /api/site-config. The site expects a single
// config document but nothing enforces it.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var cfg models.SiteConfig
	if err := httpjson.Decode(r, &cfg); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, cfg)
	if err != nil {
		h.Log.Error("create site config failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}

// ServeList handles GET /api/site-config.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list site configs failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, list)
}

// ServeGet handles GET /api/site-config/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid site config id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cfg, err := h.Store.GetByID(ctx, id)
	if err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}
	httpjson.Write(w, http.StatusOK, cfg)
}

// HandleUpdate handles PUT /api/site-config/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid site config id")
		return
	}

	var cfg models.SiteConfig
	if err := httpjson.Decode(r, &cfg); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.Update(ctx, id, cfg)
	if err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/site-config/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid site config id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete site config failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, notFoundMsg)
		return
	}
	httpjson.Message(w, "Site config deleted")
}

// HandleSetSupportEmail handles POST /api/site-config/{id}/support-email.
// Both fields travel together; a partial pair is rejected.
func (h *Handler) HandleSetSupportEmail(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid site config id")
		return
	}

	var body struct {
		SupportEmail       string `json:"supportEmail"`
		SupportAppPassword string `json:"supportAppPassword"`
	}
	if err := httpjson.Decode(r, &body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.SupportEmail == "" || body.SupportAppPassword == "" {
		httpjson.Error(w, http.StatusBadRequest, "Support email and app password are required.")
		return
	}
	if !inputval.ValidEmail(body.SupportEmail) {
		httpjson.Error(w, http.StatusBadRequest, "Invalid email format.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Store.SetSupportIdentity(ctx, id, body.SupportEmail, body.SupportAppPassword)
	if err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

// HandleClearSupportEmail handles DELETE /api/site-config/{id}/support-email.
// Reply dispatch falls back to the process default identity afterward.
func (h *Handler) HandleClearSupportEmail(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid site config id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Store.ClearSupportIdentity(ctx, id)
	if err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}
