// internal/app/features/jobs/crud.go
package jobs

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	jobstore "github.com/kestrelworks/backoffice/internal/app/store/jobs"
	"github.com/kestrelworks/backoffice/internal/app/system/httpjson"
	"github.com/kestrelworks/backoffice/internal/app/system/timeouts"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const notFoundMsg = "Job not found"

// HandleCreate handles POST /api/jobs.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var job models.Job
	if err := httpjson.Decode(r, &job); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Jobs.Create(ctx, job)
	if err != nil {
		if errors.Is(err, jobstore.ErrDuplicateSlug) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("create job failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}

// ServeList handles GET /api/jobs.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Jobs.List(ctx)
	if err != nil {
		h.Log.Error("list jobs failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, list)
}

// ServeGet handles GET /api/jobs/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	job, err := h.Jobs.GetByID(ctx, id)
	if err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}
	httpjson.Write(w, http.StatusOK, job)
}

// HandleUpdate handles PUT /api/jobs/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	var job models.Job
	if err := httpjson.Decode(r, &job); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Jobs.Update(ctx, id, job)
	if err != nil {
		if errors.Is(err, jobstore.ErrDuplicateSlug) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/jobs/{id}. Applications referencing
// the job are left in place.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Jobs.Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete job failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, notFoundMsg)
		return
	}
	httpjson.Message(w, "Job deleted")
}
