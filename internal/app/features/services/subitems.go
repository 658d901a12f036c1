// internal/app/features/services/subitems.go
package services

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	servicestore "github.com/kestrelworks/backoffice/internal/app/store/services"
	"github.com/kestrelworks/backoffice/internal/app/system/httpjson"
	"github.com/kestrelworks/backoffice/internal/app/system/timeouts"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stringItem is the body for the feature/technology/benefit routes.
type stringItem struct {
	Item string `json:"item"`
}

func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id primitive.ObjectID) error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := op(ctx, id); err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}

	svc, err := h.Store.GetByID(ctx, id)
	if err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}
	httpjson.Write(w, http.StatusOK, svc)
}

func index(r *http.Request) (int, bool) {
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

func (h *Handler) appendItem(w http.ResponseWriter, r *http.Request, field string) {
	var body stringItem
	if err := httpjson.Decode(r, &body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Store.Append(ctx, id, field, body.Item)
	})
}

func (h *Handler) replaceItem(w http.ResponseWriter, r *http.Request, field string) {
	idx, ok := index(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "Invalid index")
		return
	}
	var body stringItem
	if err := httpjson.Decode(r, &body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Store.ReplaceAt(ctx, id, field, idx, body.Item)
	})
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request, field string) {
	idx, ok := index(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "Invalid index")
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Store.RemoveAt(ctx, id, field, idx)
	})
}

// HandleAppendFeature handles POST /api/services/{id}/feature.
func (h *Handler) HandleAppendFeature(w http.ResponseWriter, r *http.Request) {
	h.appendItem(w, r, servicestore.FieldFeatures)
}

// HandleReplaceFeature handles PATCH /api/services/{id}/feature/{idx}.
func (h *Handler) HandleReplaceFeature(w http.ResponseWriter, r *http.Request) {
	h.replaceItem(w, r, servicestore.FieldFeatures)
}

// HandleRemoveFeature handles DELETE /api/services/{id}/feature/{idx}.
func (h *Handler) HandleRemoveFeature(w http.ResponseWriter, r *http.Request) {
	h.removeItem(w, r, servicestore.FieldFeatures)
}

// HandleAppendTechnology handles POST /api/services/{id}/technology.
func (h *Handler) HandleAppendTechnology(w http.ResponseWriter, r *http.Request) {
	h.appendItem(w, r, servicestore.FieldTechnologies)
}

// HandleReplaceTechnology handles PATCH /api/services/{id}/technology/{idx}.
func (h *Handler) HandleReplaceTechnology(w http.ResponseWriter, r *http.Request) {
	h.replaceItem(w, r, servicestore.FieldTechnologies)
}

// HandleRemoveTechnology handles DELETE /api/services/{id}/technology/{idx}.
func (h *Handler) HandleRemoveTechnology(w http.ResponseWriter, r *http.Request) {
	h.removeItem(w, r, servicestore.FieldTechnologies)
}

// HandleAppendBenefit handles POST /api/services/{id}/benefit.
func (h *Handler) HandleAppendBenefit(w http.ResponseWriter, r *http.Request) {
	h.appendItem(w, r, servicestore.FieldBenefits)
}

// HandleReplaceBenefit handles PATCH /api/services/{id}/benefit/{idx}.
func (h *Handler) HandleReplaceBenefit(w http.ResponseWriter, r *http.Request) {
	h.replaceItem(w, r, servicestore.FieldBenefits)
}

// HandleRemoveBenefit handles DELETE /api/services/{id}/benefit/{idx}.
func (h *Handler) HandleRemoveBenefit(w http.ResponseWriter, r *http.Request) {
	h.removeItem(w, r, servicestore.FieldBenefits)
}

// HandleAppendSubService handles POST /api/services/{id}/subservice. Sub
// services are structured, unlike the string triads above.
func (h *Handler) HandleAppendSubService(w http.ResponseWriter, r *http.Request) {
	var item models.SubService
	if err := httpjson.Decode(r, &item); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Store.Append(ctx, id, servicestore.FieldSubServices, item)
	})
}

// HandleReplaceSubService handles PATCH /api/services/{id}/subservice/{idx}.
// The element is replaced whole; callers resend the full sub-service.
func (h *Handler) HandleReplaceSubService(w http.ResponseWriter, r *http.Request) {
	idx, ok := index(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "Invalid index")
		return
	}
	var item models.SubService
	if err := httpjson.Decode(r, &item); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Store.ReplaceAt(ctx, id, servicestore.FieldSubServices, idx, item)
	})
}

// HandleRemoveSubService handles DELETE /api/services/{id}/subservice/{idx}.
func (h *Handler) HandleRemoveSubService(w http.ResponseWriter, r *http.Request) {
	idx, ok := index(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "Invalid index")
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Store.RemoveAt(ctx, id, servicestore.FieldSubServices, idx)
	})
}
