// internal/app/features/jobs/subitems.go
package jobs

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	jobstore "github.com/kestrelworks/backoffice/internal/app/store/jobs"
	"github.com/kestrelworks/backoffice/internal/app/system/httpjson"
	"github.com/kestrelworks/backoffice/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stringItem is the body for the requirement/responsibility/benefit
// routes; each element of those sequences is a bare string.
type stringItem struct {
	Item string `json:"item"`
}

func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id primitive.ObjectID) error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := op(ctx, id); err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}

	job, err := h.Jobs.GetByID(ctx, id)
	if err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}
	httpjson.Write(w, http.StatusOK, job)
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
		return h.Jobs.Append(ctx, id, field, body.Item)
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
		return h.Jobs.ReplaceAt(ctx, id, field, idx, body.Item)
	})
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request, field string) {
	idx, ok := index(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "Invalid index")
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Jobs.RemoveAt(ctx, id, field, idx)
	})
}

// HandleAppendRequirement handles POST /api/jobs/{id}/requirement.
func (h *Handler) HandleAppendRequirement(w http.ResponseWriter, r *http.Request) {
	h.appendItem(w, r, jobstore.FieldRequirements)
}

// HandleReplaceRequirement handles PATCH /api/jobs/{id}/requirement/{idx}.
func (h *Handler) HandleReplaceRequirement(w http.ResponseWriter, r *http.Request) {
	h.replaceItem(w, r, jobstore.FieldRequirements)
}

// HandleRemoveRequirement handles DELETE /api/jobs/{id}/requirement/{idx}.
func (h *Handler) HandleRemoveRequirement(w http.ResponseWriter, r *http.Request) {
	h.removeItem(w, r, jobstore.FieldRequirements)
}

// HandleAppendResponsibility handles POST /api/jobs/{id}/responsibility.
func (h *Handler) HandleAppendResponsibility(w http.ResponseWriter, r *http.Request) {
	h.appendItem(w, r, jobstore.FieldResponsibilities)
}

// HandleReplaceResponsibility handles PATCH /api/jobs/{id}/responsibility/{idx}.
func (h *Handler) HandleReplaceResponsibility(w http.ResponseWriter, r *http.Request) {
	h.replaceItem(w, r, jobstore.FieldResponsibilities)
}

// HandleRemoveResponsibility handles DELETE /api/jobs/{id}/responsibility/{idx}.
func (h *Handler) HandleRemoveResponsibility(w http.ResponseWriter, r *http.Request) {
	h.removeItem(w, r, jobstore.FieldResponsibilities)
}

// HandleAppendBenefit handles POST /api/jobs/{id}/benefit.
func (h *Handler) HandleAppendBenefit(w http.ResponseWriter, r *http.Request) {
	h.appendItem(w, r, jobstore.FieldBenefits)
}

// HandleReplaceBenefit handles PATCH /api/jobs/{id}/benefit/{idx}.
func (h *Handler) HandleReplaceBenefit(w http.ResponseWriter, r *http.Request) {
	h.replaceItem(w, r, jobstore.FieldBenefits)
}

// HandleRemoveBenefit handles DELETE /api/jobs/{id}/benefit/{idx}.
func (h *Handler) HandleRemoveBenefit(w http.ResponseWriter, r *http.Request) {
	h.removeItem(w, r, jobstore.FieldBenefits)
}
