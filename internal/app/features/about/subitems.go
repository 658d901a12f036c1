// internal/app/features/about/subitems.go
package about

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	aboutstore "github.com/kestrelworks/backoffice/internal/app/store/about"
	"github.com/kestrelworks/backoffice/internal/app/system/httpjson"
	"github.com/kestrelworks/backoffice/internal/app/system/timeouts"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mutate runs one sub-collection operation and answers with the updated
// parent document, which is what the dashboard re-renders from.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id primitive.ObjectID) error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid about page id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := op(ctx, id); err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}

	page, err := h.Store.GetByID(ctx, id)
	if err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}
	httpjson.Write(w, http.StatusOK, page)
}

// index parses the {idx} route parameter. Anything that is not a
// non-negative integer is the client's mistake.
func index(r *http.Request) (int, bool) {
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

/* ── sections ────────────────────────────────────────────────────────── */

// HandleAppendSection handles POST /api/about/{id}/section.
func (h *Handler) HandleAppendSection(w http.ResponseWriter, r *http.Request) {
	var item models.SectionBlock
	if err := httpjson.Decode(r, &item); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Store.Append(ctx, id, aboutstore.FieldSections, item)
	})
}

// HandleReplaceSection handles PATCH /api/about/{id}/section/{idx}. The
// section at idx is replaced whole, not merged.
func (h *Handler) HandleReplaceSection(w http.ResponseWriter, r *http.Request) {
	idx, ok := index(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "Invalid index")
		return
	}
	var item models.SectionBlock
	if err := httpjson.Decode(r, &item); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Store.ReplaceAt(ctx, id, aboutstore.FieldSections, idx, item)
	})
}

// HandleRemoveSection handles DELETE /api/about/{id}/section/{idx}.
func (h *Handler) HandleRemoveSection(w http.ResponseWriter, r *http.Request) {
	idx, ok := index(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "Invalid index")
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Store.RemoveAt(ctx, id, aboutstore.FieldSections, idx)
	})
}

/* ── team members ────────────────────────────────────────────────────── */

// HandleAppendMember handles POST /api/about/{id}/member.
func (h *Handler) HandleAppendMember(w http.ResponseWriter, r *http.Request) {
	var item models.TeamMember
	if err := httpjson.Decode(r, &item); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Store.Append(ctx, id, aboutstore.FieldTeamMembers, item)
	})
}

// HandleReplaceMember handles PATCH /api/about/{id}/member/{idx}.
func (h *Handler) HandleReplaceMember(w http.ResponseWriter, r *http.Request) {
	idx, ok := index(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "Invalid index")
		return
	}
	var item models.TeamMember
	if err := httpjson.Decode(r, &item); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Store.ReplaceAt(ctx, id, aboutstore.FieldTeamMembers, idx, item)
	})
}

// HandleRemoveMember handles DELETE /api/about/{id}/member/{idx}.
func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	idx, ok := index(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "Invalid index")
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Store.RemoveAt(ctx, id, aboutstore.FieldTeamMembers, idx)
	})
}

/* ── values ──────────────────────────────────────────────────────────── */

// HandleAppendValue handles POST /api/about/{id}/value.
func (h *Handler) HandleAppendValue(w http.ResponseWriter, r *http.Request) {
	var item models.SectionBlock
	if err := httpjson.Decode(r, &item); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Store.Append(ctx, id, aboutstore.FieldOurValues, item)
	})
}

// HandleReplaceValue handles PATCH /api/about/{id}/value/{idx}.
func (h *Handler) HandleReplaceValue(w http.ResponseWriter, r *http.Request) {
	idx, ok := index(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "Invalid index")
		return
	}
	var item models.SectionBlock
	if err := httpjson.Decode(r, &item); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Store.ReplaceAt(ctx, id, aboutstore.FieldOurValues, idx, item)
	})
}

// HandleRemoveValue handles DELETE /api/about/{id}/value/{idx}.
func (h *Handler) HandleRemoveValue(w http.ResponseWriter, r *http.Request) {
	idx, ok := index(r)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "Invalid index")
		return
	}
	h.mutate(w, r, func(ctx context.Context, id primitive.ObjectID) error {
		return h.Store.RemoveAt(ctx, id, aboutstore.FieldOurValues, idx)
	})
}
