// internal/app/features/contact/submissions.go
package contact

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kestrelworks/backoffice/internal/app/system/httpjson"
	"github.com/kestrelworks/backoffice/internal/app/system/replies"
	"github.com/kestrelworks/backoffice/internal/app/system/timeouts"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeList handles GET /api/contact-submissions, newest first. The
// optional replyState query narrows to one dispatch state;
// ?replyState=pending surfaces replies whose outcome was never recorded.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx, r.URL.Query().Get("replyState"))
	if err != nil {
		h.Log.Error("list contact submissions failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to fetch contact submissions.")
		return
	}
	httpjson.Write(w, http.StatusOK, list)
}

// HandleCreate handles POST /api/contact-submissions: the public site's
// contact form posting a new message.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var sub models.ContactSubmission
	if err := httpjson.Decode(r, &sub); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, sub)
	if err != nil {
		h.Log.Error("create contact submission failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}

// HandleReply handles POST /api/contact-submissions/{id}/reply: send the
// admin's reply to the sender and record the outcome.
func (h *Handler) HandleReply(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid submission id")
		return
	}

	var body struct {
		Reply string `json:"reply"`
	}
	if err := httpjson.Decode(r, &body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	sub, err := h.Store.GetByID(ctx, id)
	if err != nil {
		httpjson.StoreError(w, err, "Submission not found")
		return
	}

	err = h.Dispatcher.Dispatch(ctx, h.Identity.Resolve(ctx), replies.Request{
		To:            sub.Email,
		RecipientName: sub.Name,
		Subject:       "Reply to your contact submission",
		ReplyText:     body.Reply,
	}, replies.Marks{
		Pending: func(ctx context.Context, dispatchID, replyText string) error {
			return h.Store.MarkReplyPending(ctx, id, dispatchID, replyText)
		},
		Sent: func(ctx context.Context) error {
			return h.Store.MarkReplySent(ctx, id)
		},
		Failed: func(ctx context.Context) error {
			return h.Store.MarkReplyFailed(ctx, id)
		},
	})
	if err != nil {
		if errors.Is(err, replies.ErrEmptyReply) {
			httpjson.Error(w, http.StatusBadRequest, "Reply is required")
			return
		}
		httpjson.StoreError(w, err, "Submission not found")
		return
	}
	httpjson.Message(w, "Reply sent and submission updated.")
}
