// internal/app/features/jobs/applications.go
package jobs

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kestrelworks/backoffice/internal/app/system/httpjson"
	"github.com/kestrelworks/backoffice/internal/app/system/replies"
	"github.com/kestrelworks/backoffice/internal/app/system/timeouts"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeAllApplications handles GET /api/jobs/applications. The optional
// replyState query narrows to one dispatch state; ?replyState=pending is
// the reconciliation view for replies whose outcome was never recorded.
func (h *Handler) ServeAllApplications(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Applications.List(ctx, primitive.NilObjectID, r.URL.Query().Get("replyState"))
	if err != nil {
		h.Log.Error("list applications failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, rows)
}

// ServeJobApplications handles GET /api/jobs/{id}/applications.
func (h *Handler) ServeJobApplications(w http.ResponseWriter, r *http.Request) {
	jobID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Applications.List(ctx, jobID, r.URL.Query().Get("replyState"))
	if err != nil {
		h.Log.Error("list applications failed", zap.String("job_id", jobID.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, rows)
}

// HandleApply handles POST /api/jobs/{id}/applications: a candidate
// submitting an application for the job.
func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	jobID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	var app models.JobApplication
	if err := httpjson.Decode(r, &app); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	app.JobID = jobID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	// The job must exist at submission time even though the reference is
	// not enforced afterward.
	if _, err := h.Jobs.GetByID(ctx, jobID); err != nil {
		httpjson.StoreError(w, err, notFoundMsg)
		return
	}

	created, err := h.Applications.Create(ctx, app)
	if err != nil {
		h.Log.Error("create application failed", zap.String("job_id", jobID.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}

// HandleReply handles POST /api/jobs/applications/{applicationID}/reply:
// send the admin's reply to the applicant and record the outcome.
func (h *Handler) HandleReply(w http.ResponseWriter, r *http.Request) {
	appID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "applicationID"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	var body struct {
		Reply string `json:"reply"`
	}
	if err := httpjson.Decode(r, &body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	// The send itself can take as long as the SMTP round trip.
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	app, err := h.Applications.GetByID(ctx, appID)
	if err != nil {
		httpjson.StoreError(w, err, "Application not found")
		return
	}

	// The subject names the job; fall back to the raw reference when the
	// job has since been deleted.
	subject := fmt.Sprintf("Reply to your job application for %s", app.JobID.Hex())
	if job, err := h.Jobs.GetByID(ctx, app.JobID); err == nil {
		subject = fmt.Sprintf("Reply to your job application for %s", job.Title)
	}

	err = h.Dispatcher.Dispatch(ctx, h.Identity.Resolve(ctx), replies.Request{
		To:            app.Email,
		RecipientName: app.Name,
		Subject:       subject,
		ReplyText:     body.Reply,
	}, replies.Marks{
		Pending: func(ctx context.Context, dispatchID, replyText string) error {
			return h.Applications.MarkReplyPending(ctx, appID, dispatchID, replyText)
		},
		Sent: func(ctx context.Context) error {
			return h.Applications.MarkReplySent(ctx, appID)
		},
		Failed: func(ctx context.Context) error {
			return h.Applications.MarkReplyFailed(ctx, appID)
		},
	})
	if err != nil {
		if errors.Is(err, replies.ErrEmptyReply) {
			httpjson.Error(w, http.StatusBadRequest, "Reply is required")
			return
		}
		httpjson.StoreError(w, err, "Application not found")
		return
	}
	httpjson.Message(w, "Reply sent and application updated.")
}
