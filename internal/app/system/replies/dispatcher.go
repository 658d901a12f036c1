// internal/app/system/replies/dispatcher.go

// Package replies drives the reply-dispatch saga for contact submissions
// and job applications.
//
// Dispatch is deliberately two-step instead of a single try/catch around
// the send: the record is marked pending (with a fresh dispatch id)
// before the message is handed to the transport, and marked sent or
// failed afterward. A record left in the pending state means the process
// died in between; the list endpoints expose a replyState filter so those
// can be found and re-sent. Repeat dispatch on an already-replied record
// is allowed — the server never refuses a re-send.
package replies

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/kestrelworks/backoffice/internal/app/system/mailer"
	"go.uber.org/zap"
)

// ErrEmptyReply rejects a dispatch with no reply text. Nothing is
// recorded on the source document in that case.
var ErrEmptyReply = errors.New("reply is required")

// Request is one reply to deliver.
type Request struct {
	To            string
	RecipientName string
	Subject       string
	ReplyText     string
}

// Marks are the state transitions on the source record. Each runs a
// version-checked write through the owning store.
type Marks struct {
	// Pending records the reply text and dispatch id before the send.
	Pending func(ctx context.Context, dispatchID, replyText string) error
	// Sent flips replied to true after the transport accepted the message.
	Sent func(ctx context.Context) error
	// Failed records the transport failure; replied stays false.
	Failed func(ctx context.Context) error
}

// Dispatcher sends replies through a mailer.Sender.
type Dispatcher struct {
	Sender mailer.Sender
	Log    *zap.Logger
}

// New constructs a Dispatcher.
func New(sender mailer.Sender, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{Sender: sender, Log: logger}
}

// Dispatch validates the request, walks the saga, and returns the
// transport error verbatim when the send fails.
func (d *Dispatcher) Dispatch(ctx context.Context, id mailer.Identity, req Request, marks Marks) error {
	if strings.TrimSpace(req.ReplyText) == "" {
		return ErrEmptyReply
	}

	dispatchID := uuid.NewString()
	if err := marks.Pending(ctx, dispatchID, req.ReplyText); err != nil {
		return err
	}

	email := mailer.BuildReplyEmail(req.Subject, mailer.ReplyEmailData{
		RecipientName: req.RecipientName,
		ReplyText:     req.ReplyText,
	})
	email.To = req.To
	email.DispatchID = dispatchID

	if err := d.Sender.Send(id, email); err != nil {
		d.Log.Error("reply send failed",
			zap.String("to", req.To),
			zap.String("dispatch_id", dispatchID),
			zap.Error(err))
		if markErr := marks.Failed(ctx); markErr != nil {
			// The send error is the one the caller needs; the failed-mark
			// error only matters for the reconciliation view.
			d.Log.Error("marking reply failed did not persist",
				zap.String("dispatch_id", dispatchID),
				zap.Error(markErr))
		}
		return err
	}

	d.Log.Info("reply sent",
		zap.String("to", req.To),
		zap.String("dispatch_id", dispatchID))
	return marks.Sent(ctx)
}
