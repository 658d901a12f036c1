// internal/app/store/replymark/replymark.go

// Package replymark writes the reply-dispatch state transitions shared by
// the contact submission and job application stores. Both collections
// carry the same reply bookkeeping fields, so the updates live here once.
package replymark

import (
	"context"
	"time"

	"github.com/kestrelworks/backoffice/internal/app/store/seqfield"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Pending records a dispatch attempt before the message is handed to the
// transport: the reply text, the dispatch id, and replyState "pending".
// Replied is not touched — only a confirmed send flips it.
func Pending(ctx context.Context, c *mongo.Collection, id primitive.ObjectID, dispatchID, reply string) error {
	return mark(ctx, c, id, bson.M{
		"reply":       reply,
		"reply_state": "pending",
		"dispatch_id": dispatchID,
	})
}

// Sent confirms delivery: replied becomes true, replyState "sent".
func Sent(ctx context.Context, c *mongo.Collection, id primitive.ObjectID) error {
	now := time.Now().UTC()
	return mark(ctx, c, id, bson.M{
		"replied":     true,
		"reply_state": "sent",
		"replied_at":  now,
	})
}

// Failed records a transport failure. The reply text stays on the record
// for the re-send path; replied stays false.
func Failed(ctx context.Context, c *mongo.Collection, id primitive.ObjectID) error {
	return mark(ctx, c, id, bson.M{
		"reply_state": "failed",
	})
}

func mark(ctx context.Context, c *mongo.Collection, id primitive.ObjectID, set bson.M) error {
	res, err := c.UpdateByID(ctx, id, bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return seqfield.ErrNotFound
	}
	return nil
}
