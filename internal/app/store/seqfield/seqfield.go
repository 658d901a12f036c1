// internal/app/store/seqfield/seqfield.go

// Package seqfield implements the index-addressed sub-collection protocol
// shared by the about, jobs and services stores.
//
// A sequence field is an ordered array embedded on a parent document
// (sections on an about page, requirements on a job, features on a
// service). Elements have no ids of their own; the dashboard addresses
// them by position. Three operations exist: append, replace-at-index and
// remove-at-index. Each one reads the parent, mutates the array in
// memory, and writes the array back in a single update guarded by the
// document's version token, so a concurrent edit between the read and
// the write is detected instead of silently overwritten.
//
// Insertion order is the only order; there is no sort key.
package seqfield

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound means the parent document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrIndexOutOfRange means a replace or remove addressed a position
	// past the end of the sequence (or the sequence is absent).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrStaleDocument means the parent changed between the read and the
	// write. The caller's view of the indexes is no longer trustworthy,
	// so the operation is rejected rather than retried.
	ErrStaleDocument = errors.New("document was modified concurrently")
)

// Append pushes item onto the end of the named sequence.
func Append(ctx context.Context, c *mongo.Collection, id primitive.ObjectID, field string, item any) error {
	return apply(ctx, c, id, field, func(seq bson.A) (bson.A, error) {
		return append(seq, item), nil
	})
}

// ReplaceAt overwrites the element at idx with item. The element is
// replaced whole, not merged; callers resend every field.
func ReplaceAt(ctx context.Context, c *mongo.Collection, id primitive.ObjectID, field string, idx int, item any) error {
	return apply(ctx, c, id, field, func(seq bson.A) (bson.A, error) {
		if idx < 0 || idx >= len(seq) {
			return nil, ErrIndexOutOfRange
		}
		out := make(bson.A, len(seq))
		copy(out, seq)
		out[idx] = item
		return out, nil
	})
}

// RemoveAt splices out the element at idx, preserving the relative order
// of the remaining elements.
func RemoveAt(ctx context.Context, c *mongo.Collection, id primitive.ObjectID, field string, idx int) error {
	return apply(ctx, c, id, field, func(seq bson.A) (bson.A, error) {
		if idx < 0 || idx >= len(seq) {
			return nil, ErrIndexOutOfRange
		}
		out := make(bson.A, 0, len(seq)-1)
		out = append(out, seq[:idx]...)
		out = append(out, seq[idx+1:]...)
		return out, nil
	})
}

// apply runs one read-modify-write cycle: load the parent, hand the
// current sequence to mutate, and commit the result with a version-checked
// update. MatchedCount == 0 on commit distinguishes "parent deleted" from
// "parent changed underneath us".
func apply(ctx context.Context, c *mongo.Collection, id primitive.ObjectID, field string, mutate func(bson.A) (bson.A, error)) error {
	var doc bson.M
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	seq, _ := doc[field].(bson.A) // absent field behaves as an empty sequence
	version := doc["version"]

	next, err := mutate(seq)
	if err != nil {
		return err
	}

	// The commit filter matches the token exactly as it was read (nil
	// matches a document that has none) and the next token is written as
	// a number, so a document inserted outside the API with a missing or
	// malformed token heals on its first edit instead of being stuck
	// behind the version check.
	res, err := c.UpdateOne(ctx,
		bson.M{"_id": id, "version": version},
		bson.M{"$set": bson.M{
			field:        next,
			"updated_at": time.Now().UTC(),
			"version":    asInt64(version) + 1,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		n, err := c.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return ErrStaleDocument
	}
	return nil
}

// asInt64 tolerates the numeric types Mongo may hand back for the
// version token.
func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}
