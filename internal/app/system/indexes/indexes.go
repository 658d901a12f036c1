// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureJobs(ctx, db); err != nil {
		problems = append(problems, "jobs: "+err.Error())
	}
	if err := ensureJobApplications(ctx, db); err != nil {
		problems = append(problems, "job_applications: "+err.Error())
	}
	if err := ensureServices(ctx, db); err != nil {
		problems = append(problems, "services: "+err.Error())
	}
	if err := ensureBlogPosts(ctx, db); err != nil {
		problems = append(problems, "blog_posts: "+err.Error())
	}
	if err := ensureContactSubmissions(ctx, db); err != nil {
		problems = append(problems, "contact_submissions: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// ensure creates the desired indexes for one collection. CreateMany is
// idempotent when the name and key pattern already match; an options
// conflict (same keys, different options, typically left over from an
// older deployment) is reported rather than silently dropped.
func ensure(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	if len(models) == 0 {
		return nil
	}
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}

func ensureJobs(ctx context.Context, db *mongo.Database) error {
	return ensure(ctx, db.Collection("jobs"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("ux_jobs_slug").SetUnique(true),
		},
	})
}

func ensureJobApplications(ctx context.Context, db *mongo.Database) error {
	return ensure(ctx, db.Collection("job_applications"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "applied_at", Value: -1}},
			Options: options.Index().SetName("ix_job_applications_job_applied"),
		},
		{
			Keys:    bson.D{{Key: "reply_state", Value: 1}},
			Options: options.Index().SetName("ix_job_applications_reply_state"),
		},
	})
}

func ensureServices(ctx context.Context, db *mongo.Database) error {
	return ensure(ctx, db.Collection("services"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("ux_services_slug").SetUnique(true),
		},
	})
}

func ensureBlogPosts(ctx context.Context, db *mongo.Database) error {
	return ensure(ctx, db.Collection("blog_posts"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("ux_blog_posts_slug").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("ix_blog_posts_created"),
		},
	})
}

func ensureContactSubmissions(ctx context.Context, db *mongo.Database) error {
	return ensure(ctx, db.Collection("contact_submissions"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("ix_contact_submissions_created"),
		},
		{
			Keys:    bson.D{{Key: "reply_state", Value: 1}},
			Options: options.Index().SetName("ix_contact_submissions_reply_state"),
		},
	})
}
