package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/kestrelworks/backoffice/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateJob inserts a job posting with the given title, slug, and
// requirements. Returns the created job with its generated ID.
func (f *Fixtures) CreateJob(ctx context.Context, title, slug string, requirements ...string) models.Job {
	f.t.Helper()

	now := time.Now().UTC()
	job := models.Job{
		ID:               primitive.NewObjectID(),
		Title:            title,
		Slug:             slug,
		Department:       "Engineering",
		Location:         "Remote",
		Type:             "Full-time",
		Experience:       "3+ years",
		Salary:           "Competitive",
		PostedDate:       now.Format("2006-01-02"),
		Description:      "Test job posting",
		Requirements:     append([]string{}, requirements...),
		Responsibilities: []string{},
		Benefits:         []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
		Version:          1,
	}

	if _, err := f.db.Collection("jobs").InsertOne(ctx, job); err != nil {
		f.t.Fatalf("failed to create test job: %v", err)
	}
	return job
}

// CreateApplication inserts a job application for the given job.
func (f *Fixtures) CreateApplication(ctx context.Context, jobID primitive.ObjectID, name, email string) models.JobApplication {
	f.t.Helper()

	app := models.JobApplication{
		ID:         primitive.NewObjectID(),
		JobID:      jobID,
		Name:       name,
		Email:      email,
		Phone:      "555-0100",
		Experience: "5 years",
		AppliedAt:  time.Now().UTC(),
		Version:    1,
	}

	if _, err := f.db.Collection("job_applications").InsertOne(ctx, app); err != nil {
		f.t.Fatalf("failed to create test application: %v", err)
	}
	return app
}

// CreateSubmission inserts a contact submission from the given sender.
func (f *Fixtures) CreateSubmission(ctx context.Context, name, email, message string) models.ContactSubmission {
	f.t.Helper()

	sub := models.ContactSubmission{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
		Version:   1,
	}

	if _, err := f.db.Collection("contact_submissions").InsertOne(ctx, sub); err != nil {
		f.t.Fatalf("failed to create test submission: %v", err)
	}
	return sub
}

// CreateAboutPage inserts an about page with the given sections.
func (f *Fixtures) CreateAboutPage(ctx context.Context, sections ...models.SectionBlock) models.AboutPage {
	f.t.Helper()

	now := time.Now().UTC()
	page := models.AboutPage{
		ID:          primitive.NewObjectID(),
		Sections:    append([]models.SectionBlock{}, sections...),
		OurValues:   []models.SectionBlock{},
		TeamMembers: []models.TeamMember{},
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}

	if _, err := f.db.Collection("about_pages").InsertOne(ctx, page); err != nil {
		f.t.Fatalf("failed to create test about page: %v", err)
	}
	return page
}

// CreateSiteConfig inserts a site config, optionally with a support
// mailbox override.
func (f *Fixtures) CreateSiteConfig(ctx context.Context, supportEmail, supportAppPassword string) models.SiteConfig {
	f.t.Helper()

	now := time.Now().UTC()
	cfg := models.SiteConfig{
		ID:                 primitive.NewObjectID(),
		SiteName:           "Test Site",
		ContactEmails:      []string{"info@test.example"},
		ContactPhones:      []string{"555-0100"},
		SupportEmail:       supportEmail,
		SupportAppPassword: supportAppPassword,
		CreatedAt:          now,
		UpdatedAt:          now,
		Version:            1,
	}

	if _, err := f.db.Collection("site_config").InsertOne(ctx, cfg); err != nil {
		f.t.Fatalf("failed to create test site config: %v", err)
	}
	return cfg
}
