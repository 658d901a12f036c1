package jobs_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kestrelworks/backoffice/internal/app/features/jobs"
	applicationstore "github.com/kestrelworks/backoffice/internal/app/store/applications"
	siteconfigstore "github.com/kestrelworks/backoffice/internal/app/store/siteconfig"
	"github.com/kestrelworks/backoffice/internal/app/system/mailer"
	"github.com/kestrelworks/backoffice/internal/app/system/replies"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"github.com/kestrelworks/backoffice/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// stubSender records outbound mail instead of talking SMTP.
type stubSender struct {
	mu   sync.Mutex
	err  error
	sent []mailer.Email
	ids  []mailer.Identity
}

func (s *stubSender) Send(id mailer.Identity, e mailer.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, e)
	s.ids = append(s.ids, id)
	return nil
}

func newTestRouter(t *testing.T, sender mailer.Sender) (chi.Router, *testutil.Fixtures, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	identity := &replies.IdentityResolver{
		Default: mailer.Identity{FromName: "Admin Team", Address: "admin@example.com", Password: "default-pass"},
		Configs: siteconfigstore.New(db),
	}
	handler := jobs.NewHandler(db, replies.New(sender, logger), identity, logger)
	return jobs.Routes(handler), testutil.NewFixtures(t, db), db
}

func do(t *testing.T, router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequirementFlow(t *testing.T) {
	router, fx, _ := newTestRouter(t, &stubSender{})
	job := fx.CreateJob(context.Background(), "Backend Engineer", "backend-engineer", "Go experience")

	// Append a second requirement.
	rec := do(t, router, "POST", "/"+job.ID.Hex()+"/requirement", `{"item":"MongoDB experience"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("append status: got %d (body %s)", rec.Code, rec.Body.String())
	}
	var updated models.Job
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(updated.Requirements) != 2 || updated.Requirements[1] != "MongoDB experience" {
		t.Fatalf("requirements after append: %v", updated.Requirements)
	}

	// Replace the first.
	rec = do(t, router, "PATCH", "/"+job.ID.Hex()+"/requirement/0", `{"item":"Strong Go experience"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("replace status: got %d (body %s)", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if updated.Requirements[0] != "Strong Go experience" {
		t.Fatalf("requirements after replace: %v", updated.Requirements)
	}

	// Remove the second.
	rec = do(t, router, "DELETE", "/"+job.ID.Hex()+"/requirement/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("remove status: got %d (body %s)", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(updated.Requirements) != 1 || updated.Requirements[0] != "Strong Go experience" {
		t.Errorf("requirements after remove: %v", updated.Requirements)
	}
}

func TestApply_CreatesApplication(t *testing.T) {
	router, fx, _ := newTestRouter(t, &stubSender{})
	job := fx.CreateJob(context.Background(), "Backend Engineer", "backend-engineer")

	rec := do(t, router, "POST", "/"+job.ID.Hex()+"/applications",
		`{"name":"Ada Lovelace","email":"ada@example.com","experience":"10 years"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body.String())
	}
	var created models.JobApplication
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if created.JobID != job.ID {
		t.Errorf("jobId: got %s, want %s", created.JobID.Hex(), job.ID.Hex())
	}
}

func TestApply_MissingJob(t *testing.T) {
	router, _, _ := newTestRouter(t, &stubSender{})

	rec := do(t, router, "POST", "/64b0c0ffee0c0ffee0c0ffee/applications",
		`{"name":"Ada","email":"ada@example.com"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestReply_Success(t *testing.T) {
	sender := &stubSender{}
	router, fx, db := newTestRouter(t, sender)
	ctx := context.Background()
	job := fx.CreateJob(ctx, "Backend Engineer", "backend-engineer")
	app := fx.CreateApplication(ctx, job.ID, "Ada Lovelace", "ada@example.com")

	rec := do(t, router, "POST", "/applications/"+app.ID.Hex()+"/reply",
		`{"reply":"We would like to interview you."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Message != "Reply sent and application updated." {
		t.Errorf("message: got %q", resp.Message)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent: got %d emails, want 1", len(sender.sent))
	}
	email := sender.sent[0]
	if email.To != "ada@example.com" {
		t.Errorf("to: got %q", email.To)
	}
	if email.Subject != "Reply to your job application for Backend Engineer" {
		t.Errorf("subject: got %q", email.Subject)
	}

	got, err := applicationstore.New(db).GetByID(ctx, app.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.Replied || got.ReplyState != "sent" {
		t.Errorf("after reply: replied=%v state=%q", got.Replied, got.ReplyState)
	}
	if got.Reply != "We would like to interview you." {
		t.Errorf("stored reply: got %q", got.Reply)
	}
	if got.RepliedAt == nil {
		t.Error("replied_at not set")
	}
}

func TestReply_TransportFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("smtp: connection refused")}
	router, fx, db := newTestRouter(t, sender)
	ctx := context.Background()
	job := fx.CreateJob(ctx, "Backend Engineer", "backend-engineer")
	app := fx.CreateApplication(ctx, job.ID, "Ada Lovelace", "ada@example.com")

	rec := do(t, router, "POST", "/applications/"+app.ID.Hex()+"/reply", `{"reply":"Hello."}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body.String())
	}

	got, err := applicationstore.New(db).GetByID(ctx, app.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Replied {
		t.Error("replied must stay false after a failed send")
	}
	if got.ReplyState != "failed" {
		t.Errorf("reply state: got %q, want %q", got.ReplyState, "failed")
	}
	// The attempted reply text is still recorded for the retry.
	if got.Reply != "Hello." {
		t.Errorf("stored reply: got %q", got.Reply)
	}
}

func TestReply_EmptyReply(t *testing.T) {
	sender := &stubSender{}
	router, fx, _ := newTestRouter(t, sender)
	ctx := context.Background()
	job := fx.CreateJob(ctx, "Backend Engineer", "backend-engineer")
	app := fx.CreateApplication(ctx, job.ID, "Ada", "ada@example.com")

	rec := do(t, router, "POST", "/applications/"+app.ID.Hex()+"/reply", `{"reply":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Error != "Reply is required" {
		t.Errorf("error message: got %q", resp.Error)
	}
	if len(sender.sent) != 0 {
		t.Errorf("no mail should be sent, got %d", len(sender.sent))
	}
}

func TestReply_UsesSupportIdentityOverride(t *testing.T) {
	sender := &stubSender{}
	router, fx, _ := newTestRouter(t, sender)
	ctx := context.Background()
	fx.CreateSiteConfig(ctx, "support@example.com", "app-password")
	job := fx.CreateJob(ctx, "Backend Engineer", "backend-engineer")
	app := fx.CreateApplication(ctx, job.ID, "Ada", "ada@example.com")

	rec := do(t, router, "POST", "/applications/"+app.ID.Hex()+"/reply", `{"reply":"Hi."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body.String())
	}
	if len(sender.ids) != 1 {
		t.Fatalf("identities: got %d, want 1", len(sender.ids))
	}
	id := sender.ids[0]
	if id.Address != "support@example.com" || id.Password != "app-password" {
		t.Errorf("identity: got %+v, want the configured support mailbox", id)
	}
	if id.FromName != "Admin Team" {
		t.Errorf("from name must come from the default identity, got %q", id.FromName)
	}
}

func TestReply_MissingApplication(t *testing.T) {
	router, _, _ := newTestRouter(t, &stubSender{})

	rec := do(t, router, "POST", "/applications/64b0c0ffee0c0ffee0c0ffee/reply", `{"reply":"Hi."}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Error != "Application not found" {
		t.Errorf("error message: got %q", resp.Error)
	}
}
