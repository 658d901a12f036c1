package contact_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kestrelworks/backoffice/internal/app/features/contact"
	siteconfigstore "github.com/kestrelworks/backoffice/internal/app/store/siteconfig"
	"github.com/kestrelworks/backoffice/internal/app/system/mailer"
	"github.com/kestrelworks/backoffice/internal/app/system/replies"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"github.com/kestrelworks/backoffice/internal/testutil"
	"go.uber.org/zap"
)

type stubSender struct {
	err  error
	sent []mailer.Email
}

func (s *stubSender) Send(id mailer.Identity, e mailer.Email) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, e)
	return nil
}

func newTestRouter(t *testing.T, sender mailer.Sender) (chi.Router, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	identity := &replies.IdentityResolver{
		Default: mailer.Identity{FromName: "Admin Team", Address: "admin@example.com", Password: "pass"},
		Configs: siteconfigstore.New(db),
	}
	handler := contact.NewHandler(db, replies.New(sender, logger), identity, logger)
	return contact.Routes(handler), testutil.NewFixtures(t, db)
}

func do(t *testing.T, router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndList(t *testing.T) {
	router, _ := newTestRouter(t, &stubSender{})

	rec := do(t, router, "POST", "/",
		`{"name":"Ada","email":"ada@example.com","message":"Tell me more about your services."}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status: got %d (body %s)", rec.Code, rec.Body.String())
	}

	rec = do(t, router, "GET", "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status: got %d", rec.Code)
	}
	var rows []models.ContactSubmission
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Ada" {
		t.Errorf("list: got %+v", rows)
	}
}

func TestReply_EndToEnd(t *testing.T) {
	sender := &stubSender{}
	router, fx := newTestRouter(t, sender)
	sub := fx.CreateSubmission(context.Background(), "Ada", "ada@example.com", "Hello there.")

	rec := do(t, router, "POST", "/"+sub.ID.Hex()+"/reply", `{"reply":"Thanks"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Message != "Reply sent and submission updated." {
		t.Errorf("message: got %q", resp.Message)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent: got %d emails, want 1", len(sender.sent))
	}
	if sender.sent[0].Subject != "Reply to your contact submission" {
		t.Errorf("subject: got %q", sender.sent[0].Subject)
	}

	// The list view reflects the recorded reply.
	rec = do(t, router, "GET", "/", "")
	var rows []models.ContactSubmission
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("list: got %d rows", len(rows))
	}
	if !rows[0].Replied || rows[0].Reply != "Thanks" {
		t.Errorf("after reply: replied=%v reply=%q", rows[0].Replied, rows[0].Reply)
	}
}

func TestReply_TransportFailureStaysUnreplied(t *testing.T) {
	sender := &stubSender{err: errors.New("smtp: auth failed")}
	router, fx := newTestRouter(t, sender)
	sub := fx.CreateSubmission(context.Background(), "Ada", "ada@example.com", "Hello.")

	rec := do(t, router, "POST", "/"+sub.ID.Hex()+"/reply", `{"reply":"Thanks"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body.String())
	}

	rec = do(t, router, "GET", "/?replyState=failed", "")
	var rows []models.ContactSubmission
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("failed view: got %d rows, want 1", len(rows))
	}
	if rows[0].Replied {
		t.Error("replied must stay false after a failed send")
	}
}

func TestReply_MissingSubmission(t *testing.T) {
	router, _ := newTestRouter(t, &stubSender{})

	rec := do(t, router, "POST", "/64b0c0ffee0c0ffee0c0ffee/reply", `{"reply":"Hi."}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Error != "Submission not found" {
		t.Errorf("error message: got %q", resp.Error)
	}
}
