package siteconfig_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kestrelworks/backoffice/internal/app/features/siteconfig"
	siteconfigstore "github.com/kestrelworks/backoffice/internal/app/store/siteconfig"
	"github.com/kestrelworks/backoffice/internal/domain/models"
	"github.com/kestrelworks/backoffice/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (chi.Router, *testutil.Fixtures, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	handler := siteconfig.NewHandler(db, zap.NewNop())
	return siteconfig.Routes(handler), testutil.NewFixtures(t, db), db
}

func do(t *testing.T, router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndGet(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := do(t, router, "POST", "/",
		`{"siteName":"Kestrel Works","contactEmails":["hello@example.com"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status: got %d (body %s)", rec.Code, rec.Body.String())
	}
	var created models.SiteConfig
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	rec = do(t, router, "GET", "/"+created.ID.Hex(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status: got %d", rec.Code)
	}
	var got models.SiteConfig
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if got.SiteName != "Kestrel Works" {
		t.Errorf("site name: got %q", got.SiteName)
	}
}

func TestSetSupportEmail(t *testing.T) {
	router, fx, db := newTestRouter(t)
	cfg := fx.CreateSiteConfig(context.Background(), "", "")

	rec := do(t, router, "POST", "/"+cfg.ID.Hex()+"/support-email",
		`{"supportEmail":"support@example.com","supportAppPassword":"app-pass"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body.String())
	}

	stored, err := siteconfigstore.New(db).GetByID(context.Background(), cfg.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.SupportEmail != "support@example.com" || stored.SupportAppPassword != "app-pass" {
		t.Errorf("stored identity: %q / %q", stored.SupportEmail, stored.SupportAppPassword)
	}
}

func TestSetSupportEmail_MissingField(t *testing.T) {
	router, fx, _ := newTestRouter(t)
	cfg := fx.CreateSiteConfig(context.Background(), "", "")

	rec := do(t, router, "POST", "/"+cfg.ID.Hex()+"/support-email",
		`{"supportEmail":"support@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Error != "Support email and app password are required." {
		t.Errorf("error message: got %q", resp.Error)
	}
}

func TestSetSupportEmail_InvalidEmail(t *testing.T) {
	router, fx, _ := newTestRouter(t)
	cfg := fx.CreateSiteConfig(context.Background(), "", "")

	rec := do(t, router, "POST", "/"+cfg.ID.Hex()+"/support-email",
		`{"supportEmail":"not-an-email","supportAppPassword":"app-pass"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Error != "Invalid email format." {
		t.Errorf("error message: got %q", resp.Error)
	}
}

func TestClearSupportEmail(t *testing.T) {
	router, fx, db := newTestRouter(t)
	cfg := fx.CreateSiteConfig(context.Background(), "support@example.com", "app-pass")

	rec := do(t, router, "DELETE", "/"+cfg.ID.Hex()+"/support-email", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body.String())
	}

	stored, err := siteconfigstore.New(db).GetByID(context.Background(), cfg.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.SupportEmail != "" || stored.SupportAppPassword != "" {
		t.Errorf("identity not cleared: %q / %q", stored.SupportEmail, stored.SupportAppPassword)
	}
}

func TestDelete_Missing(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := do(t, router, "DELETE", "/64b0c0ffee0c0ffee0c0ffee", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Error != "Site config not found" {
		t.Errorf("error message: got %q", resp.Error)
	}
}
