package replies_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kestrelworks/backoffice/internal/app/system/mailer"
	"github.com/kestrelworks/backoffice/internal/app/system/replies"
	"github.com/kestrelworks/backoffice/internal/domain/models"
)

type stubConfigs struct {
	cfg models.SiteConfig
	err error
}

func (s stubConfigs) First(ctx context.Context) (models.SiteConfig, error) {
	return s.cfg, s.err
}

func TestResolve_SupportIdentityOverrides(t *testing.T) {
	r := &replies.IdentityResolver{
		Default: mailer.Identity{FromName: "Admin Team", Address: "default@example.com", Password: "default-pass"},
		Configs: stubConfigs{cfg: models.SiteConfig{
			SupportEmail:       "support@example.com",
			SupportAppPassword: "app-pass",
		}},
	}

	id := r.Resolve(context.Background())
	if id.Address != "support@example.com" || id.Password != "app-pass" {
		t.Errorf("expected support override, got %+v", id)
	}
	if id.FromName != "Admin Team" {
		t.Errorf("from name comes from the default identity, got %q", id.FromName)
	}
}

func TestResolve_PartialOverrideFallsBack(t *testing.T) {
	r := &replies.IdentityResolver{
		Default: mailer.Identity{Address: "default@example.com", Password: "default-pass"},
		Configs: stubConfigs{cfg: models.SiteConfig{SupportEmail: "support@example.com"}},
	}

	id := r.Resolve(context.Background())
	if id.Address != "default@example.com" {
		t.Errorf("an email without a password must not override, got %+v", id)
	}
}

func TestResolve_NoConfigFallsBack(t *testing.T) {
	r := &replies.IdentityResolver{
		Default: mailer.Identity{Address: "default@example.com"},
		Configs: stubConfigs{err: errors.New("no documents")},
	}

	id := r.Resolve(context.Background())
	if id.Address != "default@example.com" {
		t.Errorf("expected default identity, got %+v", id)
	}
}
