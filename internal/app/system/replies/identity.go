// internal/app/system/replies/identity.go
package replies

import (
	"context"

	"github.com/kestrelworks/backoffice/internal/app/system/mailer"
	"github.com/kestrelworks/backoffice/internal/domain/models"
)

// ConfigSource yields the current site configuration. Satisfied by the
// site-config store.
type ConfigSource interface {
	First(ctx context.Context) (models.SiteConfig, error)
}

// IdentityResolver picks the outbound identity for a reply: the site
// config's support mailbox when one is fully set, otherwise the
// process-wide default from the environment.
type IdentityResolver struct {
	Default mailer.Identity
	Configs ConfigSource
}

// Resolve never fails: a missing or unreadable site config falls back to
// the default identity, which keeps reply dispatch working on a fresh
// deployment with no config document yet.
func (r *IdentityResolver) Resolve(ctx context.Context) mailer.Identity {
	cfg, err := r.Configs.First(ctx)
	if err != nil {
		return r.Default
	}
	if cfg.HasSupportIdentity() {
		return mailer.Identity{
			FromName: r.Default.FromName,
			Address:  cfg.SupportEmail,
			Password: cfg.SupportAppPassword,
		}
	}
	return r.Default
}
