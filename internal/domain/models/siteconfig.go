// internal/domain/models/siteconfig.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteConfig holds site-wide settings edited from the dashboard: branding,
// contact details, and the optional support mailbox used as the outbound
// identity for reply emails.
//
// Like AboutPage, the site expects one of these; the store does not
// enforce it and "the" config is the first document found.
type SiteConfig struct {
	ID primitive.ObjectID `bson:"_id" json:"_id"`

	SiteName string `bson:"site_name" json:"siteName"`
	LogoURL  string `bson:"logo_url" json:"logoUrl"`

	ContactEmails  []string `bson:"contact_emails" json:"contactEmails"`
	ContactPhones  []string `bson:"contact_phones" json:"contactPhones"`
	ContactAddress string   `bson:"contact_address" json:"contactAddress"`

	// Per-site outbound mail identity. When both are set they take
	// precedence over the process-wide SMTP credentials for reply
	// dispatch. Cleared together via the support-email endpoint.
	SupportEmail       string `bson:"support_email,omitempty" json:"supportEmail,omitempty"`
	SupportAppPassword string `bson:"support_app_password,omitempty" json:"supportAppPassword,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
	Version   int64     `bson:"version" json:"version"`
}

// HasSupportIdentity reports whether this config carries a usable outbound
// mail identity override.
func (c *SiteConfig) HasSupportIdentity() bool {
	return c.SupportEmail != "" && c.SupportAppPassword != ""
}
