// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, and request body size limits.
// AppConfig is where everything specific to this application lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connections in the driver pool
	MongoMinPoolSize uint64 // Min connections kept warm in the pool

	// Email/SMTP configuration for reply dispatch. The SMTP user/pass
	// pair is the fallback outbound identity; a site config with a
	// support mailbox set overrides it per dispatch.
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit, smtp.gmail.com for Gmail)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for Gmail)
	MailSMTPUser string // SMTP username / fallback from-address
	MailSMTPPass string // SMTP password / app password
	MailFromName string // From display name on outbound replies

	// AllowedOrigins is the comma-separated CORS allow-list for the
	// admin dashboard and public site origins.
	AllowedOrigins string
}
