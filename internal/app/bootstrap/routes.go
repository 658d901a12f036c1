// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	aboutfeature "github.com/kestrelworks/backoffice/internal/app/features/about"
	blogsfeature "github.com/kestrelworks/backoffice/internal/app/features/blogs"
	contactfeature "github.com/kestrelworks/backoffice/internal/app/features/contact"
	healthfeature "github.com/kestrelworks/backoffice/internal/app/features/health"
	jobsfeature "github.com/kestrelworks/backoffice/internal/app/features/jobs"
	servicesfeature "github.com/kestrelworks/backoffice/internal/app/features/services"
	siteconfigfeature "github.com/kestrelworks/backoffice/internal/app/features/siteconfig"
	siteconfigstore "github.com/kestrelworks/backoffice/internal/app/store/siteconfig"
	"github.com/kestrelworks/backoffice/internal/app/system/mailer"
	"github.com/kestrelworks/backoffice/internal/app/system/replies"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The back office mounts the health endpoint at the root and every
// resource feature under /api, matching the paths the dashboard SPA and
// the public site call.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	// Outbound mail: one SMTP transport, identity resolved per dispatch so
	// the site config's support mailbox can override the default pair.
	sender := mailer.New(appCfg.MailSMTPHost, appCfg.MailSMTPPort)
	dispatcher := replies.New(sender, logger)
	identity := &replies.IdentityResolver{
		Default: mailer.Identity{
			FromName: appCfg.MailFromName,
			Address:  appCfg.MailSMTPUser,
			Password: appCfg.MailSMTPPass,
		},
		Configs: siteconfigstore.New(db),
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: strings.Split(appCfg.AllowedOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api", func(api chi.Router) {
		aboutHandler := aboutfeature.NewHandler(db, logger)
		api.Mount("/about", aboutfeature.Routes(aboutHandler))

		jobsHandler := jobsfeature.NewHandler(db, dispatcher, identity, logger)
		api.Mount("/jobs", jobsfeature.Routes(jobsHandler))

		servicesHandler := servicesfeature.NewHandler(db, logger)
		api.Mount("/services", servicesfeature.Routes(servicesHandler))

		blogsHandler := blogsfeature.NewHandler(db, logger)
		api.Mount("/blogs", blogsfeature.Routes(blogsHandler))

		contactHandler := contactfeature.NewHandler(db, dispatcher, identity, logger)
		api.Mount("/contact-submissions", contactfeature.Routes(contactHandler))

		siteConfigHandler := siteconfigfeature.NewHandler(db, logger)
		api.Mount("/site-config", siteconfigfeature.Routes(siteConfigHandler))
	})

	return r, nil
}
