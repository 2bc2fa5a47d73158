// Copyright (c) 2026 Groupdex. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/groupdex/groupdex/internal/auth"
	"github.com/groupdex/groupdex/internal/core/asset"
	"github.com/groupdex/groupdex/internal/core/entry"
	"github.com/groupdex/groupdex/internal/core/newsletter"
	"github.com/groupdex/groupdex/internal/core/preview"
	"github.com/groupdex/groupdex/internal/core/report"
	"github.com/groupdex/groupdex/internal/core/settings"
	"github.com/groupdex/groupdex/internal/core/taxonomy"
	"github.com/groupdex/groupdex/internal/core/ticker"
	"github.com/groupdex/groupdex/internal/platform/config"
	"github.com/groupdex/groupdex/internal/platform/constants"
	"github.com/groupdex/groupdex/internal/platform/middleware"
	"github.com/groupdex/groupdex/internal/platform/sec"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles back-office sign-in.
	Auth *auth.Handler

	// Entry handles directory listings, submissions, ratings and clicks.
	Entry *entry.Handler

	// Taxonomy serves the category and country vocabularies.
	Taxonomy *taxonomy.Handler

	// Report handles visitor report intake and moderation.
	Report *report.Handler

	// Settings serves the moderation and layout singletons.
	Settings *settings.Handler

	// Newsletter handles mailing-list signups.
	Newsletter *newsletter.Handler

	// Ticker serves the homepage headline feeds.
	Ticker *ticker.Handler

	// Preview provides admin link-metadata and image-generation tooling.
	Preview *preview.Handler

	// Asset handles admin image uploads.
	Asset *asset.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/entries", h.Entry.Routes())
		api.Mount("/reports", h.Report.Routes())
		api.Mount("/settings", h.Settings.PublicRoutes())
		api.Mount("/newsletter", h.Newsletter.Routes())
		api.Mount("/ticker", h.Ticker.Routes())
		api.Mount("/", h.Taxonomy.Routes())

		// # Back-Office API
		// Everything under /admin requires a verified admin token.
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireRole(sec.RoleAdmin))
			admin.Mount("/auth", h.Auth.AdminRoutes())
			admin.Mount("/entries", h.Entry.AdminRoutes())
			admin.Mount("/reports", h.Report.AdminRoutes())
			admin.Mount("/settings", h.Settings.AdminRoutes())
			admin.Mount("/taxonomy", h.Taxonomy.AdminRoutes())
			admin.Mount("/preview", h.Preview.AdminRoutes())
			admin.Mount("/uploads", h.Asset.AdminRoutes())
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
