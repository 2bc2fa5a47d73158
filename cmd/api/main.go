// Copyright (c) 2026 Groupdex. All rights reserved.

// Command api is the entry point for the Groupdex HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/groupdex/groupdex/internal/api"
	"github.com/groupdex/groupdex/internal/auth"
	"github.com/groupdex/groupdex/internal/core/asset"
	"github.com/groupdex/groupdex/internal/core/entry"
	"github.com/groupdex/groupdex/internal/core/newsletter"
	"github.com/groupdex/groupdex/internal/core/preview"
	"github.com/groupdex/groupdex/internal/core/rated"
	"github.com/groupdex/groupdex/internal/core/report"
	"github.com/groupdex/groupdex/internal/core/settings"
	"github.com/groupdex/groupdex/internal/core/taxonomy"
	"github.com/groupdex/groupdex/internal/core/ticker"
	"github.com/groupdex/groupdex/internal/platform/config"
	"github.com/groupdex/groupdex/internal/platform/constants"
	"github.com/groupdex/groupdex/internal/platform/migration"
	pgstore "github.com/groupdex/groupdex/internal/platform/postgres"
	redisstore "github.com/groupdex/groupdex/internal/platform/redis"
	"github.com/groupdex/groupdex/internal/platform/sec"
	"github.com/groupdex/groupdex/internal/platform/storage"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Object Storage ─────────────────────────────────────────────────
	uploader, err := storage.NewUploader(startupCtx, storage.Options{
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		Endpoint:      cfg.S3Endpoint,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
	}, log)
	must(log, err, "initialize object storage")

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	settingsService := settings.NewService(settings.NewPostgresRepository(pool), log)
	settingsHandler := settings.NewHandler(settingsService)

	taxonomyService := taxonomy.NewService(taxonomy.NewPostgresRepository(pool), log)
	taxonomyHandler := taxonomy.NewHandler(taxonomyService)

	ratedCodec := rated.NewCodec(cfg.SessionSecret)
	entryCache := entry.NewRedisCache(rdb, log)
	entryService := entry.NewService(entry.NewPostgresRepository(pool), settingsService, taxonomyService, entryCache, log)
	entryHandler := entry.NewHandler(entryService, settingsService, ratedCodec, entryCache)

	reportService := report.NewService(report.NewPostgresRepository(pool), log)
	reportHandler := report.NewHandler(reportService)

	newsletterService := newsletter.NewService(
		newsletter.NewHTTPProvider(cfg.NewsletterAPIURL, cfg.NewsletterAPIKey), log)
	newsletterHandler := newsletter.NewHandler(newsletterService)

	tickerService := ticker.NewService(map[string]ticker.Provider{
		ticker.FeedSports: ticker.NewHTTPProvider(cfg.SportsFeedURL, ticker.FeedSports),
		ticker.FeedNews:   ticker.NewHTTPProvider(cfg.NewsFeedURL, ticker.FeedNews),
	}, ticker.NewRedisStore(rdb, log), log)
	tickerHandler := ticker.NewHandler(tickerService)

	previewService := preview.NewService(
		preview.NewHTTPFetcher(cfg.LinkPreviewAPIURL),
		preview.NewHTTPGenerator(cfg.ImageGenAPIURL, cfg.ImageGenAPIKey), log)
	previewHandler := preview.NewHandler(previewService)

	assetService := asset.NewService(uploader, log)
	assetHandler := asset.NewHandler(assetService)

	authService := auth.NewService(auth.NewPostgresRepository(pool), jwtSvc, log)
	authHandler := auth.NewHandler(authService)

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       authHandler,
		Entry:      entryHandler,
		Taxonomy:   taxonomyHandler,
		Report:     reportHandler,
		Settings:   settingsHandler,
		Newsletter: newsletterHandler,
		Ticker:     tickerHandler,
		Preview:    previewHandler,
		Asset:      assetHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
