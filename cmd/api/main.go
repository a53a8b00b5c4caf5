package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medication-tracker/internal/adapters/auth/jwtauth"
	"medication-tracker/internal/adapters/completion/gemini"
	"medication-tracker/internal/adapters/completion/openai"
	"medication-tracker/internal/adapters/storage/bolt"
	pg "medication-tracker/internal/adapters/storage/postgres"
	"medication-tracker/internal/config"
	"medication-tracker/internal/domain/records"
	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/platform/metrics"
	"medication-tracker/internal/ports/completion"
	"medication-tracker/internal/router"
)

// @title Medication Tracker API
// @version 1.0
// @description Medicamentos, logs de tomas e insights de síntomas por owner.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config load failed", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	defer func() {
		if zl, ok := log.(*logger.ZapLogger); ok {
			_ = zl.Sync()
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Logger:             log,
		Metrics:            metrics.NewCollector("medication_tracker"),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}

	// Storage
	db, backend, closeStore, err := openStorage(ctx, cfg)
	if err != nil {
		log.Error("storage init failed", map[string]any{"error": err})
		os.Exit(1)
	}
	defer closeStore()
	opts.DB = db
	opts.Backend = backend

	// Insights
	completer, err := newCompleter(ctx, cfg)
	if err != nil {
		log.Error("insights provider init failed", map[string]any{"error": err, "provider": cfg.InsightsProvider})
		os.Exit(1)
	}
	opts.Completer = completer

	// Auth: sin secret, modo dev (X-Debug-User-ID / cookie)
	if cfg.JWTSecret != "" {
		v, err := jwtauth.NewVerifier(jwtauth.Config{Secret: cfg.JWTSecret, Leeway: 30 * time.Second})
		if err != nil {
			log.Error("jwt verifier init failed", map[string]any{"error": err})
			os.Exit(1)
		}
		opts.AuthVerifier = v
	} else {
		log.Warn("JWT_SECRET not set; running in dev auth mode", nil)
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router.NewRouter(opts),

		ReadTimeout: 5 * time.Second,
		// Cubre el round-trip al proveedor de insights.
		WriteTimeout: cfg.InsightTimeout + 10*time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", map[string]any{"error": err})
		}
	}()

	log.Info("starting server", map[string]any{
		"addr":     cfg.Addr(),
		"provider": cfg.InsightsProvider,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}

// openStorage elige backend: DB_DSN (postgres) > STORE_PATH (bbolt) > memoria.
// Con postgres devuelve la *sql.DB y el router arma el backend.
func openStorage(ctx context.Context, cfg config.Config) (*sql.DB, records.Backend, func(), error) {
	switch {
	case cfg.DBDSN != "":
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, nil, err
		}
		return db, nil, func() { _ = db.Close() }, nil

	case cfg.StorePath != "":
		b, err := bolt.Open(cfg.StorePath)
		if err != nil {
			return nil, nil, nil, err
		}
		return nil, b, func() { _ = b.Close() }, nil

	default:
		return nil, nil, func() {}, nil
	}
}

func newCompleter(ctx context.Context, cfg config.Config) (completion.Completer, error) {
	switch cfg.InsightsProvider {
	case config.ProviderGemini:
		return gemini.NewClient(ctx, gemini.Config{APIKey: cfg.GeminiAPIKey, Timeout: cfg.InsightTimeout})
	case config.ProviderOpenAI:
		return openai.NewClient(openai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Timeout: cfg.InsightTimeout,
		})
	default:
		return nil, errors.New("unknown INSIGHTS_PROVIDER: " + cfg.InsightsProvider)
	}
}
