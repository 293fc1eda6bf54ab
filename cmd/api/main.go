// @title Cow Inspection API
// @version 1.0
// @description Registro veterinario de vacas por región: sesión por cookie, dashboard y vacunas.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cow-inspection/internal/adapters/auth/session"
	"cow-inspection/internal/adapters/security"
	pg "cow-inspection/internal/adapters/storage/postgres"
	"cow-inspection/internal/platform/config"
	"cow-inspection/internal/platform/logger"
	"cow-inspection/internal/platform/metrics"
	"cow-inspection/internal/router"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		logger.FromConfig("error", "text", "cow-inspection").Error("invalid config", map[string]any{"error": err})
		return err
	}

	log := logger.FromConfig(cfg.LogLevel, cfg.LogFormat, cfg.AppName)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Store: Postgres si hay DSN, in-memory si no.
	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"error": err})
			return err
		}
		defer func() { _ = db.Close() }()

		if err := pg.Migrate(ctx, db); err != nil {
			log.Error("postgres migrate failed", map[string]any{"error": err})
			return err
		}
		log.Info("using postgres store", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory store", nil)
	}

	sessions, err := session.NewManager(session.Config{Secret: cfg.JWTSecret})
	if err != nil {
		log.Error("session manager init failed", map[string]any{"error": err})
		return err
	}

	handler := router.NewRouter(router.Options{
		Config:   cfg,
		DB:       db,
		Sessions: sessions,
		Hasher:   security.NewBcryptHasher(cfg.BcryptCost),
		Logger:   log,
		Metrics:  metrics.New(),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr": cfg.Addr(),
			"env":  cfg.Environment,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"error": err})
		return err
	}
	return nil
}
