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

	"babylog/internal/adapters/auth/remote"
	notifyadapter "babylog/internal/adapters/notify"
	mdb "babylog/internal/adapters/storage/mongodb"
	pg "babylog/internal/adapters/storage/postgres"
	"babylog/internal/adapters/storage/sqlite"
	"babylog/internal/platform/config"
	"babylog/internal/platform/logger"
	"babylog/internal/router"

	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		File:   cfg.LogFile,
	})
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Logger:   log,
		Location: cfg.Location(),
	}

	// Postgres (opcional)
	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := pg.EnsureSchema(ctx, db); err != nil {
			return err
		}
		opts.DB = db
		log.Info("using postgres", nil)
	}

	// Mongo (opcional): eventos + fotos
	if cfg.MongoURI != "" {
		client, db, err := mdb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return err
		}
		defer disconnect(client)
		if err := mdb.EnsureIndexes(ctx, db); err != nil {
			return err
		}
		opts.Mongo = db
		log.Info("using mongodb", map[string]any{"database": cfg.MongoDatabase})
	}

	// Configuración local en SQLite (opcional)
	if cfg.SettingsPath != "" {
		sdb, err := sqlite.Open(cfg.SettingsPath)
		if err != nil {
			return err
		}
		defer closeDB(sdb)
		opts.Settings = sqlite.NewSettingsStore(sdb)
		log.Info("using sqlite settings", map[string]any{"path": cfg.SettingsPath})
	}

	if cfg.NotifyBaseURL != "" {
		wh, err := notifyadapter.NewWebhook(notifyadapter.WebhookConfig{
			BaseURL: cfg.NotifyBaseURL,
			APIKey:  cfg.NotifyAPIKey,
		})
		if err != nil {
			return err
		}
		opts.Scheduler = wh
	}

	if cfg.DevAuth() {
		log.Warn("auth service not configured; dev mode (X-Debug-User-ID)", nil)
	} else {
		v, err := remote.NewVerifier(remote.Config{
			BaseURL: cfg.AuthBaseURL,
			APIKey:  cfg.AuthAPIKey,
		})
		if err != nil {
			return err
		}
		opts.AuthVerifier = v
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func disconnect(c *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = c.Disconnect(ctx)
}

func closeDB(db *sql.DB) { _ = db.Close() }
