// Package app wires configuration, storage, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/runprhq/runpr-backend/internal/adapter/postgres"
	profilerepo "github.com/runprhq/runpr-backend/internal/adapter/postgres/profile"
	recordrepo "github.com/runprhq/runpr-backend/internal/adapter/postgres/record"
	tokenrepo "github.com/runprhq/runpr-backend/internal/adapter/postgres/token"
	userrepo "github.com/runprhq/runpr-backend/internal/adapter/postgres/user"
	"github.com/runprhq/runpr-backend/internal/adapter/storage"
	jwtauth "github.com/runprhq/runpr-backend/internal/auth"
	"github.com/runprhq/runpr-backend/internal/config"
	"github.com/runprhq/runpr-backend/internal/editor"
	authsvc "github.com/runprhq/runpr-backend/internal/service/auth"
	avatarsvc "github.com/runprhq/runpr-backend/internal/service/avatar"
	profilesvc "github.com/runprhq/runpr-backend/internal/service/profile"
	"github.com/runprhq/runpr-backend/internal/transport/middleware"
	"github.com/runprhq/runpr-backend/internal/transport/rest"
	"github.com/runprhq/runpr-backend/migrations"
)

// Run is the application entry point. It loads configuration, applies
// migrations, wires the service graph, and serves HTTP until ctx is
// canceled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := migrations.Up(cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	objectStore, err := storage.NewLocalDisk(cfg.Storage)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	profiles := profilerepo.New(pool)
	records := recordrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, txManager, jwtManager, cfg.Auth)
	profileService := profilesvc.NewService(logger, profiles, records)
	avatarService := avatarsvc.NewService(logger, objectStore, cfg.Storage)

	editors := editor.NewStore()

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Auth:       rest.NewAuthHandler(authService, editors, logger),
		Profile:    rest.NewProfileHandler(profileService, editors, logger),
		Avatar:     rest.NewAvatarHandler(avatarService, editors, logger, cfg.Storage.MaxUploadBytes()),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		AuthMW:     middleware.Auth(authService),
		AuthRateMW: rateLimiter.Limit(cfg.Server.AuthRatePerMin),
		Media:      http.FileServer(http.Dir(objectStore.BasePath())),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
