// Package main runs the eventboard HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"eventboard/config"
	"eventboard/internal/adapters/directory"
	deliveryhttp "eventboard/internal/delivery/http"
	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
	"eventboard/internal/repository/file"
	"eventboard/internal/repository/memory"
	"eventboard/internal/repository/postgres"
	"eventboard/internal/repository/redis"
	"eventboard/internal/services"
)

// sessionWriteTimeout bounds each write of the persisted identity.
const sessionWriteTimeout = 3 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel, os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions, closeSessions, err := openSessionStore(ctx, cfg)
	if err != nil {
		logger.Error("open session store", "backend", cfg.SessionBackend, "err", err)
		os.Exit(1)
	}
	defer closeSessions()

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
		logger.Warn("SESSION_ID not set, identity will not survive a restart", "session_id", sessionID)
	}

	identity := services.NewIdentityStore(ctx, sessions, sessionID, sessionWriteTimeout, logger)
	debouncer := services.NewIdentityDebouncer(identity, cfg.IdentityDebounce)
	defer debouncer.Stop()

	dir := directory.NewHTTPDirectory(directory.Config{
		BaseURL:  cfg.EventAPIURL,
		Token:    cfg.EventAPIToken,
		Timeout:  cfg.EventAPITimeout,
		Location: cfg.EventAPILocation,
	}, nil, logger)

	catalog := services.NewEventCatalog(dir, cfg.CatalogPageSize, logger)
	unbind := catalog.Bind(ctx, identity)
	defer unbind()
	coordinator := services.NewRegistrationCoordinator(dir, identity, catalog, logger)

	go func() {
		if err := catalog.Load(ctx, identity.Get(), 0, false); err != nil && !errors.Is(err, domain.ErrSuperseded) {
			logger.Warn("initial catalog load failed", "err", err)
		}
	}()

	eventController := controllers.NewEventController(logger, catalog, dir, identity, time.Now)
	registrationController := controllers.NewRegistrationController(logger, coordinator)
	identityController := controllers.NewIdentityController(logger, identity, debouncer)
	mux := deliveryhttp.NewRouter(eventController, registrationController, identityController)

	var handler http.Handler = middleware.LoggingMiddleware(logger, mux)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.EventAPITimeout*2 + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "event_api", cfg.EventAPIURL, "session_backend", cfg.SessionBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")
	debouncer.Flush()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}

// openSessionStore builds the SessionStore selected by cfg.SessionBackend.
// The returned func releases any connection it holds.
func openSessionStore(ctx context.Context, cfg *config.Config) (domain.SessionStore, func(), error) {
	noop := func() {}
	switch cfg.SessionBackend {
	case config.SessionBackendMemory:
		return memory.NewSessionRepository(), noop, nil
	case config.SessionBackendRedis:
		client, err := redis.NewClient(ctx, redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, noop, err
		}
		return redis.NewSessionRepository(client, cfg.SessionTTL), func() { _ = client.Close() }, nil
	case config.SessionBackendPostgres:
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, noop, err
		}
		return postgres.NewSessionRepository(db), func() { _ = db.Close() }, nil
	default:
		return file.NewSessionRepository(cfg.SessionFile), noop, nil
	}
}
