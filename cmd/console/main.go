package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"adminconsole/internal/activity"
	"adminconsole/internal/api"
	"adminconsole/internal/backend"
	"adminconsole/internal/cache"
	"adminconsole/internal/config"
	"adminconsole/internal/database"
	"adminconsole/internal/handlers"
	"adminconsole/internal/ids"
	"adminconsole/internal/log"
	"adminconsole/internal/repository"
	"adminconsole/internal/server"
	"adminconsole/internal/service"
	"adminconsole/internal/session"
	"adminconsole/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.Component(log.New(cfg.Environment), "console")

	ctx := context.Background()

	if cfg.Session.Secret == "" {
		if cfg.Environment == "production" {
			logger.Fatal().Msg("session.secret is required in production")
		}
		cfg.Session.Secret = ids.New()
		logger.Warn().Msg("session.secret not set; using a per-process secret, sessions will not survive restarts")
	}

	client := backend.NewClient(cfg.Backend, log.Component(logger, "backend"))
	apis := api.New(client, cfg.Backend)

	deps := handlers.Deps{
		Log:    logger,
		Config: cfg,
		APIs:   apis,
	}

	var (
		redisClient *redis.Client
		dbPool      *pgxpool.Pool
		sessions    session.Store
	)

	switch cfg.Session.Store {
	case "memory":
		sessions = session.NewMemoryStore()
		logger.Warn().Msg("using in-memory sessions")
	default:
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		sessions = repository.NewSessionRepository(redisClient)
		deps.Recorder = activity.NewPublisher(redisClient, cfg.Activity.Stream, log.Component(logger, "activity"))
		deps.Checks = append(deps.Checks, handlers.HealthCheck{Name: "redis", Ping: cache.Pinger(redisClient)})
	}

	if cfg.Postgres.DSN != "" {
		dbPool, err = database.NewPostgresPool(ctx, cfg.Postgres)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect postgres")
		}
		activityRepo := repository.NewActivityRepository(dbPool)
		if err := activityRepo.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to prepare activity schema")
		}
		deps.Activity = activityRepo
		deps.Checks = append(deps.Checks, handlers.HealthCheck{Name: "database", Ping: dbPool.Ping})
	} else {
		logger.Warn().Msg("postgres.dsn not set; activity log is not readable from the console")
	}

	if cfg.Storage.Endpoint != "" {
		objectStore, err := storage.NewObjectStore(cfg.Storage)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to init object store")
		}
		if err := objectStore.EnsureBucket(ctx); err != nil {
			logger.Warn().Err(err).Msg("ensure bucket failed")
		}
		deps.Uploads = service.NewUploadService(objectStore, cfg.Storage, log.Component(logger, "uploads"))
		deps.Checks = append(deps.Checks, handlers.HealthCheck{Name: "storage", Ping: objectStore.Ping})
	} else {
		logger.Warn().Msg("storage.endpoint not set; product image upload disabled")
	}

	deps.Auth = service.NewAuthService(apis.Auth, sessions, cfg.Session, log.Component(logger, "auth"))

	httpServer := server.NewHTTPServer(cfg, logger, handlers.NewHandlerSet(deps))

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, dbPool, redisClient)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, db *pgxpool.Pool, redisClient *redis.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	if db != nil {
		db.Close()
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("redis close error")
		}
	}

	logger.Info().Msg("console exited cleanly")
}
