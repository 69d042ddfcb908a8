package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"adminconsole/internal/activity"
	"adminconsole/internal/cache"
	"adminconsole/internal/config"
	"adminconsole/internal/database"
	"adminconsole/internal/jobs"
	"adminconsole/internal/log"
	"adminconsole/internal/queue"
	"adminconsole/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.Component(log.New(cfg.Environment), "activity-worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Postgres.DSN == "" {
		logger.Fatal().Msg("postgres.dsn is required")
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis connection failed")
	}
	defer redisClient.Close()

	dbPool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer dbPool.Close()

	activityRepo := repository.NewActivityRepository(dbPool)
	if err := activityRepo.EnsureSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare activity schema")
	}

	processor := activity.NewProcessor(activityRepo, cfg.Activity.Retention, logger)
	consumer := queue.NewConsumer(
		redisClient,
		cfg.Activity.Stream,
		cfg.Activity.Group,
		cfg.Activity.Consumer,
		cfg.Activity.ClaimInterval,
		logger,
		processor,
	)

	publisher := activity.NewPublisher(redisClient, cfg.Activity.Stream, logger)
	scheduler := jobs.NewScheduler(publisher, cfg.Activity.PruneSchedule, logger)
	if err := scheduler.Start(); err != nil {
		logger.Error().Err(err).Msg("scheduler start failed")
	}
	defer scheduler.Stop()

	logger.Info().Str("stream", cfg.Activity.Stream).Str("group", cfg.Activity.Group).Msg("activity worker started")

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("consumer stopped unexpectedly")
	}
	logger.Info().Msg("shutdown signal received")
}
