package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bakery-server/config"
	"bakery-server/di"
)

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.Env == config.ENV_LOCAL {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, reading configuration from the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container := di.NewContainer(cfg)
	if closer, ok := container.RedisClient.(io.Closer); ok {
		defer closer.Close()
	}

	log.Info().Msg("Bootstrapping store config")
	container.StoreConfigRefresherService.Bootstrap(ctx)

	log.Info().Dur("interval", cfg.StatusRefreshInterval).Msg("Starting periodic job")
	container.StoreConfigRefresherService.StartPeriodicJob(ctx, cfg.StatusRefreshInterval)

	if err := container.BakeryHttpServer.Start(ctx); err != nil {
		log.Error().Err(err).Msg("Server failed")
	}
}
