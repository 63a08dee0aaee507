package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/everafter/planner-api/internal/api"
	"github.com/everafter/planner-api/internal/infrastructure/config"
	"github.com/everafter/planner-api/internal/infrastructure/db/postgres"
	"github.com/everafter/planner-api/internal/infrastructure/db/redis"
	"github.com/everafter/planner-api/pkg/logger"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level: cfg.LogLevel,
		Env:   cfg.Env,
	})

	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			log.Fatal().Msg("JWT_SECRET is required outside development")
		}
		cfg.JWTSecret = "dev-secret-change-me"
		log.Warn().Msg("JWT_SECRET not set, using development default")
	}

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL, connectTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}
	log.Info().Msg("database schema ready")

	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{
			Addr:    cfg.Redis.Addr,
			DB:      cfg.Redis.DB,
			Timeout: connectTimeout,
		})
		if err != nil {
			// The cache is an optimization; run without it rather than refuse to start.
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, content cache disabled")
		} else {
			rdb = client
			defer client.Close()
		}
	}

	e := api.NewRouter(pool, rdb, cfg)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
