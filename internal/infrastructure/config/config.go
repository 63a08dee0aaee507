package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs identity tokens. Required outside development.
	JWTSecret string `env:"JWT_SECRET"`
	// TokenTTL bounds token lifetime. Zero means non-expiring, which is the
	// deployed default; set a duration for production.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=0"`

	// FrontendURL is the allowed CORS origin for the wedding site.
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:5173"`

	DatabaseURL string `env:"DATABASE_URL, default=postgres://localhost:5432/planner?sslmode=disable"`

	Redis RedisConfig
}

type RedisConfig struct {
	// Addr empty disables the content cache entirely.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
