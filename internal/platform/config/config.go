// Package config loads process-wide configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting the server process needs. It is parsed once
// at startup and passed by reference into each component, so tests can
// inject deterministic secrets and stores instead of reading ambient state.
type Config struct {
	// Port is the HTTP listen port.
	Port string `env:"PORT" envDefault:"4000"`

	// JWTSecret signs session tokens. It must be set in production.
	JWTSecret string `env:"JWT_SECRET"`

	// TokenLifetime bounds how long a session token stays valid.
	TokenLifetime time.Duration `env:"TOKEN_LIFETIME" envDefault:"72h"`

	// Database connection settings.
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"askbox"`

	// RunMigrations toggles schema auto-migration at startup.
	RunMigrations bool `env:"RUN_MIGRATIONS"`

	// Redis settings for the optional answered-list cache.
	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// CacheTTL bounds how long cached answered lists are served.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DSN builds the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// RedisAddr returns the Redis address, or an empty string when Redis is
// not configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}
