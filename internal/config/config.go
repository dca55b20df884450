package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	HTTPAddr   string        `env:"HTTP_ADDR" envDefault:":8080"`
	DBHost     string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort     uint          `env:"DB_PORT" envDefault:"5432"`
	DBUser     string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string        `env:"DB_NAME" envDefault:"concierge"`
	DBSSLMode  string        `env:"DB_SSL_MODE" envDefault:"disable"`
	JWTSecret  string        `env:"JWT_SECRET" envDefault:"dev-secret"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
