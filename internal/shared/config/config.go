package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration
type Config struct {
	Version     string `env:"VERSION" envDefault:"0.1.0"`
	Port        int    `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	SentryDSN   string `env:"SENTRY_DSN"`
	DatabaseURL string `env:"DATABASE_URL"`

	// JWTSecret signs every issued token. There is deliberately no
	// default: a process without an externally supplied secret must
	// not start.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	// TokenTTL of zero issues tokens without an expiry claim.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"0"`

	UploadDir string `env:"UPLOAD_DIR" envDefault:"public/uploads"`
	PublicDir string `env:"PUBLIC_DIR" envDefault:"public"`

	// PublicListing controls whether recipe listing bypasses the auth gate.
	PublicListing bool `env:"PUBLIC_LISTING" envDefault:"true"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsEnvProd() bool {
	if c.Environment == "prod" && c.SentryDSN != "" {
		return true
	}
	return false
}
