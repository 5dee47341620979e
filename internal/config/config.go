package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var (
	ErrDatabaseURLMissing = errors.New("database URL is not set: provide POSTGRES_URL or -d")
	ErrAuthSecretMissing  = errors.New("session secret is not set: provide AUTH_SECRET or -s")
)

type Config struct {
	Address       string        `env:"RUN_ADDRESS"    envDefault:"localhost:8080"`
	Database      string        `env:"POSTGRES_URL"`
	LogLvl        string        `env:"LOG_LVL"        envDefault:"info"`
	AuthSecret    string        `env:"AUTH_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL"    envDefault:"24h"`
	RevalidateURL string        `env:"REVALIDATE_URL"`
	SeedEnabled   bool          `env:"SEED_ENABLED"   envDefault:"false"`
}

// New reads .env (if any), the environment and then command line flags.
// A missing database URL or session secret is reported immediately.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("can't parse env: %w", err)
	}

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.AuthSecret, "s", cfg.AuthSecret, "session signing secret")
	flag.StringVar(&cfg.RevalidateURL, "r", cfg.RevalidateURL, "view revalidation webhook URL")
	flag.Parse()

	if cfg.Database == "" {
		return nil, ErrDatabaseURLMissing
	}
	if cfg.AuthSecret == "" {
		return nil, ErrAuthSecretMissing
	}

	return cfg, nil
}
