package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const envDevelopment = "development"

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=production"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// DegradedStart keeps the process serving when MongoDB or Redis are
	// unreachable at startup.
	DegradedStart bool `env:"STORE_DEGRADED_START, default=false"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Ingest    IngestConfig
	Login     LoginConfig
	Simulator SimulatorConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=fleet_tracking"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type IngestConfig struct {
	Workers int `env:"DISPATCH_WORKERS, default=8"`
}

type LoginConfig struct {
	RatePerSec float64 `env:"LOGIN_RATE_PER_SEC, default=1"`
	Burst      int     `env:"LOGIN_BURST,        default=5"`
}

type SimulatorConfig struct {
	Enabled  bool          `env:"SIMULATOR_ENABLED,  default=false"`
	Interval time.Duration `env:"SIMULATOR_INTERVAL, default=5s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through l and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings the service cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.Ingest.Workers <= 0 {
		errs = append(errs, errors.New("DISPATCH_WORKERS must be positive"))
	}
	if c.Login.RatePerSec <= 0 || c.Login.Burst <= 0 {
		errs = append(errs, errors.New("LOGIN_RATE_PER_SEC and LOGIN_BURST must be positive"))
	}
	if c.Simulator.Enabled && c.Simulator.Interval <= 0 {
		errs = append(errs, errors.New("SIMULATOR_INTERVAL must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// IsDevelopment reports whether development-only endpoints may be served.
func (c *Config) IsDevelopment() bool {
	return c.Env == envDevelopment
}
