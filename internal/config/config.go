package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// storage: "postgres" or "local"
	StorageType    string `toml:"storage_type"`
	LocalStorePath string `toml:"local_store_path"`
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis: progress cache + rate limiter
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// fitness defaults
	DefaultOwnerID          string `toml:"default_owner_id"`
	DefaultRestSeconds      int    `toml:"default_rest_seconds"`
	SessionsRateLimitPerMin int    `toml:"sessions_rate_limit_per_min"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

const (
	StorageTypePostgres = "postgres"
	StorageTypeLocal    = "local"
)

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	if cfg.StorageType == "" {
		cfg.StorageType = StorageTypePostgres
	}
	if cfg.StorageType != StorageTypePostgres && cfg.StorageType != StorageTypeLocal {
		return nil, fmt.Errorf("unknown storage type: %s", cfg.StorageType)
	}
	if cfg.DefaultRestSeconds <= 0 {
		cfg.DefaultRestSeconds = 90
	}
	if cfg.SessionsRateLimitPerMin <= 0 {
		cfg.SessionsRateLimitPerMin = 30
	}

	return cfg, nil
}

// Env holds settings taken from the process environment rather than
// the TOML file: secrets and per-deployment overrides.
type Env struct {
	RedisPassword    string `env:"FITPROGRESS_REDIS_PASS"`
	SentryDSN        string `env:"SENTRY_DSN"`
	DefaultOwnerID   string `env:"FITPROGRESS_OWNER"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED"`
}

func LoadEnv(ctx context.Context) (*Env, error) {
	var e Env
	if err := envconfig.Process(ctx, &e); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	return &e, nil
}
