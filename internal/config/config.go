// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Upstream    UpstreamConfig
	Retry       RetryConfig
	Aggregation AggregationConfig
	Logging     LoggingConfig
	App         AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"120s"`
}

// UpstreamConfig holds settings for the upstream fare search endpoint.
type UpstreamConfig struct {
	// BaseURL is the root of the fare search API.
	BaseURL string `env:"UPSTREAM_BASE_URL" envDefault:"https://www.ryanair.com/api/farfnd/v4"`

	// Timeout bounds a single upstream request.
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"12s"`

	// ResultLimit is the maximum fares requested per lookup.
	ResultLimit int `env:"UPSTREAM_RESULT_LIMIT" envDefault:"16"`

	// MaxPrecallDelay is the upper bound of the random pause applied
	// before each upstream call to avoid triggering abuse detection.
	MaxPrecallDelay time.Duration `env:"UPSTREAM_MAX_PRECALL_DELAY" envDefault:"1500ms"`
}

// RetryConfig holds retry policy settings for upstream lookups.
type RetryConfig struct {
	MaxAttempts    int           `env:"RETRY_MAX_ATTEMPTS" envDefault:"3"`
	InitialDelay   time.Duration `env:"RETRY_INITIAL_DELAY" envDefault:"300ms"`
	MaxDelay       time.Duration `env:"RETRY_MAX_DELAY" envDefault:"5s"`
	Multiplier     float64       `env:"RETRY_MULTIPLIER" envDefault:"2.0"`
	JitterFactor   float64       `env:"RETRY_JITTER_FACTOR" envDefault:"0.25"`
	RateLimitFloor time.Duration `env:"RETRY_RATE_LIMIT_FLOOR" envDefault:"2s"`
}

// AggregationConfig holds settings for the aggregation engine.
type AggregationConfig struct {
	// BatchSize is the number of lookups executed concurrently.
	BatchSize int `env:"AGG_BATCH_SIZE" envDefault:"3"`

	// BatchPause is the smoothing pause between consecutive batches.
	BatchPause time.Duration `env:"AGG_BATCH_PAUSE" envDefault:"500ms"`

	// ResultLimit caps the records returned over HTTP when the request
	// does not specify its own limit. Zero means unlimited.
	ResultLimit int `env:"AGG_RESULT_LIMIT" envDefault:"5"`

	// Origin is the default departure airport searches fan out from.
	Origin string `env:"AGG_ORIGIN" envDefault:"BER"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if !strings.HasPrefix(cfg.Upstream.BaseURL, "http://") && !strings.HasPrefix(cfg.Upstream.BaseURL, "https://") {
		return fmt.Errorf("UPSTREAM_BASE_URL must be an http(s) URL, got %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	if cfg.Upstream.ResultLimit < 1 {
		return fmt.Errorf("UPSTREAM_RESULT_LIMIT must be at least 1, got %d", cfg.Upstream.ResultLimit)
	}
	if cfg.Upstream.MaxPrecallDelay < 0 {
		return fmt.Errorf("UPSTREAM_MAX_PRECALL_DELAY must not be negative")
	}

	if cfg.Retry.MaxAttempts < 1 {
		return fmt.Errorf("RETRY_MAX_ATTEMPTS must be at least 1, got %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Retry.InitialDelay <= 0 {
		return fmt.Errorf("RETRY_INITIAL_DELAY must be positive")
	}
	if cfg.Retry.MaxDelay < cfg.Retry.InitialDelay {
		return fmt.Errorf("RETRY_MAX_DELAY (%s) must not be less than RETRY_INITIAL_DELAY (%s)",
			cfg.Retry.MaxDelay, cfg.Retry.InitialDelay)
	}
	if cfg.Retry.Multiplier < 1.0 {
		return fmt.Errorf("RETRY_MULTIPLIER must be at least 1.0, got %v", cfg.Retry.Multiplier)
	}
	if cfg.Retry.JitterFactor < 0 || cfg.Retry.JitterFactor > 1 {
		return fmt.Errorf("RETRY_JITTER_FACTOR must be between 0.0 and 1.0, got %v", cfg.Retry.JitterFactor)
	}

	if cfg.Aggregation.BatchSize < 1 {
		return fmt.Errorf("AGG_BATCH_SIZE must be at least 1, got %d", cfg.Aggregation.BatchSize)
	}
	if cfg.Aggregation.BatchPause < 0 {
		return fmt.Errorf("AGG_BATCH_PAUSE must not be negative")
	}
	if cfg.Aggregation.ResultLimit < 0 {
		return fmt.Errorf("AGG_RESULT_LIMIT must not be negative")
	}
	if len(cfg.Aggregation.Origin) != 3 || cfg.Aggregation.Origin != strings.ToUpper(cfg.Aggregation.Origin) {
		return fmt.Errorf("AGG_ORIGIN must be a 3-letter IATA code, got %q", cfg.Aggregation.Origin)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
