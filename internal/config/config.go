package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

const (
	defaultDBPath    = "./dev.db"
	defaultPort      = "8080"
	defaultEnv       = envDevelopment
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	envDevelopment = "development"
	envProduction  = "production"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port             string
	DBPath           string
	Env              string
	LogLevel         string
	LogFormat        string
	RecaptchaSiteKey string
	SeedOnStart      bool

	// Warnings lists non-fatal problems found while loading, for the caller
	// to log once a logger exists.
	Warnings []string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		Port:             getEnv("PORT", defaultPort),
		DBPath:           getEnv("DB_PATH", defaultDBPath),
		Env:              strings.ToLower(getEnv("APP_ENV", defaultEnv)),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		LogFormat:        strings.ToLower(getEnv("LOG_FORMAT", defaultLogFormat)),
		RecaptchaSiteKey: os.Getenv("RECAPTCHA_SITE_KEY"),
	}
	cfg.SeedOnStart = cfg.getEnvBool("SEED_ON_START", true)

	if cfg.RecaptchaSiteKey == "" && !cfg.IsDev() {
		cfg.Warnings = append(cfg.Warnings, "RECAPTCHA_SITE_KEY is not set; bot verification is simulated")
	}

	return cfg
}

// IsDev reports whether the application runs in development mode.
func (c Config) IsDev() bool {
	return c.Env == envDevelopment
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var err error

	if port, convErr := strconv.Atoi(c.Port); convErr != nil {
		err = multierr.Append(err, fmt.Errorf("PORT %q must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		err = multierr.Append(err, fmt.Errorf("PORT %d must be between 1 and 65535", port))
	}

	if c.DBPath == "" {
		err = multierr.Append(err, fmt.Errorf("DB_PATH must not be empty"))
	}

	if c.Env != envDevelopment && c.Env != envProduction {
		err = multierr.Append(err, fmt.Errorf("APP_ENV %q must be %s or %s", c.Env, envDevelopment, envProduction))
	}

	if _, levelErr := zapcore.ParseLevel(c.LogLevel); levelErr != nil {
		err = multierr.Append(err, fmt.Errorf("LOG_LEVEL: %w", levelErr))
	}

	if c.LogFormat != "console" && c.LogFormat != "json" {
		err = multierr.Append(err, fmt.Errorf("LOG_FORMAT %q must be console or json", c.LogFormat))
	}

	return err
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("%s=%q is not a boolean, using %v", key, v, fallback))
		return fallback
	}
	return b
}
