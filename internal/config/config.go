package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	JWT         JWTConfig
	CORS        CORSConfig
	Seed        SeedConfig
	Workflow    WorkflowConfig
	Timekeeping TimekeepingConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	Version  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
	SweepInterval    time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// SeedConfig controls the sample dataset loaded into the in-memory store at startup.
type SeedConfig struct {
	Enabled       bool
	AdminEmail    string
	AdminPassword string
}

// WorkflowConfig switches the approval rules between the permissive legacy behaviour
// and strict transition checking.
type WorkflowConfig struct {
	StrictTransitions  bool
	NormalizeOvernight bool
}

type TimekeepingConfig struct {
	SyncInterval time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Version:  getEnv("APP_VERSION", "v1.0.0"),
	}

	// JWT configuration
	sweepInterval, err := getEnvDuration("TOKEN_SWEEP_INTERVAL", "1h")
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_SWEEP_INTERVAL: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
		SweepInterval:    sweepInterval,
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	config.Seed = SeedConfig{
		Enabled:       getEnvBool("SEED_ENABLED", true),
		AdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@hris.local"),
		AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin12345"),
	}

	config.Workflow = WorkflowConfig{
		StrictTransitions:  getEnvBool("WORKFLOW_STRICT_TRANSITIONS", false),
		NormalizeOvernight: getEnvBool("OVERTIME_NORMALIZE_OVERNIGHT", false),
	}

	// 0 disables the periodic raw punch sync
	syncInterval, err := getEnvDuration("TIMEKEEPING_SYNC_INTERVAL", "0s")
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEKEEPING_SYNC_INTERVAL: %w", err)
	}
	config.Timekeeping = TimekeepingConfig{
		SyncInterval: syncInterval,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.JWT.Secret == "" {
		if c.App.Env != "development" {
			return fmt.Errorf("JWT_SECRET_KEY is required")
		}
		c.JWT.Secret = "development-secret-change-me"
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME is invalid: %w", err)
	}
	if c.Seed.Enabled && len(c.Seed.AdminPassword) < 8 {
		return fmt.Errorf("SEED_ADMIN_PASSWORD must be at least 8 characters")
	}
	if c.Timekeeping.SyncInterval < 0 {
		return fmt.Errorf("TIMEKEEPING_SYNC_INTERVAL must not be negative")
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key, fallback string) (time.Duration, error) {
	return time.ParseDuration(getEnv(key, fallback))
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
