package config

import (
	"fmt"
	"net/mail"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Seed    SeedConfig
	Auth    AuthConfig
	Tracing TracingConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level   string
	Format  string // "json" or "console"
	Service string
}

// SeedConfig selects the dataset the stores start with.
type SeedConfig struct {
	// File is a JSON (or gzipped JSON, by ".gz" suffix) dataset. Empty means
	// the embedded default dataset.
	File string
}

// AuthConfig holds the settings of the stub identity collaborator.
type AuthConfig struct {
	AdminEmailPrefix string
	StubUserName     string
	StubUserEmail    string
}

// TracingConfig holds OpenTelemetry tracing configuration.
type TracingConfig struct {
	ServiceName string
	Exporter    string // "none" or "stdout"
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Logger: LoggerConfig{
			Level:   getEnv("LOG_LEVEL", "info"),
			Format:  getEnv("LOG_FORMAT", "json"),
			Service: getEnv("SERVICE_NAME", "simusmart"),
		},
		Seed: SeedConfig{
			File: getEnv("SEED_FILE", ""),
		},
		Auth: AuthConfig{
			AdminEmailPrefix: getEnv("ADMIN_EMAIL_PREFIX", "admin@"),
			StubUserName:     getEnv("STUB_USER_NAME", "Alice Johnson"),
			StubUserEmail:    getEnv("STUB_USER_EMAIL", "alice.j@example.com"),
		},
		Tracing: TracingConfig{
			ServiceName: getEnv("TRACING_SERVICE_NAME", "simusmart-api"),
			Exporter:    getEnv("TRACING_EXPORTER", "none"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Auth.AdminEmailPrefix == "" {
		return fmt.Errorf("admin email prefix is required")
	}

	if strings.TrimSpace(c.Auth.StubUserName) == "" {
		return fmt.Errorf("stub user name is required")
	}

	if _, err := mail.ParseAddress(c.Auth.StubUserEmail); err != nil {
		return fmt.Errorf("invalid stub user email: %s", c.Auth.StubUserEmail)
	}

	if c.Tracing.Exporter != "none" && c.Tracing.Exporter != "stdout" {
		return fmt.Errorf("invalid tracing exporter: %s (must be none or stdout)", c.Tracing.Exporter)
	}

	if c.Seed.File != "" {
		if info, err := os.Stat(c.Seed.File); err != nil {
			return fmt.Errorf("seed file is not readable: %w", err)
		} else if info.IsDir() {
			return fmt.Errorf("seed file is a directory: %s", c.Seed.File)
		}
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
