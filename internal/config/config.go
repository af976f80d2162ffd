// Package config loads server settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/azizulsheikh/studio/internal/models"
	"github.com/azizulsheikh/studio/internal/oracle"
	"github.com/azizulsheikh/studio/internal/prioritize"
)

// DefaultAdminPassword is the password used when neither ADMIN_PASSWORD_HASH
// nor ADMIN_PASSWORD is set.
const DefaultAdminPassword = "admin123"

// Config holds every setting read at startup.
type Config struct {
	Port        int
	DataDir     string
	AuditDBPath string
	StaticPath  string

	AdminPasswordHash string
	AdminPassword     string
	JWTSecret         string
	TokenTTL          time.Duration

	GeminiAPIKey   string
	OracleModel    string
	OracleEndpoint string
	OracleTimeout  time.Duration

	Currency string
}

// UsingDefaultPassword reports whether the admin login falls back to
// DefaultAdminPassword.
func (c *Config) UsingDefaultPassword() bool {
	return c.AdminPasswordHash == "" && c.AdminPassword == DefaultAdminPassword
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		DataDir:           getEnv("DATA_DIR", "./data"),
		StaticPath:        os.Getenv("STATIC_PATH"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", DefaultAdminPassword),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		OracleModel:       getEnv("ORACLE_MODEL", oracle.DefaultModel),
		OracleEndpoint:    getEnv("ORACLE_ENDPOINT", oracle.DefaultEndpoint),
		Currency:          getEnv("CURRENCY", models.DefaultCurrency),
	}
	cfg.AuditDBPath = getEnv("AUDIT_DB_PATH", cfg.DataDir+"/audit.db")

	var errs []error

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT %q", os.Getenv("PORT")))
	}
	cfg.Port = port

	if cfg.TokenTTL, err = parseDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		errs = append(errs, err)
	}
	if cfg.OracleTimeout, err = parseDuration("ORACLE_TIMEOUT", prioritize.DefaultTimeout); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}
	return d, nil
}
