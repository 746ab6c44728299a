package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreBolt     = "bolt"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// Storage
	StoreDriver   string
	DatabaseURL   string
	EnableDBCheck bool
	SQLitePath    string
	BoltPath      string

	// ChartFile replaces the built-in chart of accounts when set (.yaml, .yml, .toml or .csv).
	ChartFile string

	// HTTP surface
	RateLimit          string // ulule limiter format, e.g. "120-M"; empty disables limiting
	CORSAllowedOrigins []string
	MetricsEnabled     bool
	SentryDSN          string
}

// LoadConfig loads configuration from defaults, an optional config file, the .env file if
// present and environment variables, later sources winning.
func LoadConfig(configFile string) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("SQLITE_PATH", "pos_ledger.db")
	v.SetDefault("BOLT_PATH", "pos_ledger.bolt")
	v.SetDefault("CHART_FILE", "")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("SENTRY_DSN", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	// Environment variables override both defaults and the config file.
	v.AutomaticEnv()

	cfg := &Config{
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		StoreDriver:        strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		DatabaseURL:        v.GetString("PGSQL_URL"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		SQLitePath:         v.GetString("SQLITE_PATH"),
		BoltPath:           v.GetString("BOLT_PATH"),
		ChartFile:          v.GetString("CHART_FILE"),
		RateLimit:          strings.TrimSpace(v.GetString("RATE_LIMIT")),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		MetricsEnabled:     v.GetBool("METRICS_ENABLED"),
		SentryDSN:          v.GetString("SENTRY_DSN"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v.GetString("LOG_LEVEL"), err)
	}

	switch cfg.StoreDriver {
	case StoreMemory, StoreSQLite, StoreBolt:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("STORE_DRIVER=%s requires PGSQL_URL", StorePostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want memory, postgres, sqlite or bolt)", cfg.StoreDriver)
	}

	return cfg, nil
}

// splitList parses a comma separated setting, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
