package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/vickinc/eazybizy/internal/core/domain"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// DefaultReportingCurrency seeds new companies that do not name one.
	DefaultReportingCurrency string
	// StatementTimeout bounds a single statement or bundle run. Zero disables it.
	StatementTimeout time.Duration

	CacheSize       int
	RateCacheTTL    time.Duration
	AccountCacheTTL time.Duration

	// RateLimit uses the ulule limiter format, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "eazybizy")
	v.SetDefault("DEFAULT_REPORTING_CURRENCY", "USD")
	v.SetDefault("STATEMENT_TIMEOUT", "30s")
	v.SetDefault("CACHE_SIZE", 256)
	v.SetDefault("RATE_CACHE_TTL", "5m")
	v.SetDefault("ACCOUNT_CACHE_TTL", "1m")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:              v.GetString("PGSQL_URL"),
		Port:                     v.GetString("PORT"),
		IsProduction:             v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:            v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:           v.GetString("MIGRATIONS_PATH"),
		JWTSecret:                v.GetString("JWT_SECRET"),
		JWTIssuer:                v.GetString("JWT_ISSUER"),
		DefaultReportingCurrency: strings.ToUpper(strings.TrimSpace(v.GetString("DEFAULT_REPORTING_CURRENCY"))),
		CacheSize:                v.GetInt("CACHE_SIZE"),
		RateLimit:                v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if !domain.ValidCurrencyCode(cfg.DefaultReportingCurrency) {
		return nil, fmt.Errorf("DEFAULT_REPORTING_CURRENCY must be 3 to 10 letters or digits, got %q", cfg.DefaultReportingCurrency)
	}

	var err error
	if cfg.JWTExpiryDuration, err = duration(v, "JWT_EXPIRY_DURATION"); err != nil {
		return nil, err
	}
	if cfg.StatementTimeout, err = duration(v, "STATEMENT_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.RateCacheTTL, err = duration(v, "RATE_CACHE_TTL"); err != nil {
		return nil, err
	}
	if cfg.AccountCacheTTL, err = duration(v, "ACCOUNT_CACHE_TTL"); err != nil {
		return nil, err
	}

	for _, o := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}
	return cfg, nil
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}
