// Package config loads app config from the environment and an optional .env file.
package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// HTTPAddr is the address the API listens on (e.g. :3000).
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// DatabaseURL is the Postgres DSN. Empty disables login and saved profiles;
	// the public plan endpoints still work.
	DatabaseURL string `mapstructure:"DB_URL"`
	// CORSAllowedOrigins is a comma-separated list of origins allowed to call the API.
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	// GinMode is passed to gin.SetMode: debug, release or test.
	GinMode string `mapstructure:"GIN_MODE"`
}

// Load reads .env (if present), then builds and validates Config from the
// environment via Viper. Env vars already set win over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load() // missing .env is fine (CI, containers)

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":3000")
	v.SetDefault("DB_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("GIN_MODE", "release")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("config: HTTP_ADDR must be set")
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, errors.New("config: GIN_MODE must be debug, release or test")
	}

	return &cfg, nil
}

// AllowedOrigins returns the CORS origins from the comma-separated config.
func (c *Config) AllowedOrigins() []string {
	if c == nil || c.CORSAllowedOrigins == "" {
		return nil
	}
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// DatabaseEnabled reports whether a DSN was configured.
func (c *Config) DatabaseEnabled() bool {
	return c != nil && c.DatabaseURL != ""
}
