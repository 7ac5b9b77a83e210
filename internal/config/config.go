// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds every environment-driven setting.
type Config struct {
	// DBPath is the SQLite file holding user state.
	DBPath string
	// CatalogPath optionally replaces the built-in catalog with a YAML file.
	CatalogPath string
	// Seed fixes the recommendation random source; 0 seeds from the clock.
	Seed int64
	// Location is the zone whose calendar days drive streaks.
	Location *time.Location
	// LogUseCases emits service_use_case events to stderr.
	LogUseCases bool
}

// DefaultConfig stores state under ~/.microrest and uses the local zone.
func DefaultConfig() Config {
	path := filepath.Join(".microrest", "microrest.db")
	if home, err := os.UserHomeDir(); err == nil {
		path = filepath.Join(home, ".microrest", "microrest.db")
	}
	return Config{
		DBPath:   path,
		Location: time.Local,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or invalid values.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("MICROREST_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("MICROREST_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("MICROREST_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := os.Getenv("MICROREST_TZ"); v != "" {
		if loc, err := time.LoadLocation(v); err == nil {
			cfg.Location = loc
		}
	}
	if v := os.Getenv("MICROREST_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg
}
