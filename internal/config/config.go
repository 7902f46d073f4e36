package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultAddr        = ":8080"
	defaultDatabaseURL = "crm.db"
	defaultCurrentUser = "Shashank M Y"
	defaultGinMode     = "debug"
	defaultUserHeader  = "X-User-Name"
)

// Config holds server runtime settings loaded from the environment.
type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string
	GinMode     string

	// CurrentUser is the display name used for the "Me" owner filter when a
	// request carries no identity header. Single-tenant dev fallback.
	CurrentUser string
	UserHeader  string
}

// Load reads configuration from environment variables, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = strings.TrimSpace(getEnv("ADDR", defaultAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.GinMode = strings.TrimSpace(getEnv("GIN_MODE", defaultGinMode))
	cfg.CurrentUser = strings.TrimSpace(getEnv("CURRENT_USER", defaultCurrentUser))
	cfg.UserHeader = strings.TrimSpace(getEnv("USER_HEADER", defaultUserHeader))

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Addr == "" {
		return fmt.Errorf("ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.CurrentUser == "" {
		return fmt.Errorf("CURRENT_USER must not be empty")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
