package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// CatalogPath points at a YAML catalog definition. Empty means the
	// catalog compiled into the binary.
	CatalogPath   string `env:"CATALOG_PATH"`
	ContactDBPath string `env:"CONTACT_DB_PATH" envDefault:"data/contact.db"`

	LogMode  string `env:"LOG_MODE" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`

	PageSizeDefault  int `env:"PAGE_SIZE_DEFAULT" envDefault:"6"`
	PageSizeMax      int `env:"PAGE_SIZE_MAX" envDefault:"50"`
	FeaturedServices int `env:"FEATURED_SERVICES" envDefault:"3"`
	RecentProjects   int `env:"RECENT_PROJECTS" envDefault:"3"`
}

// Load reads the given dotenv files (".env" when none are named), then
// parses the process environment. A missing dotenv file is not an error.
// Variables already set in the environment win over dotenv values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return Parse(env.ToMap(os.Environ()))
}

// Parse builds a Config from an explicit environment
func Parse(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.ServerAddr == "" {
		errs = append(errs, errors.New("SERVER_ADDR must not be empty"))
	}
	if c.PageSizeDefault <= 0 {
		errs = append(errs, fmt.Errorf("PAGE_SIZE_DEFAULT must be positive, got %d", c.PageSizeDefault))
	}
	if c.PageSizeMax <= 0 {
		errs = append(errs, fmt.Errorf("PAGE_SIZE_MAX must be positive, got %d", c.PageSizeMax))
	}
	if c.PageSizeDefault > c.PageSizeMax {
		errs = append(errs, fmt.Errorf("PAGE_SIZE_DEFAULT (%d) exceeds PAGE_SIZE_MAX (%d)", c.PageSizeDefault, c.PageSizeMax))
	}
	if c.FeaturedServices < 0 {
		errs = append(errs, fmt.Errorf("FEATURED_SERVICES must not be negative, got %d", c.FeaturedServices))
	}
	if c.RecentProjects < 0 {
		errs = append(errs, fmt.Errorf("RECENT_PROJECTS must not be negative, got %d", c.RecentProjects))
	}
	switch c.LogMode {
	case "development", "production":
	default:
		errs = append(errs, fmt.Errorf("LOG_MODE must be development or production, got %q", c.LogMode))
	}
	return errors.Join(errs...)
}
