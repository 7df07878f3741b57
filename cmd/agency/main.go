package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"modernwebagency.com/internal/app"
	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/config"
	"modernwebagency.com/internal/logging"
	"modernwebagency.com/internal/validation"
)

// cli carries the state the persistent flags and pre-run hook set up
type cli struct {
	envFile     string
	catalogPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "agency",
		Short: "Modern Web Agency catalog server and tools",
		Long: `agency serves the agency's portfolio, services and team catalog over HTTP
and accepts contact form submissions.

Configuration comes from the environment (and an optional .env file):
SERVER_ADDR, CATALOG_PATH, CONTACT_DB_PATH, LOG_MODE, LOG_LEVEL, LOG_FILE,
PAGE_SIZE_DEFAULT, PAGE_SIZE_MAX, FEATURED_SERVICES, RECENT_PROJECTS.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if c.envFile != "" {
				files = append(files, c.envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if c.catalogPath != "" {
				cfg.CatalogPath = c.catalogPath
			}
			c.cfg = cfg

			c.logger, err = logging.New(logging.Config{Mode: cfg.LogMode, Level: cfg.LogLevel, File: cfg.LogFile})
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&c.envFile, "env-file", "", "dotenv file to load (default: .env when present)")
	root.PersistentFlags().StringVar(&c.catalogPath, "catalog", "", "catalog YAML file (overrides CATALOG_PATH)")

	root.AddCommand(
		c.serveCmd(),
		c.projectsCmd(),
		c.servicesCmd(),
		c.teamCmd(),
		c.statsCmd(),
		c.validateCmd(),
		c.exportCmd(),
		c.inquiriesCmd(),
	)
	return root
}

// loadCatalog returns the validated catalog the configuration points at
func (c *cli) loadCatalog() (*catalog.Store, error) {
	return app.LoadCatalog(c.cfg.CatalogPath, validation.New())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
