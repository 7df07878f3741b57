// Package app wires configuration, the catalog, the inquiry store and the
// HTTP routes into one runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/config"
	"modernwebagency.com/internal/handlers"
	"modernwebagency.com/internal/server"
	"modernwebagency.com/internal/services"
	"modernwebagency.com/internal/storage/sqlite"
	"modernwebagency.com/internal/validation"
)

// App is the assembled application
type App struct {
	cfg      *config.Config
	logger   *zap.Logger
	catalog  *catalog.Store
	inbox    *sqlite.Store
	services handlers.Services
}

// LoadCatalog reads the catalog at path, or the embedded one when path is
// empty, and rejects it unless every record validates
func LoadCatalog(path string, v *validation.Validator) (*catalog.Store, error) {
	var (
		ds  catalog.Dataset
		err error
	)
	if path == "" {
		ds, err = catalog.DefaultDataset()
	} else {
		ds, err = catalog.DecodeFile(path)
	}
	if err != nil {
		return nil, err
	}
	if err := v.ValidateDataset(ds); err != nil {
		return nil, err
	}
	return catalog.NewStore(ds)
}

// LimitsFrom converts configuration into service limits
func LimitsFrom(cfg *config.Config) services.Limits {
	return services.Limits{
		Page:             catalog.LimitConfig{Default: cfg.PageSizeDefault, Max: cfg.PageSizeMax},
		FeaturedServices: cfg.FeaturedServices,
		RecentProjects:   cfg.RecentProjects,
	}
}

// New loads the catalog, opens the inquiry store and builds the services
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	v := validation.New()
	store, err := LoadCatalog(cfg.CatalogPath, v)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if cfg.ContactDBPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.ContactDBPath), 0o755); err != nil {
			return nil, fmt.Errorf("create contact db dir: %w", err)
		}
	}
	inbox, err := sqlite.Open(ctx, cfg.ContactDBPath)
	if err != nil {
		return nil, fmt.Errorf("open contact db: %w", err)
	}

	limits := LimitsFrom(cfg)
	a := &App{
		cfg:     cfg,
		logger:  logger,
		catalog: store,
		inbox:   inbox,
		services: handlers.Services{
			Projects:  services.NewProjectService(store, limits),
			Offerings: services.NewOfferingService(store, limits),
			Team:      services.NewTeamService(store, limits),
			Site:      services.NewSiteService(store),
			Contact:   services.NewContactService(inbox, v, logger),
		},
	}
	logger.Info("catalog loaded",
		zap.Int("projects", len(store.Projects())),
		zap.Int("services", len(store.Services())),
		zap.Int("team_members", len(store.TeamMembers())),
	)
	return a, nil
}

// Services exposes the assembled services
func (a *App) Services() handlers.Services {
	return a.services
}

// Handler returns the API router
func (a *App) Handler() http.Handler {
	return handlers.SetupRoutes(a.services, a.logger)
}

// Run serves the API on the configured address until ctx is done
func (a *App) Run(ctx context.Context) error {
	return server.New(a.cfg.ServerAddr, a.Handler(), a.cfg.ShutdownTimeout, a.logger).ListenAndServe(ctx)
}

// Close releases the inquiry store
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	var errs []error
	if err := a.inbox.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close contact db: %w", err))
	}
	return errors.Join(errs...)
}
