// Package services composes catalog queries and inquiry persistence into
// the operations the HTTP handlers and the CLI expose.
package services

import (
	"errors"
	"fmt"
	"time"

	"modernwebagency.com/internal/catalog"
)

var (
	// ErrNotFound indicates no record has the requested id.
	ErrNotFound = errors.New("not found")
	// ErrInvalidQuery wraps every error caused by caller supplied query values.
	ErrInvalidQuery = errors.New("invalid query")
)

// Limits bounds the page sizes and list lengths the services hand out
type Limits struct {
	Page             catalog.LimitConfig
	FeaturedServices int
	RecentProjects   int
}

// DefaultLimits mirrors the configuration defaults
func DefaultLimits() Limits {
	return Limits{
		Page:             catalog.LimitConfig{Default: 6, Max: 50},
		FeaturedServices: catalog.DefaultFeaturedServices,
		RecentProjects:   catalog.DefaultRecentProjects,
	}
}

// endOfTime stands in for an open upper date bound
var endOfTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
}

// paginate clamps the requested limit and pages items. A zero page means
// the first page; a zero limit means the configured default.
func paginate[T any](items []T, page, limit int, cfg catalog.LimitConfig) (catalog.Page[T], error) {
	if page == 0 {
		page = 1
	}
	if limit < 0 {
		return catalog.Page[T]{}, invalid(catalog.ErrInvalidLimit)
	}
	p, err := catalog.Paginate(items, catalog.PageOptions{Page: page, Limit: catalog.ClampLimit(limit, cfg)})
	if err != nil {
		return catalog.Page[T]{}, invalid(err)
	}
	return p, nil
}
