package catalog

import "errors"

var (
	// ErrInvalidPage indicates a page number below 1.
	ErrInvalidPage = errors.New("page must be at least 1")
	// ErrInvalidLimit indicates a non-positive page size.
	ErrInvalidLimit = errors.New("limit must be greater than zero")
)

// PageOptions selects one page of a result set. Page is 1-indexed.
type PageOptions struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination describes where a page sits in the full result set
type Pagination struct {
	CurrentPage     int  `json:"current_page"`
	TotalPages      int  `json:"total_pages"`
	TotalItems      int  `json:"total_items"`
	HasNextPage     bool `json:"has_next_page"`
	HasPreviousPage bool `json:"has_previous_page"`
}

// Page is one slice of a result set plus its position metadata
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Paginate returns page opts.Page of items. A page past the end is not an
// error: it comes back empty with accurate metadata.
func Paginate[T any](items []T, opts PageOptions) (Page[T], error) {
	if opts.Limit <= 0 {
		return Page[T]{}, ErrInvalidLimit
	}
	if opts.Page < 1 {
		return Page[T]{}, ErrInvalidPage
	}

	total := len(items)
	totalPages := total / opts.Limit
	if total%opts.Limit != 0 {
		totalPages++
	}

	// opts.Page <= totalPages keeps the offset within len(items)
	data := []T{}
	if opts.Page <= totalPages {
		start := (opts.Page - 1) * opts.Limit
		end := total
		if total-start > opts.Limit {
			end = start + opts.Limit
		}
		data = append(data, items[start:end]...)
	}

	return Page[T]{
		Data: data,
		Pagination: Pagination{
			CurrentPage:     opts.Page,
			TotalPages:      totalPages,
			TotalItems:      total,
			HasNextPage:     opts.Page < totalPages,
			HasPreviousPage: opts.Page > 1,
		},
	}, nil
}

// LimitConfig bounds page sizes accepted from callers
type LimitConfig struct {
	Default int
	Max     int
}

// ClampLimit applies defaults and limits to a requested page size
func ClampLimit(value int, cfg LimitConfig) int {
	limit := value
	if limit <= 0 {
		limit = cfg.Default
	}
	if cfg.Max > 0 && limit > cfg.Max {
		limit = cfg.Max
	}
	if limit <= 0 {
		limit = 1
	}
	return limit
}
