package services

import (
	"fmt"
	"time"

	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/models"
)

// Sort keys accepted by the list operations
const (
	SortDate  = "date"
	SortTitle = "title"
	SortName  = "name"
)

// ProjectQuery narrows, orders and pages the project list. Zero values
// switch each step off: an empty Sort keeps definition order.
type ProjectQuery struct {
	Category     models.ProjectCategory
	Query        string
	Fields       []catalog.ProjectField
	Tech         string
	TechCategory models.TechnologyCategory
	From         time.Time
	To           time.Time
	Featured     bool
	Sort         string
	Order        catalog.Direction
	Page         int
	Limit        int
}

// ProjectService handles project-related operations
type ProjectService struct {
	store  *catalog.Store
	limits Limits
}

// NewProjectService creates a new ProjectService
func NewProjectService(store *catalog.Store, limits Limits) *ProjectService {
	return &ProjectService{store: store, limits: limits}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.store.Projects()
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (models.Project, error) {
	p, ok := catalog.ProjectByID(s.store.Projects(), id)
	if !ok {
		return models.Project{}, fmt.Errorf("project %q: %w", id, ErrNotFound)
	}
	return p, nil
}

// List runs category, featured, technology and date filters, then the text
// search, then sorting and pagination
func (s *ProjectService) List(q ProjectQuery) (catalog.Page[models.Project], error) {
	projects := s.store.Projects()

	if q.Category != "" {
		if q.Category != models.CategoryAll && !q.Category.Valid() {
			return catalog.Page[models.Project]{}, invalid(fmt.Errorf("unknown category: %s", q.Category))
		}
		projects = catalog.ProjectsByCategory(projects, q.Category)
	}
	if q.Featured {
		projects = catalog.FeaturedProjects(projects)
	}
	if q.Tech != "" {
		projects = catalog.FilterByTechnology(projects, q.Tech)
	}
	if q.TechCategory != "" {
		if !q.TechCategory.Valid() {
			return catalog.Page[models.Project]{}, invalid(fmt.Errorf("unknown technology category: %s", q.TechCategory))
		}
		projects = catalog.FilterByTechnologyCategory(projects, q.TechCategory)
	}
	if !q.From.IsZero() || !q.To.IsZero() {
		to := q.To
		if to.IsZero() {
			to = endOfTime
		}
		if to.Before(q.From) {
			return catalog.Page[models.Project]{}, invalid(fmt.Errorf("date range ends before it starts"))
		}
		projects = catalog.FilterByDateRange(projects, q.From, to)
	}
	projects = catalog.SearchProjects(projects, q.Query, q.Fields...)

	switch q.Sort {
	case "":
	case SortDate:
		projects = catalog.SortByDate(projects, q.Order)
	case SortTitle:
		projects = catalog.SortByTitle(projects, q.Order)
	default:
		return catalog.Page[models.Project]{}, invalid(fmt.Errorf("unknown sort: %s", q.Sort))
	}

	return paginate(projects, q.Page, q.Limit, s.limits.Page)
}

// Featured returns the featured projects
func (s *ProjectService) Featured() []models.Project {
	return catalog.FeaturedProjects(s.store.Projects())
}

// Recent returns the most recently completed projects. A non-positive
// limit uses the configured count.
func (s *ProjectService) Recent(limit int) []models.Project {
	if limit <= 0 {
		limit = s.limits.RecentProjects
	}
	return catalog.RecentProjects(s.store.Projects(), limit)
}

// Categories lists the selectable project categories with their labels
func (s *ProjectService) Categories() []CategoryOption {
	opts := make([]CategoryOption, 0, len(models.ProjectCategories)+1)
	opts = append(opts, CategoryOption{Value: models.CategoryAll, Label: models.CategoryAll.Label()})
	for _, c := range models.ProjectCategories {
		opts = append(opts, CategoryOption{Value: c, Label: c.Label()})
	}
	return opts
}

// CategoryOption is one entry of the category picker
type CategoryOption struct {
	Value models.ProjectCategory `json:"value"`
	Label string                 `json:"label"`
}

// Stats summarises the project catalog
func (s *ProjectService) Stats() catalog.ProjectStatistics {
	return catalog.ProjectStats(s.store.Projects())
}
