package catalog

import (
	"slices"
	"strings"

	"modernwebagency.com/internal/models"
)

// Default result sizes used by the site when a caller does not ask for one.
const (
	DefaultFeaturedServices = 3
	DefaultRecentProjects   = 3
)

func findByID[T any](items []T, id string, key func(T) string) (T, bool) {
	for _, item := range items {
		if key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func containsFold(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}

// ProjectByID returns the project with the given id
func ProjectByID(projects []models.Project, id string) (models.Project, bool) {
	return findByID(projects, id, func(p models.Project) string { return p.ID })
}

// ServiceByID returns the service with the given id
func ServiceByID(services []models.Service, id string) (models.Service, bool) {
	return findByID(services, id, func(s models.Service) string { return s.ID })
}

// TeamMemberByID returns the team member with the given id
func TeamMemberByID(members []models.TeamMember, id string) (models.TeamMember, bool) {
	return findByID(members, id, func(m models.TeamMember) string { return m.ID })
}

// FeaturedProjects returns projects flagged as featured, in input order
func FeaturedProjects(projects []models.Project) []models.Project {
	return filter(projects, func(p models.Project) bool { return p.Featured })
}

// ProjectsByCategory returns projects in category. CategoryAll returns a copy
// of the input unfiltered.
func ProjectsByCategory(projects []models.Project, category models.ProjectCategory) []models.Project {
	if category == models.CategoryAll {
		return slices.Clone(projects)
	}
	return filter(projects, func(p models.Project) bool { return p.Category == category })
}

// RecentProjects returns the limit most recently completed projects
func RecentProjects(projects []models.Project, limit int) []models.Project {
	return truncate(SortByDate(projects, Desc), limit)
}

// FeaturedServices returns the first limit services in definition order.
// Services carry no featured flag; position is the convention.
func FeaturedServices(services []models.Service, limit int) []models.Service {
	return truncate(slices.Clone(services), limit)
}

func truncate[T any](items []T, limit int) []T {
	if limit <= 0 {
		return []T{}
	}
	if limit < len(items) {
		return items[:limit:limit]
	}
	return items
}

// TeamMembersByRole returns members whose role contains role, ignoring case
func TeamMembersByRole(members []models.TeamMember, role string) []models.TeamMember {
	q := strings.ToLower(role)
	return filter(members, func(m models.TeamMember) bool { return containsFold(m.Role, q) })
}

// Founders returns the agency's founders
func Founders(members []models.TeamMember) []models.TeamMember {
	return TeamMembersByRole(members, "founder")
}

// Developers returns members with a developer role
func Developers(members []models.TeamMember) []models.TeamMember {
	return TeamMembersByRole(members, "developer")
}
