package catalog

import (
	"slices"
	"strings"
	"time"

	"modernwebagency.com/internal/models"
)

// FilterByTechnology returns projects using a technology whose name
// contains tech, ignoring case
func FilterByTechnology(projects []models.Project, tech string) []models.Project {
	q := strings.ToLower(tech)
	return filter(projects, func(p models.Project) bool {
		return slices.ContainsFunc(p.Technologies, func(t models.Technology) bool { return containsFold(t.Name, q) })
	})
}

// FilterByTechnologyCategory returns projects with at least one technology
// in category
func FilterByTechnologyCategory(projects []models.Project, category models.TechnologyCategory) []models.Project {
	return filter(projects, func(p models.Project) bool {
		return slices.ContainsFunc(p.Technologies, func(t models.Technology) bool { return t.Category == category })
	})
}

// FilterByDateRange returns projects completed within [start, end]
func FilterByDateRange(projects []models.Project, start, end time.Time) []models.Project {
	return filter(projects, func(p models.Project) bool {
		return !p.CompletedDate.Before(start) && !p.CompletedDate.After(end)
	})
}

// FilterServicesByPriceRange returns services with at least one pricing
// tier overlapping [min, max]. Tiers whose price text cannot be parsed
// never match, and services without pricing are excluded.
func FilterServicesByPriceRange(services []models.Service, min, max float64) []models.Service {
	return filter(services, func(s models.Service) bool {
		return slices.ContainsFunc(s.Pricing, func(tier models.PricingTier) bool {
			r, ok := ParsePriceRange(tier.Price)
			return ok && r.Overlaps(min, max)
		})
	})
}

// FilterTeamMembersBySkill returns members with a skill containing skill
func FilterTeamMembersBySkill(members []models.TeamMember, skill string) []models.TeamMember {
	q := strings.ToLower(skill)
	return filter(members, func(m models.TeamMember) bool { return anyContains(m.Skills, q) })
}

// FilterTeamMembersByRole is TeamMembersByRole under the filter naming
func FilterTeamMembersByRole(members []models.TeamMember, role string) []models.TeamMember {
	return TeamMembersByRole(members, role)
}
