package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"modernwebagency.com/internal/models"
)

func TestByIDNotFound(t *testing.T) {
	store := defaultStore(t)

	_, ok := ProjectByID(store.Projects(), "nope")
	assert.False(t, ok)
	_, ok = ServiceByID(store.Services(), "nope")
	assert.False(t, ok)
	_, ok = TeamMemberByID(store.TeamMembers(), "nope")
	assert.False(t, ok)

	s, ok := ServiceByID(store.Services(), "ui-ux-design")
	assert.True(t, ok)
	assert.Equal(t, "UI/UX Design", s.Title)
}

func TestFeaturedProjects(t *testing.T) {
	projects := []models.Project{
		{ID: "a"}, {ID: "b", Featured: true}, {ID: "c"},
		{ID: "d"}, {ID: "e", Featured: true}, {ID: "f"},
	}
	assert.Equal(t, []string{"b", "e"}, projectIDs(FeaturedProjects(projects)))

	store := defaultStore(t)
	assert.Equal(t,
		[]string{"ecommerce-platform", "corporate-website", "mobile-banking-app"},
		projectIDs(FeaturedProjects(store.Projects())))
}

func TestProjectsByCategory(t *testing.T) {
	store := defaultStore(t)
	projects := store.Projects()

	assert.Equal(t, projects, ProjectsByCategory(projects, models.CategoryAll))
	assert.Equal(t, []models.Project{}, ProjectsByCategory(nil, models.CategoryMobile))
	assert.Equal(t,
		[]string{"ecommerce-platform", "restaurant-ordering"},
		projectIDs(ProjectsByCategory(projects, models.CategoryECommerce)))
}

func TestRecentProjects(t *testing.T) {
	store := defaultStore(t)
	projects := store.Projects()

	assert.Equal(t,
		[]string{"ecommerce-platform", "mobile-banking-app", "corporate-website"},
		projectIDs(RecentProjects(projects, DefaultRecentProjects)))
	// the input is left in definition order
	assert.Equal(t, "corporate-website", projects[1].ID)
	assert.Len(t, RecentProjects(projects, 100), 6)
}

func TestFeaturedServicesIsPositional(t *testing.T) {
	store := defaultStore(t)
	services := store.Services()

	tests := []struct {
		limit int
		want  []string
	}{
		{DefaultFeaturedServices, []string{"web-development", "ecommerce-solutions", "ui-ux-design"}},
		{1, []string{"web-development"}},
		{0, []string{}},
		{-2, []string{}},
		{10, serviceIDs(services)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, serviceIDs(FeaturedServices(services, tt.limit)), "limit %d", tt.limit)
	}
}

func TestTeamRoleLookups(t *testing.T) {
	store := defaultStore(t)
	members := store.TeamMembers()

	assert.Equal(t, []string{"john-doe", "sarah-johnson"}, memberIDs(Founders(members)))
	assert.Equal(t,
		[]string{"john-doe", "mike-chen", "emily-rodriguez", "david-kim"},
		memberIDs(Developers(members)))
	assert.Equal(t, []string{"lisa-wang"}, memberIDs(TeamMembersByRole(members, "MANAGER")))
}
