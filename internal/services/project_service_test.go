package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/models"
)

func projectIDs(ps []models.Project) []string {
	return ids(ps, func(p models.Project) string { return p.ID })
}

func TestProjectServiceList(t *testing.T) {
	svc := NewProjectService(defaultStore(t), DefaultLimits())

	tests := []struct {
		name  string
		query ProjectQuery
		want  []string
	}{
		{
			name:  "definition order by default",
			query: ProjectQuery{},
			want:  []string{"ecommerce-platform", "corporate-website", "task-management-app", "mobile-banking-app", "restaurant-ordering", "portfolio-website"},
		},
		{
			name:  "all category is unfiltered",
			query: ProjectQuery{Category: models.CategoryAll, Sort: SortDate},
			want:  []string{"ecommerce-platform", "mobile-banking-app", "corporate-website", "portfolio-website", "task-management-app", "restaurant-ordering"},
		},
		{
			name:  "category",
			query: ProjectQuery{Category: models.CategoryECommerce},
			want:  []string{"ecommerce-platform", "restaurant-ordering"},
		},
		{
			name:  "title ascending",
			query: ProjectQuery{Sort: SortTitle},
			want:  []string{"corporate-website", "portfolio-website", "mobile-banking-app", "ecommerce-platform", "restaurant-ordering", "task-management-app"},
		},
		{
			name:  "oldest first",
			query: ProjectQuery{Sort: SortDate, Order: catalog.Asc, Limit: 2},
			want:  []string{"restaurant-ordering", "task-management-app"},
		},
		{
			name: "date range",
			query: ProjectQuery{
				From: time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
			},
			want: []string{"corporate-website", "mobile-banking-app", "portfolio-website"},
		},
		{
			name:  "open ended date range",
			query: ProjectQuery{From: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)},
			want:  []string{"ecommerce-platform", "mobile-banking-app"},
		},
		{
			name:  "featured by title",
			query: ProjectQuery{Featured: true, Sort: SortTitle},
			want:  []string{"corporate-website", "mobile-banking-app", "ecommerce-platform"},
		},
		{
			name:  "technology category",
			query: ProjectQuery{TechCategory: models.TechDatabase, Category: models.CategoryWebApp},
			want:  []string{"task-management-app"},
		},
		{
			name:  "search",
			query: ProjectQuery{Query: "banking"},
			want:  []string{"mobile-banking-app"},
		},
		{
			name:  "nothing matches",
			query: ProjectQuery{Query: "blockchain"},
			want:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.List(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, projectIDs(page.Data))
		})
	}
}

func TestProjectServiceListPaginates(t *testing.T) {
	svc := NewProjectService(defaultStore(t), DefaultLimits())

	page, err := svc.List(ProjectQuery{Page: 2, Limit: 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"restaurant-ordering", "portfolio-website"}, projectIDs(page.Data))
	assert.Equal(t, catalog.Pagination{
		CurrentPage:     2,
		TotalPages:      2,
		TotalItems:      6,
		HasPreviousPage: true,
	}, page.Pagination)

	page, err = svc.List(ProjectQuery{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.TotalPages)
}

func TestProjectServiceListRejectsBadQueries(t *testing.T) {
	svc := NewProjectService(defaultStore(t), DefaultLimits())

	tests := []struct {
		name  string
		query ProjectQuery
	}{
		{"unknown sort", ProjectQuery{Sort: "popularity"}},
		{"unknown category", ProjectQuery{Category: "games"}},
		{"unknown technology category", ProjectQuery{TechCategory: "cloud"}},
		{"negative page", ProjectQuery{Page: -1}},
		{"negative limit", ProjectQuery{Limit: -5}},
		{"inverted dates", ProjectQuery{
			From: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.List(tt.query)
			assert.ErrorIs(t, err, ErrInvalidQuery)
		})
	}

	_, err := svc.List(ProjectQuery{Page: -1})
	assert.ErrorIs(t, err, catalog.ErrInvalidPage)
}

func TestProjectServiceLookups(t *testing.T) {
	svc := NewProjectService(defaultStore(t), DefaultLimits())

	p, err := svc.GetByID("portfolio-website")
	require.NoError(t, err)
	assert.Equal(t, "Creative Portfolio Website", p.Title)

	_, err = svc.GetByID("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Len(t, svc.GetAll(), 6)
	assert.Equal(t, []string{"ecommerce-platform", "corporate-website", "mobile-banking-app"}, projectIDs(svc.Featured()))
	assert.Equal(t, []string{"ecommerce-platform", "mobile-banking-app", "corporate-website"}, projectIDs(svc.Recent(0)))
	assert.Equal(t, []string{"ecommerce-platform"}, projectIDs(svc.Recent(1)))
}

func TestProjectServiceCategories(t *testing.T) {
	opts := NewProjectService(defaultStore(t), DefaultLimits()).Categories()
	require.Len(t, opts, len(models.ProjectCategories)+1)
	assert.Equal(t, models.CategoryAll, opts[0].Value)
	for _, o := range opts {
		assert.NotEmpty(t, o.Label)
	}
}

func TestProjectServiceStats(t *testing.T) {
	stats := NewProjectService(defaultStore(t), DefaultLimits()).Stats()
	assert.Equal(t, 6, stats.TotalProjects)
	assert.Equal(t, 3, stats.FeaturedProjects)
}
