package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/models"
)

func memberIDs(ms []models.TeamMember) []string {
	return ids(ms, func(m models.TeamMember) string { return m.ID })
}

func TestTeamServiceList(t *testing.T) {
	svc := NewTeamService(defaultStore(t), DefaultLimits())

	tests := []struct {
		name  string
		query TeamQuery
		want  []string
	}{
		{
			name:  "by name",
			query: TeamQuery{Sort: SortName},
			want:  []string{"david-kim", "emily-rodriguez", "john-doe", "lisa-wang", "mike-chen", "sarah-johnson"},
		},
		{
			name:  "skill",
			query: TeamQuery{Skill: "react"},
			want:  []string{"john-doe", "mike-chen", "david-kim"},
		},
		{
			name:  "skill and role",
			query: TeamQuery{Skill: "typescript", Role: "senior"},
			want:  []string{"mike-chen"},
		},
		{
			name:  "search",
			query: TeamQuery{Query: "design"},
			want:  []string{"sarah-johnson"},
		},
		{
			name:  "search bio only",
			query: TeamQuery{Query: "android", Fields: []catalog.MemberField{catalog.MemberBio}},
			want:  []string{"david-kim"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.List(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, memberIDs(page.Data))
		})
	}

	_, err := svc.List(TeamQuery{Sort: SortTitle})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestTeamServiceGroups(t *testing.T) {
	svc := NewTeamService(defaultStore(t), DefaultLimits())

	assert.Equal(t, []string{"john-doe", "sarah-johnson"}, memberIDs(svc.Founders()))
	assert.Equal(t, []string{"john-doe", "mike-chen", "emily-rodriguez", "david-kim"}, memberIDs(svc.Developers()))

	m, err := svc.GetByID("lisa-wang")
	require.NoError(t, err)
	assert.Equal(t, "Project Manager", m.Role)

	_, err = svc.GetByID("ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	stats := svc.Stats()
	assert.Equal(t, 6, stats.TotalMembers)
	assert.Len(t, svc.GetAll(), 6)
}

func TestSiteService(t *testing.T) {
	svc := NewSiteService(defaultStore(t))

	info := svc.Info()
	assert.Equal(t, "Modern Web Agency", info.Config.Name)
	assert.NotEmpty(t, info.Nav)
	assert.NotEmpty(t, info.Contact.Email)
	assert.Len(t, svc.Testimonials(), 3)
	assert.NotEmpty(t, svc.FAQs())
}
