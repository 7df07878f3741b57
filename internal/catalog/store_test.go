package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modernwebagency.com/internal/models"
)

func TestDefaultStore(t *testing.T) {
	store := defaultStore(t)

	assert.Equal(t, []string{
		"ecommerce-platform",
		"corporate-website",
		"task-management-app",
		"mobile-banking-app",
		"restaurant-ordering",
		"portfolio-website",
	}, projectIDs(store.Projects()))
	assert.Len(t, store.Services(), 5)
	assert.Len(t, store.TeamMembers(), 6)
	assert.Equal(t, "Modern Web Agency", store.Site().Config.Name)
	assert.Len(t, store.Site().FAQs, 5)

	p, ok := ProjectByID(store.Projects(), "ecommerce-platform")
	require.True(t, ok)
	assert.Equal(t, date("2024-01-15"), p.CompletedDate)
	assert.Equal(t, models.CategoryECommerce, p.Category)
	assert.Len(t, p.Gallery, 4)

	m, ok := TeamMemberByID(store.TeamMembers(), "sarah-johnson")
	require.True(t, ok)
	assert.NotNil(t, m.Social.LinkedIn)
	assert.Nil(t, m.Social.GitHub)
}

func TestStoreReturnsCopies(t *testing.T) {
	store := defaultStore(t)

	projects := store.Projects()
	projects[0] = models.Project{ID: "mutated"}

	assert.Equal(t, "ecommerce-platform", store.Projects()[0].ID)
}

func TestNewStoreRejectsDuplicateIDs(t *testing.T) {
	_, err := NewStore(Dataset{
		Services: []models.Service{{ID: "seo"}, {ID: "seo"}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
	assert.Contains(t, err.Error(), `service "seo"`)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("projects:\n- id: a\n  colour: red\n"))
	require.Error(t, err)
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	body := `projects:
- id: shop
  title: Shop
  category: e-commerce
  featured: true
  completed_date: 2024-03-01
team_members:
- id: ana
  name: Ana
  role: Designer
  social:
    github: ""
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	ds, err := DecodeFile(path)
	require.NoError(t, err)
	require.Len(t, ds.Projects, 1)
	assert.Equal(t, date("2024-03-01"), ds.Projects[0].CompletedDate)
	require.Len(t, ds.TeamMembers, 1)
	require.NotNil(t, ds.TeamMembers[0].Social.GitHub)
	assert.Equal(t, "", *ds.TeamMembers[0].Social.GitHub)
	assert.Nil(t, ds.TeamMembers[0].Social.Twitter)

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	store, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, store.Projects(), 1)
}
