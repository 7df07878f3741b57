package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"modernwebagency.com/internal/models"
)

func defaultStore(t *testing.T) *Store {
	t.Helper()
	store, err := Default()
	require.NoError(t, err)
	return store
}

func date(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func projectIDs(projects []models.Project) []string {
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	return ids
}

func serviceIDs(services []models.Service) []string {
	ids := make([]string, len(services))
	for i, s := range services {
		ids[i] = s.ID
	}
	return ids
}

func memberIDs(members []models.TeamMember) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids
}
