package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"modernwebagency.com/internal/catalog"
)

func defaultStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.Default()
	require.NoError(t, err)
	return store
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}

func floatPtr(v float64) *float64 { return &v }
