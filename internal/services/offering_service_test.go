package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/models"
)

func serviceIDs(ss []models.Service) []string {
	return ids(ss, func(s models.Service) string { return s.ID })
}

func TestOfferingServiceList(t *testing.T) {
	svc := NewOfferingService(defaultStore(t), DefaultLimits())

	tests := []struct {
		name  string
		query ServiceQuery
		want  []string
	}{
		{
			name:  "definition order",
			query: ServiceQuery{},
			want:  []string{"web-development", "ecommerce-solutions", "ui-ux-design", "mobile-development", "consulting-support"},
		},
		{
			name:  "title descending",
			query: ServiceQuery{Sort: SortTitle, Order: catalog.Desc},
			want:  []string{"web-development", "ui-ux-design", "mobile-development", "ecommerce-solutions", "consulting-support"},
		},
		{
			name:  "under a thousand",
			query: ServiceQuery{MaxPrice: floatPtr(1000)},
			want:  []string{"consulting-support"},
		},
		{
			name:  "open upper bound keeps unbounded tiers",
			query: ServiceQuery{MinPrice: floatPtr(100000)},
			want:  []string{"web-development", "ecommerce-solutions", "ui-ux-design", "mobile-development", "consulting-support"},
		},
		{
			name:  "search features",
			query: ServiceQuery{Query: "app store", Fields: []catalog.ServiceField{catalog.ServiceFeatures}},
			want:  []string{"mobile-development"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.List(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, serviceIDs(page.Data))
		})
	}
}

func TestOfferingServiceListRejectsBadQueries(t *testing.T) {
	svc := NewOfferingService(defaultStore(t), DefaultLimits())

	_, err := svc.List(ServiceQuery{MinPrice: floatPtr(500), MaxPrice: floatPtr(100)})
	assert.ErrorIs(t, err, ErrInvalidQuery)

	_, err = svc.List(ServiceQuery{MinPrice: floatPtr(-1)})
	assert.ErrorIs(t, err, ErrInvalidQuery)

	_, err = svc.List(ServiceQuery{MinPrice: floatPtr(math.NaN())})
	assert.ErrorIs(t, err, ErrInvalidQuery)

	_, err = svc.List(ServiceQuery{MaxPrice: floatPtr(math.NaN())})
	assert.ErrorIs(t, err, ErrInvalidQuery)

	_, err = svc.List(ServiceQuery{Sort: SortDate})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestOfferingServiceLookups(t *testing.T) {
	svc := NewOfferingService(defaultStore(t), DefaultLimits())

	s, err := svc.GetByID("ui-ux-design")
	require.NoError(t, err)
	assert.Equal(t, "UI/UX Design", s.Title)

	_, err = svc.GetByID("seo")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{"web-development", "ecommerce-solutions", "ui-ux-design"}, serviceIDs(svc.Featured(0)))
	assert.Len(t, svc.Featured(10), 5)
	assert.Len(t, svc.GetAll(), 5)
	assert.Equal(t, 5, svc.Stats().TotalServices)
}
