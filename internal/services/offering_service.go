package services

import (
	"fmt"
	"math"

	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/models"
)

// ServiceQuery narrows, orders and pages the list of offered services.
// A nil price bound leaves that side of the range open.
type ServiceQuery struct {
	Query    string
	Fields   []catalog.ServiceField
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Order    catalog.Direction
	Page     int
	Limit    int
}

// OfferingService handles the services the agency sells
type OfferingService struct {
	store  *catalog.Store
	limits Limits
}

// NewOfferingService creates a new OfferingService
func NewOfferingService(store *catalog.Store, limits Limits) *OfferingService {
	return &OfferingService{store: store, limits: limits}
}

// GetAll returns all services
func (s *OfferingService) GetAll() []models.Service {
	return s.store.Services()
}

// GetByID returns a specific service by ID
func (s *OfferingService) GetByID(id string) (models.Service, error) {
	svc, ok := catalog.ServiceByID(s.store.Services(), id)
	if !ok {
		return models.Service{}, fmt.Errorf("service %q: %w", id, ErrNotFound)
	}
	return svc, nil
}

// List filters by price, searches, sorts and pages the services
func (s *OfferingService) List(q ServiceQuery) (catalog.Page[models.Service], error) {
	services := s.store.Services()

	if q.MinPrice != nil || q.MaxPrice != nil {
		lo, hi := 0.0, math.Inf(1)
		if q.MinPrice != nil {
			lo = *q.MinPrice
		}
		if q.MaxPrice != nil {
			hi = *q.MaxPrice
		}
		if math.IsNaN(lo) || math.IsNaN(hi) || lo < 0 || hi < lo {
			return catalog.Page[models.Service]{}, invalid(fmt.Errorf("price range %v-%v is empty", lo, hi))
		}
		services = catalog.FilterServicesByPriceRange(services, lo, hi)
	}
	services = catalog.SearchServices(services, q.Query, q.Fields...)

	switch q.Sort {
	case "":
	case SortTitle:
		services = catalog.SortByTitle(services, q.Order)
	default:
		return catalog.Page[models.Service]{}, invalid(fmt.Errorf("unknown sort: %s", q.Sort))
	}

	return paginate(services, q.Page, q.Limit, s.limits.Page)
}

// Featured returns the first services in definition order. A non-positive
// limit uses the configured count.
func (s *OfferingService) Featured(limit int) []models.Service {
	if limit <= 0 {
		limit = s.limits.FeaturedServices
	}
	return catalog.FeaturedServices(s.store.Services(), limit)
}

// Stats summarises the service catalog
func (s *OfferingService) Stats() catalog.ServiceStatistics {
	return catalog.ServiceStats(s.store.Services())
}
