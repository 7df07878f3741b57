package services

import (
	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/models"
)

// SiteInfo is the site metadata served to the front end
type SiteInfo struct {
	Config  models.SiteConfig  `json:"config"`
	Nav     []models.NavItem   `json:"nav"`
	Contact models.ContactInfo `json:"contact"`
}

// SiteService serves the non-catalog site content
type SiteService struct {
	store *catalog.Store
}

// NewSiteService creates a new SiteService
func NewSiteService(store *catalog.Store) *SiteService {
	return &SiteService{store: store}
}

// Info returns the site config, navigation and contact details
func (s *SiteService) Info() SiteInfo {
	site := s.store.Site()
	return SiteInfo{Config: site.Config, Nav: site.Nav, Contact: site.Contact}
}

// Testimonials returns the client testimonials
func (s *SiteService) Testimonials() []models.Testimonial {
	return s.store.Site().Testimonials
}

// FAQs returns the frequently asked questions
func (s *SiteService) FAQs() []models.FAQ {
	return s.store.Site().FAQs
}
