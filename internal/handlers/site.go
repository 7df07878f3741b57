package handlers

import (
	"net/http"

	"modernwebagency.com/internal/services"
)

// SiteHandler serves site metadata
type SiteHandler struct {
	siteService *services.SiteService
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(ss *services.SiteService) *SiteHandler {
	return &SiteHandler{siteService: ss}
}

// GetSite handles GET /api/site
func (h *SiteHandler) GetSite(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.siteService.Info())
}

// Testimonials handles GET /api/testimonials
func (h *SiteHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.siteService.Testimonials())
}

// FAQs handles GET /api/faqs
func (h *SiteHandler) FAQs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.siteService.FAQs())
}
