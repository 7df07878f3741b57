package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/services"
)

// OfferingHandler handles the /api/services endpoints
type OfferingHandler struct {
	offeringService *services.OfferingService
}

// NewOfferingHandler creates a new OfferingHandler
func NewOfferingHandler(offerings *services.OfferingService) *OfferingHandler {
	return &OfferingHandler{offeringService: offerings}
}

// ListServices handles GET /api/services
func (h *OfferingHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	p := params(r)
	q := services.ServiceQuery{
		Query:    p.text("q"),
		MinPrice: p.number("min_price"),
		MaxPrice: p.number("max_price"),
		Sort:     p.text("sort"),
		Order:    p.direction("order"),
		Page:     p.positiveInt("page"),
		Limit:    p.positiveInt("limit"),
	}
	p.fields("fields", func(raw string) (err error) {
		q.Fields, err = catalog.ParseServiceFields(raw)
		return err
	})
	if p.err != nil {
		respondError(w, http.StatusBadRequest, p.err.Error())
		return
	}

	page, err := h.offeringService.List(q)
	if err != nil {
		respondQueryError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// FeaturedServices handles GET /api/services/featured
func (h *OfferingHandler) FeaturedServices(w http.ResponseWriter, r *http.Request) {
	p := params(r)
	limit := p.positiveInt("limit")
	if p.err != nil {
		respondError(w, http.StatusBadRequest, p.err.Error())
		return
	}
	respondJSON(w, http.StatusOK, h.offeringService.Featured(limit))
}

// Stats handles GET /api/services/stats
func (h *OfferingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.offeringService.Stats())
}

// GetService handles GET /api/services/{id}
func (h *OfferingHandler) GetService(w http.ResponseWriter, r *http.Request) {
	svc, err := h.offeringService.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Service not found")
		return
	}
	respondJSON(w, http.StatusOK, svc)
}
