package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"modernwebagency.com/internal/middleware"
	"modernwebagency.com/internal/services"
)

// Services bundles what the routes serve
type Services struct {
	Projects  *services.ProjectService
	Offerings *services.OfferingService
	Team      *services.TeamService
	Site      *services.SiteService
	Contact   *services.ContactService
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(svc Services, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	projectHandler := NewProjectHandler(svc.Projects)
	offeringHandler := NewOfferingHandler(svc.Offerings)
	teamHandler := NewTeamHandler(svc.Team)
	siteHandler := NewSiteHandler(svc.Site)
	contactHandler := NewContactHandler(svc.Contact, logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projectHandler.ListProjects)
			r.Get("/featured", projectHandler.FeaturedProjects)
			r.Get("/recent", projectHandler.RecentProjects)
			r.Get("/categories", projectHandler.Categories)
			r.Get("/stats", projectHandler.Stats)
			r.Get("/{id}", projectHandler.GetProject)
		})

		r.Route("/services", func(r chi.Router) {
			r.Get("/", offeringHandler.ListServices)
			r.Get("/featured", offeringHandler.FeaturedServices)
			r.Get("/stats", offeringHandler.Stats)
			r.Get("/{id}", offeringHandler.GetService)
		})

		r.Route("/team", func(r chi.Router) {
			r.Get("/", teamHandler.ListMembers)
			r.Get("/founders", teamHandler.Founders)
			r.Get("/developers", teamHandler.Developers)
			r.Get("/stats", teamHandler.Stats)
			r.Get("/{id}", teamHandler.GetMember)
		})

		r.Get("/site", siteHandler.GetSite)
		r.Get("/testimonials", siteHandler.Testimonials)
		r.Get("/faqs", siteHandler.FAQs)

		r.Post("/contact", contactHandler.Submit)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondQueryError maps a list operation failure to 400 or 500
func respondQueryError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrInvalidQuery) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, "Internal server error")
}
