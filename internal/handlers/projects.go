package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/models"
	"modernwebagency.com/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	p := params(r)
	q := services.ProjectQuery{
		Category:     models.ProjectCategory(p.text("category")),
		Query:        p.text("q"),
		Tech:         p.text("tech"),
		TechCategory: models.TechnologyCategory(p.text("tech_category")),
		From:         p.date("from"),
		To:           p.date("to"),
		Featured:     p.flag("featured"),
		Sort:         p.text("sort"),
		Order:        p.direction("order"),
		Page:         p.positiveInt("page"),
		Limit:        p.positiveInt("limit"),
	}
	p.fields("fields", func(raw string) (err error) {
		q.Fields, err = catalog.ParseProjectFields(raw)
		return err
	})
	if p.err != nil {
		respondError(w, http.StatusBadRequest, p.err.Error())
		return
	}

	page, err := h.projectService.List(q)
	if err != nil {
		respondQueryError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// FeaturedProjects handles GET /api/projects/featured
func (h *ProjectHandler) FeaturedProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.projectService.Featured())
}

// RecentProjects handles GET /api/projects/recent
func (h *ProjectHandler) RecentProjects(w http.ResponseWriter, r *http.Request) {
	p := params(r)
	limit := p.positiveInt("limit")
	if p.err != nil {
		respondError(w, http.StatusBadRequest, p.err.Error())
		return
	}
	respondJSON(w, http.StatusOK, h.projectService.Recent(limit))
}

// Categories handles GET /api/projects/categories
func (h *ProjectHandler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.projectService.Categories())
}

// Stats handles GET /api/projects/stats
func (h *ProjectHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.projectService.Stats())
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, project)
}
