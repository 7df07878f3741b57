package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/services"
)

// TeamHandler handles the /api/team endpoints
type TeamHandler struct {
	teamService *services.TeamService
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(ts *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: ts}
}

// ListMembers handles GET /api/team
func (h *TeamHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	p := params(r)
	q := services.TeamQuery{
		Query: p.text("q"),
		Skill: p.text("skill"),
		Role:  p.text("role"),
		Sort:  p.text("sort"),
		Order: p.direction("order"),
		Page:  p.positiveInt("page"),
		Limit: p.positiveInt("limit"),
	}
	p.fields("fields", func(raw string) (err error) {
		q.Fields, err = catalog.ParseMemberFields(raw)
		return err
	})
	if p.err != nil {
		respondError(w, http.StatusBadRequest, p.err.Error())
		return
	}

	page, err := h.teamService.List(q)
	if err != nil {
		respondQueryError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, page)
}

func (h *TeamHandler) Founders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.teamService.Founders())
}

func (h *TeamHandler) Developers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.teamService.Developers())
}

func (h *TeamHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.teamService.Stats())
}

// GetMember handles GET /api/team/{id}
func (h *TeamHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.teamService.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Team member not found")
		return
	}
	respondJSON(w, http.StatusOK, member)
}
