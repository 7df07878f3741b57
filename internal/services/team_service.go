package services

import (
	"fmt"

	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/models"
)

// TeamQuery narrows, orders and pages the team list
type TeamQuery struct {
	Query  string
	Fields []catalog.MemberField
	Skill  string
	Role   string
	Sort   string
	Order  catalog.Direction
	Page   int
	Limit  int
}

// TeamService handles team member operations
type TeamService struct {
	store  *catalog.Store
	limits Limits
}

// NewTeamService creates a new TeamService
func NewTeamService(store *catalog.Store, limits Limits) *TeamService {
	return &TeamService{store: store, limits: limits}
}

// GetAll returns all team members
func (s *TeamService) GetAll() []models.TeamMember {
	return s.store.TeamMembers()
}

// GetByID returns a specific team member by ID
func (s *TeamService) GetByID(id string) (models.TeamMember, error) {
	m, ok := catalog.TeamMemberByID(s.store.TeamMembers(), id)
	if !ok {
		return models.TeamMember{}, fmt.Errorf("team member %q: %w", id, ErrNotFound)
	}
	return m, nil
}

// List filters by skill and role, searches, sorts by name and pages
func (s *TeamService) List(q TeamQuery) (catalog.Page[models.TeamMember], error) {
	members := s.store.TeamMembers()
	if q.Skill != "" {
		members = catalog.FilterTeamMembersBySkill(members, q.Skill)
	}
	if q.Role != "" {
		members = catalog.FilterTeamMembersByRole(members, q.Role)
	}
	members = catalog.SearchTeamMembers(members, q.Query, q.Fields...)

	switch q.Sort {
	case "":
	case SortName:
		members = catalog.SortByTitle(members, q.Order)
	default:
		return catalog.Page[models.TeamMember]{}, invalid(fmt.Errorf("unknown sort: %s", q.Sort))
	}

	return paginate(members, q.Page, q.Limit, s.limits.Page)
}

// Founders returns the founders
func (s *TeamService) Founders() []models.TeamMember {
	return catalog.Founders(s.store.TeamMembers())
}

// Developers returns the developers
func (s *TeamService) Developers() []models.TeamMember {
	return catalog.Developers(s.store.TeamMembers())
}

// Stats summarises the team
func (s *TeamService) Stats() catalog.TeamStatistics {
	return catalog.TeamStats(s.store.TeamMembers())
}
