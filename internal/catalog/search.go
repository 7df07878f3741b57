package catalog

import (
	"fmt"
	"slices"
	"strings"

	"modernwebagency.com/internal/models"
)

// ProjectField names a project attribute that free-text search looks at
type ProjectField string

const (
	ProjectTitle         ProjectField = "title"
	ProjectDescription   ProjectField = "description"
	ProjectTechnologies  ProjectField = "technologies"
	ProjectCategoryField ProjectField = "category"
)

// DefaultProjectFields are searched when the caller names none
var DefaultProjectFields = []ProjectField{ProjectTitle, ProjectDescription, ProjectTechnologies}

// ServiceField names a service attribute that free-text search looks at
type ServiceField string

const (
	ServiceTitle       ServiceField = "title"
	ServiceDescription ServiceField = "description"
	ServiceFeatures    ServiceField = "features"
)

// DefaultServiceFields are searched when the caller names none
var DefaultServiceFields = []ServiceField{ServiceTitle, ServiceDescription, ServiceFeatures}

// MemberField names a team member attribute that free-text search looks at
type MemberField string

const (
	MemberName   MemberField = "name"
	MemberRole   MemberField = "role"
	MemberSkills MemberField = "skills"
	MemberBio    MemberField = "bio"
)

// DefaultMemberFields are searched when the caller names none
var DefaultMemberFields = []MemberField{MemberName, MemberRole, MemberSkills}

func anyContains(values []string, q string) bool {
	return slices.ContainsFunc(values, func(v string) bool { return containsFold(v, q) })
}

func (f ProjectField) matches(p models.Project, q string) bool {
	switch f {
	case ProjectTitle:
		return containsFold(p.Title, q)
	case ProjectDescription:
		return containsFold(p.Description, q) || containsFold(p.LongDescription, q)
	case ProjectTechnologies:
		return slices.ContainsFunc(p.Technologies, func(t models.Technology) bool { return containsFold(t.Name, q) })
	case ProjectCategoryField:
		return containsFold(string(p.Category), q)
	}
	return false
}

func (f ServiceField) matches(s models.Service, q string) bool {
	switch f {
	case ServiceTitle:
		return containsFold(s.Title, q)
	case ServiceDescription:
		return containsFold(s.ShortDescription, q) || containsFold(s.LongDescription, q)
	case ServiceFeatures:
		return anyContains(s.Features, q)
	}
	return false
}

func (f MemberField) matches(m models.TeamMember, q string) bool {
	switch f {
	case MemberName:
		return containsFold(m.Name, q)
	case MemberRole:
		return containsFold(m.Role, q)
	case MemberSkills:
		return anyContains(m.Skills, q)
	case MemberBio:
		return containsFold(m.Bio, q)
	}
	return false
}

type matcher[T any] interface {
	matches(T, string) bool
}

func search[T any, F matcher[T]](items []T, query string, fields, defaults []F) []T {
	if strings.TrimSpace(query) == "" {
		return slices.Clone(items)
	}
	if len(fields) == 0 {
		fields = defaults
	}
	q := strings.ToLower(query)
	return filter(items, func(item T) bool {
		for _, f := range fields {
			if f.matches(item, q) {
				return true
			}
		}
		return false
	})
}

// SearchProjects returns projects where any of fields contains query,
// ignoring case. A blank query returns every project.
func SearchProjects(projects []models.Project, query string, fields ...ProjectField) []models.Project {
	return search(projects, query, fields, DefaultProjectFields)
}

// SearchServices returns services where any of fields contains query
func SearchServices(services []models.Service, query string, fields ...ServiceField) []models.Service {
	return search(services, query, fields, DefaultServiceFields)
}

// SearchTeamMembers returns members where any of fields contains query
func SearchTeamMembers(members []models.TeamMember, query string, fields ...MemberField) []models.TeamMember {
	return search(members, query, fields, DefaultMemberFields)
}

func parseFields[F ~string](raw string, known []F) ([]F, error) {
	var out []F
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		i := slices.Index(known, F(name))
		if i < 0 {
			return nil, fmt.Errorf("unknown search field: %s", name)
		}
		if !slices.Contains(out, known[i]) {
			out = append(out, known[i])
		}
	}
	return out, nil
}

// ParseProjectFields parses a comma separated list such as "title,category"
func ParseProjectFields(raw string) ([]ProjectField, error) {
	return parseFields(raw, []ProjectField{ProjectTitle, ProjectDescription, ProjectTechnologies, ProjectCategoryField})
}

// ParseServiceFields parses a comma separated list of service fields
func ParseServiceFields(raw string) ([]ServiceField, error) {
	return parseFields(raw, []ServiceField{ServiceTitle, ServiceDescription, ServiceFeatures})
}

// ParseMemberFields parses a comma separated list of team member fields
func ParseMemberFields(raw string) ([]MemberField, error) {
	return parseFields(raw, []MemberField{MemberName, MemberRole, MemberSkills, MemberBio})
}
