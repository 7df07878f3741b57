package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"modernwebagency.com/internal/models"
)

// Count is one tally bucket
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Counts is a tally kept in the order keys were first seen. It encodes to
// JSON as an object with keys in that order.
type Counts []Count

func (c Counts) add(key string) Counts {
	for i := range c {
		if c[i].Key == key {
			c[i].Count++
			return c
		}
	}
	return append(c, Count{Key: key, Count: 1})
}

// Get returns the tally for key, zero when absent
func (c Counts) Get(key string) int {
	for _, e := range c {
		if e.Key == key {
			return e.Count
		}
	}
	return 0
}

// Total sums every bucket
func (c Counts) Total() int {
	n := 0
	for _, e := range c {
		n += e.Count
	}
	return n
}

// Top returns the key with the highest tally. Ties go to the key seen
// first. It returns "" for an empty tally.
func (c Counts) Top() string {
	best := -1
	key := ""
	for _, e := range c {
		if e.Count > best {
			best, key = e.Count, e.Key
		}
	}
	return key
}

// MarshalJSON encodes the tally as an ordered JSON object
func (c Counts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(e.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ProjectStatistics summarizes the project portfolio
type ProjectStatistics struct {
	TotalProjects      int    `json:"total_projects"`
	FeaturedProjects   int    `json:"featured_projects"`
	CategoryCounts     Counts `json:"category_counts"`
	TechnologyCounts   Counts `json:"technology_counts"`
	MostUsedTechnology string `json:"most_used_technology,omitempty"`
}

// ProjectStats tallies projects by category and technology. Every
// occurrence of a technology counts.
func ProjectStats(projects []models.Project) ProjectStatistics {
	st := ProjectStatistics{TotalProjects: len(projects)}
	for _, p := range projects {
		if p.Featured {
			st.FeaturedProjects++
		}
		st.CategoryCounts = st.CategoryCounts.add(string(p.Category))
		for _, t := range p.Technologies {
			st.TechnologyCounts = st.TechnologyCounts.add(t.Name)
		}
	}
	st.MostUsedTechnology = st.TechnologyCounts.Top()
	return st
}

// ServiceStatistics summarizes the service offering
type ServiceStatistics struct {
	TotalServices       int `json:"total_services"`
	ServicesWithPricing int `json:"services_with_pricing"`
	AverageProcessSteps int `json:"average_process_steps"`
}

// ServiceStats counts priced services and the rounded mean process length
func ServiceStats(services []models.Service) ServiceStatistics {
	st := ServiceStatistics{TotalServices: len(services)}
	steps := make([]int, 0, len(services))
	for _, s := range services {
		if s.Pricing != nil {
			st.ServicesWithPricing++
		}
		steps = append(steps, len(s.Process))
	}
	if mean, err := stats.Mean(stats.LoadRawData(steps)); err == nil {
		if rounded, err := stats.Round(mean, 0); err == nil {
			st.AverageProcessSteps = int(rounded)
		}
	}
	return st
}

// TeamStatistics summarizes the team
type TeamStatistics struct {
	TotalMembers    int    `json:"total_members"`
	SkillCounts     Counts `json:"skill_counts"`
	RoleCounts      Counts `json:"role_counts"`
	MostCommonSkill string `json:"most_common_skill,omitempty"`
}

// TeamStats tallies skills and roles. Roles are bucketed by their first
// word only, so "Lead Developer & Co-Founder" counts under "Lead".
func TeamStats(members []models.TeamMember) TeamStatistics {
	st := TeamStatistics{TotalMembers: len(members)}
	for _, m := range members {
		for _, skill := range m.Skills {
			st.SkillCounts = st.SkillCounts.add(skill)
		}
		st.RoleCounts = st.RoleCounts.add(roleBucket(m.Role))
	}
	st.MostCommonSkill = st.SkillCounts.Top()
	return st
}

func roleBucket(role string) string {
	if first := strings.Split(role, " ")[0]; first != "" {
		return first
	}
	return "Unknown"
}
