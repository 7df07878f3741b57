package models

import "time"

// ProjectCategory classifies a portfolio project
type ProjectCategory string

const (
	CategoryWebApp    ProjectCategory = "web-app"
	CategoryECommerce ProjectCategory = "e-commerce"
	CategoryCorporate ProjectCategory = "corporate"
	CategoryMobile    ProjectCategory = "mobile"

	// CategoryAll is the filter sentinel that matches every project.
	// It is never a valid category on a Project itself.
	CategoryAll ProjectCategory = "all"
)

// ProjectCategories lists the concrete categories in display order
var ProjectCategories = []ProjectCategory{
	CategoryWebApp,
	CategoryECommerce,
	CategoryCorporate,
	CategoryMobile,
}

// Valid reports whether c is one of the concrete categories
func (c ProjectCategory) Valid() bool {
	switch c {
	case CategoryWebApp, CategoryECommerce, CategoryCorporate, CategoryMobile:
		return true
	}
	return false
}

// Label returns the human readable name for the category
func (c ProjectCategory) Label() string {
	switch c {
	case CategoryWebApp:
		return "Web Application"
	case CategoryECommerce:
		return "E-commerce"
	case CategoryCorporate:
		return "Corporate Website"
	case CategoryMobile:
		return "Mobile Application"
	case CategoryAll:
		return "All Projects"
	}
	return string(c)
}

// TechnologyCategory groups technologies used on a project
type TechnologyCategory string

const (
	TechFrontend TechnologyCategory = "frontend"
	TechBackend  TechnologyCategory = "backend"
	TechDatabase TechnologyCategory = "database"
	TechTool     TechnologyCategory = "tool"
)

// Valid reports whether c is a known technology category
func (c TechnologyCategory) Valid() bool {
	switch c {
	case TechFrontend, TechBackend, TechDatabase, TechTool:
		return true
	}
	return false
}

// Technology is one entry of a project's stack
type Technology struct {
	Name     string             `json:"name" yaml:"name" validate:"required"`
	Category TechnologyCategory `json:"category" yaml:"category" validate:"oneof=frontend backend database tool"`
	Icon     string             `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Project represents a portfolio project. LiveURL and GitHubURL are nil when
// absent; an empty string is invalid.
type Project struct {
	ID              string          `json:"id" yaml:"id" validate:"required"`
	Title           string          `json:"title" yaml:"title" validate:"required,max=100"`
	Description     string          `json:"description" yaml:"description" validate:"required,max=200"`
	LongDescription string          `json:"long_description" yaml:"long_description" validate:"required"`
	Image           string          `json:"image" yaml:"image" validate:"required"`
	Gallery         []string        `json:"gallery" yaml:"gallery" validate:"dive,required"`
	Technologies    []Technology    `json:"technologies" yaml:"technologies" validate:"dive"`
	Category        ProjectCategory `json:"category" yaml:"category" validate:"oneof=web-app e-commerce corporate mobile"`
	LiveURL         *string         `json:"live_url,omitempty" yaml:"live_url,omitempty" validate:"omitempty,min=1"`
	GitHubURL       *string         `json:"github_url,omitempty" yaml:"github_url,omitempty" validate:"omitempty,min=1"`
	Featured        bool            `json:"featured" yaml:"featured"`
	CompletedDate   time.Time       `json:"completed_date" yaml:"completed_date" validate:"required,lte"`
}

// SortDate is the date used when ordering projects chronologically
func (p Project) SortDate() time.Time {
	return p.CompletedDate
}

// SortTitle is the text used when ordering projects alphabetically
func (p Project) SortTitle() string {
	return p.Title
}
