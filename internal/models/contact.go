package models

import "time"

// BudgetRange is the budget bracket picked on the contact form
type BudgetRange string

const (
	BudgetUnder5K  BudgetRange = "under-5k"
	Budget5KTo15K  BudgetRange = "5k-15k"
	Budget15KTo50K BudgetRange = "15k-50k"
	Budget50KPlus  BudgetRange = "50k-plus"
)

// Label returns the human readable budget bracket
func (b BudgetRange) Label() string {
	switch b {
	case BudgetUnder5K:
		return "Under $5,000"
	case Budget5KTo15K:
		return "$5,000 - $15,000"
	case Budget15KTo50K:
		return "$15,000 - $50,000"
	case Budget50KPlus:
		return "$50,000+"
	}
	return string(b)
}

// ContactForm is a prospective client's enquiry as submitted from the site
type ContactForm struct {
	Name        string          `json:"name" validate:"required,min=2,max=50,alphaspace"`
	Email       string          `json:"email" validate:"required,email,max=100"`
	Company     string          `json:"company,omitempty" validate:"max=100"`
	ProjectType ProjectCategory `json:"project_type" validate:"required,oneof=web-app e-commerce corporate mobile"`
	Budget      BudgetRange     `json:"budget" validate:"required,oneof=under-5k 5k-15k 15k-50k 50k-plus"`
	Message     string          `json:"message" validate:"required,min=10,max=1000"`
	Timeline    string          `json:"timeline" validate:"required,max=100"`
}

// Inquiry is a stored contact form submission
type Inquiry struct {
	ID        string      `json:"id"`
	Form      ContactForm `json:"form"`
	CreatedAt time.Time   `json:"created_at"`
}
