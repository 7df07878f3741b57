package models

// Service is an offering the agency sells
type Service struct {
	ID               string        `json:"id" yaml:"id" validate:"required"`
	Title            string        `json:"title" yaml:"title" validate:"required,max=100"`
	ShortDescription string        `json:"short_description" yaml:"short_description" validate:"required,max=150"`
	LongDescription  string        `json:"long_description" yaml:"long_description" validate:"required"`
	Icon             string        `json:"icon" yaml:"icon" validate:"required"`
	Features         []string      `json:"features" yaml:"features" validate:"min=1,dive,required"`
	Process          []ProcessStep `json:"process" yaml:"process" validate:"steps,dive"`
	Pricing          []PricingTier `json:"pricing,omitempty" yaml:"pricing,omitempty" validate:"omitempty,onepopular,dive"`
}

// ProcessStep is one numbered stage of how a service is delivered
type ProcessStep struct {
	Step        int    `json:"step" yaml:"step" validate:"gt=0"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description" yaml:"description" validate:"required"`
	Duration    string `json:"duration" yaml:"duration" validate:"required"`
}

// PricingTier is a named price band. Price is free text such as "$5,000 - $15,000".
type PricingTier struct {
	Name     string   `json:"name" yaml:"name" validate:"required"`
	Price    string   `json:"price" yaml:"price" validate:"required"`
	Features []string `json:"features" yaml:"features" validate:"dive,required"`
	Popular  bool     `json:"popular,omitempty" yaml:"popular,omitempty"`
}

// SortTitle is the text used when ordering services alphabetically
func (s Service) SortTitle() string {
	return s.Title
}
