package models

// SiteConfig describes the public site
type SiteConfig struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	URL         string    `json:"url" yaml:"url"`
	OGImage     string    `json:"og_image" yaml:"og_image"`
	Links       SiteLinks `json:"links" yaml:"links"`
}

// SiteLinks are the agency's own social profiles
type SiteLinks struct {
	Twitter  string `json:"twitter" yaml:"twitter"`
	GitHub   string `json:"github" yaml:"github"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
}

// NavItem is a top level navigation entry
type NavItem struct {
	Title       string `json:"title" yaml:"title"`
	Href        string `json:"href" yaml:"href"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Address is a postal address
type Address struct {
	Street  string `json:"street" yaml:"street"`
	City    string `json:"city" yaml:"city"`
	State   string `json:"state" yaml:"state"`
	Zip     string `json:"zip" yaml:"zip"`
	Country string `json:"country" yaml:"country"`
}

// OfficeHours lists when the office is staffed
type OfficeHours struct {
	Weekdays string `json:"weekdays" yaml:"weekdays"`
	Weekends string `json:"weekends" yaml:"weekends"`
}

// ContactInfo is how to reach the agency outside the contact form
type ContactInfo struct {
	Email   string      `json:"email" yaml:"email"`
	Phone   string      `json:"phone" yaml:"phone"`
	Address Address     `json:"address" yaml:"address"`
	Hours   OfficeHours `json:"hours" yaml:"hours"`
}

// Testimonial is a client quote
type Testimonial struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Role    string `json:"role" yaml:"role"`
	Company string `json:"company" yaml:"company"`
	Content string `json:"content" yaml:"content"`
	Rating  int    `json:"rating" yaml:"rating"`
	Image   string `json:"image" yaml:"image"`
}

// FAQ is a frequently asked question
type FAQ struct {
	ID       string `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Site bundles the static, non-catalog content of the site
type Site struct {
	Config       SiteConfig    `json:"config" yaml:"config"`
	Nav          []NavItem     `json:"nav" yaml:"nav"`
	Contact      ContactInfo   `json:"contact" yaml:"contact"`
	Testimonials []Testimonial `json:"testimonials" yaml:"testimonials"`
	FAQs         []FAQ         `json:"faqs" yaml:"faqs"`
}
