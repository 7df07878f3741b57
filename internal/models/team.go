package models

// SocialLinks holds optional profile URLs. A nil pointer means the link is
// absent; a pointer to an empty string is invalid.
type SocialLinks struct {
	LinkedIn *string `json:"linkedin,omitempty" yaml:"linkedin,omitempty" validate:"omitempty,min=1"`
	GitHub   *string `json:"github,omitempty" yaml:"github,omitempty" validate:"omitempty,min=1"`
	Twitter  *string `json:"twitter,omitempty" yaml:"twitter,omitempty" validate:"omitempty,min=1"`
}

// TeamMember represents a person on the agency team
type TeamMember struct {
	ID     string      `json:"id" yaml:"id" validate:"required"`
	Name   string      `json:"name" yaml:"name" validate:"required,max=50"`
	Role   string      `json:"role" yaml:"role" validate:"required,max=50"`
	Bio    string      `json:"bio" yaml:"bio" validate:"required,max=500"`
	Image  string      `json:"image" yaml:"image" validate:"required"`
	Skills []string    `json:"skills" yaml:"skills" validate:"dive,required"`
	Social SocialLinks `json:"social" yaml:"social"`
}

// SortTitle falls back to the member's name since members have no title
func (m TeamMember) SortTitle() string {
	return m.Name
}
