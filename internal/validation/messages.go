package validation

// messages maps "<Type>.<field path without indexes>" and a rule tag to the
// text shown to users.
var messages = map[string]map[string]string{
	"Project.id":                    {"required": "ID is required"},
	"Project.title":                 {"required": "Title is required", "max": "Title must be less than 100 characters"},
	"Project.description":           {"required": "Description is required", "max": "Description must be less than 200 characters"},
	"Project.long_description":      {"required": "Long description is required"},
	"Project.image":                 {"required": "Image is required"},
	"Project.gallery":               {"required": "Gallery image cannot be empty"},
	"Project.technologies.name":     {"required": "Technology name is required"},
	"Project.technologies.category": {"oneof": "Technology category must be frontend, backend, database or tool"},
	"Project.category":              {"oneof": "Category must be web-app, e-commerce, corporate or mobile"},
	"Project.live_url":              {"min": "Live URL cannot be empty"},
	"Project.github_url":            {"min": "GitHub URL cannot be empty"},
	"Project.completed_date":        {"required": "Completed date is required", "lte": "Completed date cannot be in the future"},

	"Service.id":                  {"required": "ID is required"},
	"Service.title":               {"required": "Title is required", "max": "Title must be less than 100 characters"},
	"Service.short_description":   {"required": "Short description is required", "max": "Short description must be less than 150 characters"},
	"Service.long_description":    {"required": "Long description is required"},
	"Service.icon":                {"required": "Icon is required"},
	"Service.features":            {"min": "At least one feature is required", "required": "Feature cannot be empty"},
	"Service.process":             {"steps": "Process steps must be numbered from 1 in order"},
	"Service.process.step":        {"gt": "Step must be positive"},
	"Service.process.title":       {"required": "Step title is required"},
	"Service.process.description": {"required": "Step description is required"},
	"Service.process.duration":    {"required": "Duration is required"},
	"Service.pricing":             {"onepopular": "Only one pricing tier can be marked popular"},
	"Service.pricing.name":        {"required": "Pricing tier name is required"},
	"Service.pricing.price":       {"required": "Price is required"},
	"Service.pricing.features":    {"required": "Feature cannot be empty"},

	"ContactForm.name": {
		"required":   "Name is required",
		"min":        "Name must be at least 2 characters",
		"max":        "Name must be less than 50 characters",
		"alphaspace": "Name can only contain letters and spaces",
	},
	"ContactForm.email": {
		"required": "Email is required",
		"email":    "Please enter a valid email address",
		"max":      "Email must be less than 100 characters",
	},
	"ContactForm.company":      {"max": "Company name must be less than 100 characters"},
	"ContactForm.project_type": {"required": "Please select a project type", "oneof": "Please select a project type"},
	"ContactForm.budget":       {"required": "Please select a budget range", "oneof": "Please select a budget range"},
	"ContactForm.message": {
		"required": "Message is required",
		"min":      "Message must be at least 10 characters",
		"max":      "Message must be less than 1000 characters",
	},
	"ContactForm.timeline": {"required": "Timeline is required", "max": "Timeline must be less than 100 characters"},

	"TeamMember.id":              {"required": "ID is required"},
	"TeamMember.name":            {"required": "Name is required", "max": "Name must be less than 50 characters"},
	"TeamMember.role":            {"required": "Role is required", "max": "Role must be less than 50 characters"},
	"TeamMember.bio":             {"required": "Bio is required", "max": "Bio must be less than 500 characters"},
	"TeamMember.image":           {"required": "Image is required"},
	"TeamMember.skills":          {"required": "Skill cannot be empty"},
	"TeamMember.social.linkedin": {"min": "LinkedIn URL cannot be empty"},
	"TeamMember.social.github":   {"min": "GitHub URL cannot be empty"},
	"TeamMember.social.twitter":  {"min": "Twitter URL cannot be empty"},
}
