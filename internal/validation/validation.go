// Package validation checks catalog records and contact form submissions
// against the rules the site enforces, reporting one message per field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"modernwebagency.com/internal/catalog"
	"modernwebagency.com/internal/models"
)

var (
	alphaSpace = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	indexPart  = regexp.MustCompile(`\[\d+\]`)
)

// Result is the outcome of validating one value. Errors maps a field path
// such as "technologies[0].name" to a human readable message.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Validator checks models against their struct tags and the custom rules
// registered in New. It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the site's custom rules registered
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "alphaspace", func(fl validator.FieldLevel) bool {
		return alphaSpace.MatchString(fl.Field().String())
	})
	mustRegister(v, "steps", func(fl validator.FieldLevel) bool {
		steps, ok := fl.Field().Interface().([]models.ProcessStep)
		return ok && stepsAscending(steps)
	})
	mustRegister(v, "onepopular", func(fl validator.FieldLevel) bool {
		tiers, ok := fl.Field().Interface().([]models.PricingTier)
		return ok && popularCount(tiers) <= 1
	})
	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s: %v", tag, err))
	}
}

// stepsAscending reports whether steps are numbered 1, 2, 3 ... in order
func stepsAscending(steps []models.ProcessStep) bool {
	for i, s := range steps {
		if s.Step != i+1 {
			return false
		}
	}
	return true
}

func popularCount(tiers []models.PricingTier) int {
	n := 0
	for _, t := range tiers {
		if t.Popular {
			n++
		}
	}
	return n
}

// ValidateProject checks a project record
func (v *Validator) ValidateProject(p models.Project) Result {
	return v.validate("Project", p)
}

// ValidateService checks a service record
func (v *Validator) ValidateService(s models.Service) Result {
	return v.validate("Service", s)
}

// ValidateTeamMember checks a team member record
func (v *Validator) ValidateTeamMember(m models.TeamMember) Result {
	return v.validate("TeamMember", m)
}

// ValidateContactForm checks a contact form submission
func (v *Validator) ValidateContactForm(f models.ContactForm) Result {
	return v.validate("ContactForm", f)
}

func (v *Validator) validate(root string, value any) Result {
	err := v.v.Struct(value)
	if err == nil {
		return Result{Valid: true}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Result{Errors: map[string]string{"": err.Error()}}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := strings.TrimPrefix(fe.Namespace(), root+".")
		if _, seen := out[path]; seen {
			continue
		}
		out[path] = message(root, path, fe)
	}
	return Result{Errors: out}
}

// RecordError is a failed record within a dataset
type RecordError struct {
	Kind   string
	ID     string
	Errors map[string]string
}

func (e RecordError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + e.Errors[f]
	}
	return fmt.Sprintf("%s %q: %s", e.Kind, e.ID, strings.Join(parts, "; "))
}

// DatasetError lists every invalid record in a catalog definition
type DatasetError struct {
	Records []RecordError
}

func (e *DatasetError) Error() string {
	msgs := make([]string, len(e.Records))
	for i, r := range e.Records {
		msgs[i] = r.Error()
	}
	return fmt.Sprintf("invalid catalog: %d record(s): %s", len(e.Records), strings.Join(msgs, " | "))
}

// ValidateDataset checks every record of a catalog definition. It returns a
// *DatasetError listing all failures, or nil.
func (v *Validator) ValidateDataset(ds catalog.Dataset) error {
	var bad []RecordError
	for _, p := range ds.Projects {
		if r := v.ValidateProject(p); !r.Valid {
			bad = append(bad, RecordError{Kind: "project", ID: p.ID, Errors: r.Errors})
		}
	}
	for _, s := range ds.Services {
		if r := v.ValidateService(s); !r.Valid {
			bad = append(bad, RecordError{Kind: "service", ID: s.ID, Errors: r.Errors})
		}
	}
	for _, m := range ds.TeamMembers {
		if r := v.ValidateTeamMember(m); !r.Valid {
			bad = append(bad, RecordError{Kind: "team member", ID: m.ID, Errors: r.Errors})
		}
	}
	if len(bad) > 0 {
		return &DatasetError{Records: bad}
	}
	return nil
}

func message(root, path string, fe validator.FieldError) string {
	key := root + "." + indexPart.ReplaceAllString(path, "")
	if byTag, ok := messages[key]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return fallback(fe)
}

func fallback(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
}
