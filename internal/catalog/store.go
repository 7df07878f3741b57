// Package catalog holds the agency's read-only catalog of projects, services
// and team members together with the query operations the site runs over it.
//
// Every operation is a pure function of its inputs. Nothing here mutates a
// collection in place; filtered, sorted and paginated results are always
// freshly allocated slices, so a Store can be shared by concurrent readers.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"modernwebagency.com/internal/models"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// ErrDuplicateID is returned when two records of one collection share an id.
var ErrDuplicateID = errors.New("duplicate id")

// Dataset is the on-disk shape of a catalog definition
type Dataset struct {
	Projects    []models.Project    `yaml:"projects"`
	Services    []models.Service    `yaml:"services"`
	TeamMembers []models.TeamMember `yaml:"team_members"`
	Site        models.Site         `yaml:"site"`
}

// Store is an immutable in-memory catalog
type Store struct {
	projects []models.Project
	services []models.Service
	members  []models.TeamMember
	site     models.Site
}

// NewStore builds a store from a dataset, keeping insertion order
func NewStore(ds Dataset) (*Store, error) {
	if err := checkUnique("project", ds.Projects, func(p models.Project) string { return p.ID }); err != nil {
		return nil, err
	}
	if err := checkUnique("service", ds.Services, func(s models.Service) string { return s.ID }); err != nil {
		return nil, err
	}
	if err := checkUnique("team member", ds.TeamMembers, func(m models.TeamMember) string { return m.ID }); err != nil {
		return nil, err
	}

	return &Store{
		projects: slices.Clone(ds.Projects),
		services: slices.Clone(ds.Services),
		members:  slices.Clone(ds.TeamMembers),
		site:     ds.Site,
	}, nil
}

func checkUnique[T any](kind string, items []T, id func(T) string) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := id(item)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%s %q: %w", kind, key, ErrDuplicateID)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Decode parses a YAML catalog definition. Unknown keys are rejected.
func Decode(r io.Reader) (Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("decode catalog: %w", err)
	}
	return ds, nil
}

// Load parses a YAML catalog definition into a store
func Load(r io.Reader) (*Store, error) {
	ds, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return NewStore(ds)
}

// DecodeFile reads a catalog definition from disk
func DecodeFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// LoadFile reads a catalog definition from disk into a store
func LoadFile(path string) (*Store, error) {
	ds, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return NewStore(ds)
}

// DefaultDataset returns the catalog definition compiled into the binary
func DefaultDataset() (Dataset, error) {
	return Decode(bytes.NewReader(defaultCatalog))
}

// Default returns a store over the catalog compiled into the binary
func Default() (*Store, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// Projects returns every project in definition order
func (s *Store) Projects() []models.Project {
	return slices.Clone(s.projects)
}

// Services returns every service in definition order
func (s *Store) Services() []models.Service {
	return slices.Clone(s.services)
}

// TeamMembers returns every team member in definition order
func (s *Store) TeamMembers() []models.TeamMember {
	return slices.Clone(s.members)
}

// Site returns the non-catalog site content
func (s *Store) Site() models.Site {
	site := s.site
	site.Nav = slices.Clone(site.Nav)
	site.Testimonials = slices.Clone(site.Testimonials)
	site.FAQs = slices.Clone(site.FAQs)
	return site
}
