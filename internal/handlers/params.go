package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"

	"modernwebagency.com/internal/catalog"
)

// queryParams reads typed values out of a request's query string. The
// first malformed value is kept in err; later reads become no-ops.
type queryParams struct {
	r   *http.Request
	err error
}

func params(r *http.Request) *queryParams {
	return &queryParams{r: r}
}

func (p *queryParams) raw(name string) string {
	return strings.TrimSpace(p.r.URL.Query().Get(name))
}

func (p *queryParams) fail(name, raw string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
}

func (p *queryParams) text(name string) string {
	return p.raw(name)
}

// integer returns the named value or def when it is absent
func (p *queryParams) integer(name string, def int) int {
	raw := p.raw(name)
	if raw == "" || p.err != nil {
		return def
	}
	v, err := cast.ToIntE(raw)
	if err != nil {
		p.fail(name, raw, err)
		return def
	}
	return v
}

// positiveInt is integer for values that must be at least 1 when given
func (p *queryParams) positiveInt(name string) int {
	v := p.integer(name, 0)
	if p.raw(name) != "" && p.err == nil && v < 1 {
		p.fail(name, p.raw(name), fmt.Errorf("must be at least 1"))
	}
	return v
}

func (p *queryParams) number(name string) *float64 {
	raw := p.raw(name)
	if raw == "" || p.err != nil {
		return nil
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		p.fail(name, raw, err)
		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		p.fail(name, raw, fmt.Errorf("must be a finite number"))
		return nil
	}
	return &v
}

func (p *queryParams) flag(name string) bool {
	raw := p.raw(name)
	if raw == "" || p.err != nil {
		return false
	}
	v, err := cast.ToBoolE(raw)
	if err != nil {
		p.fail(name, raw, err)
		return false
	}
	return v
}

// date accepts any layout dateparse recognises, read as UTC
func (p *queryParams) date(name string) time.Time {
	raw := p.raw(name)
	if raw == "" || p.err != nil {
		return time.Time{}
	}
	v, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		p.fail(name, raw, err)
		return time.Time{}
	}
	return v
}

func (p *queryParams) direction(name string) catalog.Direction {
	raw := p.raw(name)
	if p.err != nil {
		return ""
	}
	d, err := catalog.ParseDirection(raw, "")
	if err != nil {
		p.fail(name, raw, err)
	}
	return d
}

func (p *queryParams) fields(name string, parse func(string) error) {
	raw := p.raw(name)
	if raw == "" || p.err != nil {
		return
	}
	if err := parse(raw); err != nil {
		p.fail(name, raw, err)
	}
}
