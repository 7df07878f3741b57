package catalog

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort order
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection parses "asc" or "desc" case-insensitively. An empty value
// yields def.
func ParseDirection(raw string, def Direction) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return def, nil
	case Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	}
	return "", fmt.Errorf("invalid sort direction: %s", raw)
}

// Dated is implemented by records that can be ordered chronologically
type Dated interface {
	SortDate() time.Time
}

// Titled is implemented by records that can be ordered alphabetically
type Titled interface {
	SortTitle() string
}

// SortByDate returns items ordered by date, newest first unless dir is Asc.
// Items with equal dates keep their relative order.
func SortByDate[T Dated](items []T, dir Direction) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		if dir == Asc {
			return a.SortDate().Compare(b.SortDate())
		}
		return b.SortDate().Compare(a.SortDate())
	})
	return out
}

// SortByTitle returns items ordered by title ignoring case, A to Z unless
// dir is Desc. Items with equal titles keep their relative order.
func SortByTitle[T Titled](items []T, dir Direction) []T {
	// Collators keep scratch buffers, so each call gets its own.
	c := collate.New(language.English)
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		x, y := strings.ToLower(a.SortTitle()), strings.ToLower(b.SortTitle())
		if dir == Desc {
			return c.CompareString(y, x)
		}
		return c.CompareString(x, y)
	})
	return out
}
