package catalog

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var dollarAmount = regexp.MustCompile(`\$(\d+(?:,\d+)*)`)

// PriceRange is the structured form of a pricing tier's free-text price
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	// Unbounded marks a range with no upper limit, such as "$50,000+".
	// Max then holds the highest stated amount.
	Unbounded bool   `json:"unbounded,omitempty"`
	Currency  string `json:"currency"`
	// Unit is the billing period for recurring prices, e.g. "hour" or "month".
	Unit string `json:"unit,omitempty"`
}

// ParsePriceRange extracts the dollar amounts from text such as
// "$5,000 - $15,000", "$50,000+" or "$150 - $250/hour". A trailing "+"
// after the last amount leaves the range open above. ok is false when the
// text carries no dollar amount at all.
func ParsePriceRange(text string) (r PriceRange, ok bool) {
	matches := dollarAmount.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return PriceRange{}, false
	}

	r = PriceRange{Min: math.Inf(1), Max: math.Inf(-1), Currency: "USD"}
	for _, m := range matches {
		v, err := strconv.ParseFloat(strings.ReplaceAll(text[m[2]:m[3]], ",", ""), 64)
		if err != nil {
			return PriceRange{}, false
		}
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}

	rest := text[matches[len(matches)-1][1]:]
	if strings.HasPrefix(strings.TrimSpace(rest), "+") {
		r.Unbounded = true
	}
	if i := strings.Index(rest, "/"); i >= 0 {
		r.Unit = strings.TrimSpace(rest[i+1:])
	}
	return r, true
}

// Overlaps reports whether r shares at least one value with [min, max]
func (r PriceRange) Overlaps(min, max float64) bool {
	return r.Min <= max && (r.Unbounded || r.Max >= min)
}
