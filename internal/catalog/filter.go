package catalog

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"travelbuddy/pkg/travelapi"
)

// Filter is the (age group, max budget) pair narrowing the catalog. The URL
// query is its only persistent home.
type Filter struct {
	AgeGroup  travelapi.AgeGroup
	MaxBudget int64
}

// ParseFilter reads a filter from query or form values. Age groups outside
// the closed set and budgets that are not positive numbers are dropped.
func ParseFilter(values url.Values) Filter {
	var f Filter

	if a, ok := travelapi.ParseAgeGroup(strings.TrimSpace(values.Get("ageGroup"))); ok {
		f.AgeGroup = a
	}

	if raw := strings.TrimSpace(values.Get("budget")); raw != "" {
		// the upper bound keeps the int64 conversion from overflowing
		if b, err := strconv.ParseFloat(raw, 64); err == nil && b >= 1 && b < math.MaxInt64 {
			f.MaxBudget = int64(b)
		}
	}

	return f
}

func (f Filter) IsZero() bool {
	return f.AgeGroup == "" && f.MaxBudget == 0
}

// Query encodes only the filters that are set.
func (f Filter) Query() url.Values {
	q := url.Values{}
	if f.AgeGroup != "" {
		q.Set("ageGroup", string(f.AgeGroup))
	}
	if f.MaxBudget > 0 {
		q.Set("budget", strconv.FormatInt(f.MaxBudget, 10))
	}
	return q
}

// URL is the catalog location that encodes this filter.
func (f Filter) URL() string {
	if f.IsZero() {
		return "/destinations"
	}
	return "/destinations?" + f.Query().Encode()
}

func (f Filter) APIFilter() travelapi.DestinationFilter {
	return travelapi.DestinationFilter{
		AgeGroup:  f.AgeGroup,
		MaxBudget: f.MaxBudget,
	}
}
