package catalog

import (
	"net/url"
	"testing"
	"travelbuddy/pkg/travelapi"

	"github.com/stretchr/testify/assert"
)

func TestParseFilter(t *testing.T) {
	cases := []struct {
		query string
		want  Filter
	}{
		{"", Filter{}},
		{"ageGroup=ADULT", Filter{AgeGroup: travelapi.AgeGroupAdult}},
		{"budget=500", Filter{MaxBudget: 500}},
		{"budget=250.9", Filter{MaxBudget: 250}},
		{"budget=0", Filter{}},
		{"budget=abc", Filter{}},
		{"budget=Inf", Filter{}},
		{"budget=NaN", Filter{}},
		{"budget=1e30", Filter{}},
		{"budget=9223372036854775807", Filter{}},
		{"ageGroup=adult&budget=300", Filter{MaxBudget: 300}},
	}
	for _, tc := range cases {
		q, _ := url.ParseQuery(tc.query)
		assert.Equal(t, tc.want, ParseFilter(q), tc.query)
	}
}

func TestFilter_URLRoundTrip(t *testing.T) {
	f := Filter{AgeGroup: travelapi.AgeGroupMiddleAged, MaxBudget: 900}
	u, err := url.Parse(f.URL())
	assert.NoError(t, err)
	assert.Equal(t, "/destinations", u.Path)
	assert.Equal(t, f, ParseFilter(u.Query()))

	assert.Equal(t, "/destinations", Filter{}.URL())
}

func TestParseFilter_HugeBudgetIsDropped(t *testing.T) {
	q, _ := url.ParseQuery("budget=1e30")
	f := ParseFilter(q)

	assert.True(t, f.IsZero())
	assert.Equal(t, "/destinations", f.URL())
}
