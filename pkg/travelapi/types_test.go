package travelapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAgeGroup(t *testing.T) {
	for _, a := range AgeGroups {
		got, ok := ParseAgeGroup(string(a))
		assert.True(t, ok)
		assert.Equal(t, a, got)
	}

	_, ok := ParseAgeGroup("TODDLER")
	assert.False(t, ok)
	_, ok = ParseAgeGroup("")
	assert.False(t, ok)
	_, ok = ParseAgeGroup("adult")
	assert.False(t, ok, "values are case sensitive")
}

func TestParseTransportMode(t *testing.T) {
	for _, m := range TransportModes {
		_, ok := ParseTransportMode(string(m))
		assert.True(t, ok)
	}
	_, ok := ParseTransportMode("TELEPORT")
	assert.False(t, ok)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Middle-aged (41-60)", AgeGroupMiddleAged.Label())
	assert.Equal(t, "Retiree", AgeGroupRetiree.ShortLabel())
	assert.Equal(t, "Public Transport", TransportPublicTransport.Label())
	assert.Equal(t, "UNKNOWN", AgeGroup("UNKNOWN").Label())
}
