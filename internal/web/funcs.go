package web

import (
	"html/template"
	"math"
	"strings"
	"time"
	"travelbuddy/pkg/travelapi"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FallbackImage is used when a destination has no image of its own.
const FallbackImage = "https://images.unsplash.com/photo-1500835556837-99ac94a94552?w=1200&auto=format&fit=crop"

var usd = message.NewPrinter(language.AmericanEnglish)

// Currency formats an amount as whole US dollars, e.g. 1234.5 -> "$1,235".
func Currency(amount float64) string {
	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return usd.Sprintf("-$%d", -rounded)
	}
	return usd.Sprintf("$%d", rounded)
}

// Clock renders an HH:MM (or HH:MM:SS) time of day as "09:30 AM". Anything
// unparseable is returned untouched.
func Clock(hhmm string) string {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, hhmm); err == nil {
			return t.Format("03:04 PM")
		}
	}
	return hhmm
}

// Truncate cuts s to n runes and appends "..." when it was longer.
func Truncate(n int, s string) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func imageOr(fallback, src string) string {
	if strings.TrimSpace(src) == "" {
		return fallback
	}
	return src
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"currency": Currency,
		"clock":    Clock,
		"truncate": Truncate,
		"imageOr":  imageOr,
		"fallbackImage": func() string {
			return FallbackImage
		},
		"ageGroupLabel": func(a travelapi.AgeGroup) string {
			return a.Label()
		},
		"ageGroupShortLabel": func(a travelapi.AgeGroup) string {
			return a.ShortLabel()
		},
		"transportLabel": func(t travelapi.TransportMode) string {
			return t.Label()
		},
		"ageGroups": func() []travelapi.AgeGroup {
			return travelapi.AgeGroups
		},
		"transportModes": func() []travelapi.TransportMode {
			return travelapi.TransportModes
		},
	}
}
