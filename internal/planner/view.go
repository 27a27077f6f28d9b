package planner

import (
	"sort"
	"travelbuddy/internal/web"
	"travelbuddy/pkg/travelapi"
)

type FormView struct {
	web.Page
	Destination *travelapi.DestinationDetail
	Form        Form
	ShowForm    bool
}

type CostRow struct {
	Category string
	Amount   float64
}

type ResultView struct {
	web.Page
	Itinerary *travelapi.ItineraryResponse
	Days      []travelapi.ItineraryDay
	Form      Form
	CostRows  []CostRow
	ModifyURL string
}

// SortedDays orders days by dayNumber regardless of response order.
func SortedDays(days []travelapi.ItineraryDay) []travelapi.ItineraryDay {
	out := make([]travelapi.ItineraryDay, len(days))
	copy(out, days)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DayNumber < out[j].DayNumber
	})
	return out
}

func CostRows(breakdown map[string]float64) []CostRow {
	rows := make([]CostRow, 0, len(breakdown))
	for category, amount := range breakdown {
		rows = append(rows, CostRow{Category: category, Amount: amount})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Category < rows[j].Category
	})
	return rows
}

func breakdownSum(rows []CostRow) float64 {
	var sum float64
	for _, r := range rows {
		sum += r.Amount
	}
	return sum
}
