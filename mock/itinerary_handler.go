package main

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
)

type ItineraryRequest struct {
	DestinationID int64   `json:"destinationId"`
	AgeGroup      string  `json:"ageGroup"`
	Budget        float64 `json:"budget"`
	TransportMode string  `json:"transportMode"`
	DurationDays  int     `json:"durationDays"`
}

type Activity struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Location     string  `json:"location"`
	Cost         float64 `json:"cost"`
	AttractionID *int64  `json:"attractionId"`
}

type Day struct {
	DayNumber            int        `json:"dayNumber"`
	Activities           []Activity `json:"activities"`
	MorningDescription   string     `json:"morningDescription"`
	AfternoonDescription string     `json:"afternoonDescription"`
	EveningDescription   string     `json:"eveningDescription"`
}

type ItineraryResponse struct {
	Destination             Destination        `json:"destination"`
	Days                    []Day              `json:"days"`
	CostBreakdown           map[string]float64 `json:"costBreakdown"`
	TotalCost               float64            `json:"totalCost"`
	WithinBudget            bool               `json:"withinBudget"`
	SuggestedTransportation string             `json:"suggestedTransportation"`
	Tips                    []string           `json:"tips"`
}

// daily transport cost per mode in USD
var transportCost = map[string]float64{
	"WALKING":          0,
	"PUBLIC_TRANSPORT": 8,
	"TAXI":             35,
	"RENTAL_CAR":       55,
	"TRAIN":            25,
	"BUS":              10,
	"FLIGHT":           120,
}

var ageTips = map[string]string{
	"STUDENT":     "Ask for student discounts at museums and on transit.",
	"ADULT":       "Book popular attractions a few days ahead.",
	"MIDDLE_AGED": "Mix busy sightseeing days with slower ones.",
	"SENIOR":      "Many sites offer reduced senior entry, bring ID.",
	"RETIREE":     "Travel outside peak hours for quieter visits.",
}

// ItineraryHandler serves POST /api/itinerary.
func ItineraryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}
	daily, ok := transportCost[req.TransportMode]
	if !ok || req.DurationDays < 1 || req.DurationDays > 14 || req.Budget <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid itinerary request"})
		return
	}

	d, err := findDestination(req.DestinationID)
	if err != nil {
		http.Error(w, "Failed to read destination data: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if d == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "Destination not found"})
		return
	}

	days := make([]Day, 0, req.DurationDays)
	var activityCost float64
	for n := 1; n <= req.DurationDays; n++ {
		day := Day{
			DayNumber:            n,
			MorningDescription:   fmt.Sprintf("Breakfast near your hotel in %s.", d.Name),
			AfternoonDescription: "Sightseeing at your own pace.",
			EveningDescription:   "Dinner at a local favourite.",
		}
		if len(d.Attractions) > 0 {
			a := d.Attractions[(n-1)%len(d.Attractions)]
			id := a.ID
			day.Activities = append(day.Activities, Activity{
				Name:         a.Name,
				Description:  a.Description,
				StartTime:    "10:00",
				EndTime:      "12:30",
				Location:     d.Name,
				Cost:         a.EntryFee,
				AttractionID: &id,
			})
			activityCost += a.EntryFee
		}
		day.Activities = append(day.Activities, Activity{
			Name:        "Evening walk",
			Description: "Stroll through the old town.",
			StartTime:   "18:00",
			EndTime:     "19:30",
			Location:    d.Name,
		})
		days = append(days, day)
	}

	nights := float64(req.DurationDays)
	breakdown := map[string]float64{
		"Accommodation":  math.Round(d.TypicalCost * 0.08 * nights),
		"Food":           math.Round(d.TypicalCost * 0.04 * nights),
		"Transportation": daily * nights,
		"Activities":     activityCost,
	}
	var total float64
	for _, v := range breakdown {
		total += v
	}

	writeJSON(w, http.StatusOK, ItineraryResponse{
		Destination:             Destination{ID: d.ID, Name: d.Name, Country: d.Country, ShortDescription: d.ShortDescription, TypicalCost: d.TypicalCost, SuitableAgeGroups: d.SuitableAgeGroups, ImageURL: d.ImageURL},
		Days:                    days,
		CostBreakdown:           breakdown,
		TotalCost:               total,
		WithinBudget:            total <= req.Budget,
		SuggestedTransportation: fmt.Sprintf("Getting around %s by %s works well for a %d day trip.", d.Name, req.TransportMode, req.DurationDays),
		Tips:                    []string{ageTips[req.AgeGroup], "Keep some cash for small vendors."},
	})
}
