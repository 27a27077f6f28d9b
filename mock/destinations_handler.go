package main

import (
	"encoding/json"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
)

type Attraction struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	EntryFee    float64 `json:"entryFee"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type Destination struct {
	ID                int64        `json:"id"`
	Name              string       `json:"name"`
	Country           string       `json:"country"`
	ShortDescription  string       `json:"shortDescription"`
	TypicalCost       float64      `json:"typicalCost"`
	SuitableAgeGroups []string     `json:"suitableAgeGroups"`
	ImageURL          string       `json:"imageUrl,omitempty"`
	Attractions       []Attraction `json:"attractions,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func loadDestinations() ([]Destination, error) {
	data, err := os.ReadFile(dataFile)
	if err != nil {
		return nil, err
	}

	var fileResponse struct {
		Destinations []Destination `json:"destinations"`
	}
	if err := json.Unmarshal(data, &fileResponse); err != nil {
		return nil, err
	}
	return fileResponse.Destinations, nil
}

func findDestination(id int64) (*Destination, error) {
	all, err := loadDestinations()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// DestinationsHandler serves GET /api/destinations[?ageGroup=&budget=].
func DestinationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	all, err := loadDestinations()
	if err != nil {
		http.Error(w, "Failed to read destination data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	ageGroup := r.URL.Query().Get("ageGroup")
	budget, _ := strconv.ParseFloat(r.URL.Query().Get("budget"), 64)

	// Apply filtering
	filtered := make([]Destination, 0)
	for _, d := range all {
		if ageGroup != "" && !slices.Contains(d.SuitableAgeGroups, ageGroup) {
			continue
		}
		if budget > 0 && d.TypicalCost > budget {
			continue
		}
		d.Attractions = nil
		filtered = append(filtered, d)
	}

	writeJSON(w, http.StatusOK, filtered)
}

// DestinationHandler serves GET /api/destinations/{id}.
func DestinationHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/destinations/"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid destination id"})
		return
	}

	d, err := findDestination(id)
	if err != nil {
		http.Error(w, "Failed to read destination data: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if d == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "Destination not found"})
		return
	}
	if d.Attractions == nil {
		d.Attractions = []Attraction{}
	}

	writeJSON(w, http.StatusOK, d)
}
