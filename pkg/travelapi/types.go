package travelapi

type AgeGroup string

const (
	AgeGroupStudent    AgeGroup = "STUDENT"
	AgeGroupAdult      AgeGroup = "ADULT"
	AgeGroupMiddleAged AgeGroup = "MIDDLE_AGED"
	AgeGroupSenior     AgeGroup = "SENIOR"
	AgeGroupRetiree    AgeGroup = "RETIREE"
)

// AgeGroups lists every age group in display order.
var AgeGroups = []AgeGroup{
	AgeGroupStudent,
	AgeGroupAdult,
	AgeGroupMiddleAged,
	AgeGroupSenior,
	AgeGroupRetiree,
}

func (a AgeGroup) Valid() bool {
	switch a {
	case AgeGroupStudent, AgeGroupAdult, AgeGroupMiddleAged, AgeGroupSenior, AgeGroupRetiree:
		return true
	}
	return false
}

// Label is the long form with the age range, e.g. "Student (18-25)".
func (a AgeGroup) Label() string {
	switch a {
	case AgeGroupStudent:
		return "Student (18-25)"
	case AgeGroupAdult:
		return "Adult (26-40)"
	case AgeGroupMiddleAged:
		return "Middle-aged (41-60)"
	case AgeGroupSenior:
		return "Senior (61-75)"
	case AgeGroupRetiree:
		return "Retiree (76+)"
	}
	return string(a)
}

func (a AgeGroup) ShortLabel() string {
	switch a {
	case AgeGroupStudent:
		return "Student"
	case AgeGroupAdult:
		return "Adult"
	case AgeGroupMiddleAged:
		return "Middle-aged"
	case AgeGroupSenior:
		return "Senior"
	case AgeGroupRetiree:
		return "Retiree"
	}
	return string(a)
}

// ParseAgeGroup returns false for anything outside the closed set.
func ParseAgeGroup(s string) (AgeGroup, bool) {
	a := AgeGroup(s)
	return a, a.Valid()
}

type TransportMode string

const (
	TransportWalking         TransportMode = "WALKING"
	TransportPublicTransport TransportMode = "PUBLIC_TRANSPORT"
	TransportTaxi            TransportMode = "TAXI"
	TransportRentalCar       TransportMode = "RENTAL_CAR"
	TransportTrain           TransportMode = "TRAIN"
	TransportBus             TransportMode = "BUS"
	TransportFlight          TransportMode = "FLIGHT"
)

var TransportModes = []TransportMode{
	TransportWalking,
	TransportPublicTransport,
	TransportTaxi,
	TransportRentalCar,
	TransportTrain,
	TransportBus,
	TransportFlight,
}

func (t TransportMode) Valid() bool {
	switch t {
	case TransportWalking, TransportPublicTransport, TransportTaxi, TransportRentalCar,
		TransportTrain, TransportBus, TransportFlight:
		return true
	}
	return false
}

func (t TransportMode) Label() string {
	switch t {
	case TransportWalking:
		return "Walking"
	case TransportPublicTransport:
		return "Public Transport"
	case TransportTaxi:
		return "Taxi"
	case TransportRentalCar:
		return "Rental Car"
	case TransportTrain:
		return "Train"
	case TransportBus:
		return "Bus"
	case TransportFlight:
		return "Flight"
	}
	return string(t)
}

func ParseTransportMode(s string) (TransportMode, bool) {
	t := TransportMode(s)
	return t, t.Valid()
}

type Destination struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Country           string     `json:"country"`
	ShortDescription  string     `json:"shortDescription"`
	TypicalCost       float64    `json:"typicalCost"`
	SuitableAgeGroups []AgeGroup `json:"suitableAgeGroups"`
	ImageURL          string     `json:"imageUrl,omitempty"`
}

type Attraction struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	EntryFee    float64 `json:"entryFee"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type DestinationDetail struct {
	Destination
	Attractions []Attraction `json:"attractions"`
}

type ItineraryActivity struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	StartTime    string  `json:"startTime"` // HH:MM
	EndTime      string  `json:"endTime"`
	Location     string  `json:"location"`
	Cost         float64 `json:"cost"`
	AttractionID *int64  `json:"attractionId"`
}

type ItineraryDay struct {
	DayNumber            int                 `json:"dayNumber"`
	Activities           []ItineraryActivity `json:"activities"`
	MorningDescription   string              `json:"morningDescription"`
	AfternoonDescription string              `json:"afternoonDescription"`
	EveningDescription   string              `json:"eveningDescription"`
}

type ItineraryRequest struct {
	DestinationID int64         `json:"destinationId"`
	AgeGroup      AgeGroup      `json:"ageGroup"`
	Budget        float64       `json:"budget"`
	TransportMode TransportMode `json:"transportMode"`
	DurationDays  int           `json:"durationDays"`
}

type ItineraryResponse struct {
	Destination             Destination        `json:"destination"`
	Days                    []ItineraryDay     `json:"days"`
	CostBreakdown           map[string]float64 `json:"costBreakdown"`
	TotalCost               float64            `json:"totalCost"`
	WithinBudget            bool               `json:"withinBudget"`
	SuggestedTransportation string             `json:"suggestedTransportation"`
	Tips                    []string           `json:"tips"`
}

// DestinationFilter narrows ListDestinations. Zero values mean "not set".
type DestinationFilter struct {
	AgeGroup  AgeGroup
	MaxBudget int64
}
