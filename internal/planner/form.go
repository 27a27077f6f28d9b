package planner

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"travelbuddy/internal/web"
	"travelbuddy/pkg/travelapi"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultAgeGroup      = travelapi.AgeGroupAdult
	DefaultBudget        = 1000
	DefaultTransportMode = travelapi.TransportPublicTransport
	DefaultDurationDays  = 3

	MaxDurationDays = 14

	// MaxBudget must match the lte bound on Form.Budget.
	MaxBudget = 10_000_000
)

// Form is the planner input. The binding tags are the submit-time rules.
type Form struct {
	DestinationID int64                   `form:"destinationId" binding:"required,gt=0"`
	AgeGroup      travelapi.AgeGroup      `form:"ageGroup" binding:"required,oneof=STUDENT ADULT MIDDLE_AGED SENIOR RETIREE"`
	Budget        float64                 `form:"budget" binding:"required,gte=1,lte=10000000"`
	TransportMode travelapi.TransportMode `form:"transportMode" binding:"required,oneof=WALKING PUBLIC_TRANSPORT TAXI RENTAL_CAR TRAIN BUS FLIGHT"`
	DurationDays  int                     `form:"durationDays" binding:"required,min=1,max=14"`
}

func DefaultForm() Form {
	return Form{
		AgeGroup:      DefaultAgeGroup,
		Budget:        DefaultBudget,
		TransportMode: DefaultTransportMode,
		DurationDays:  DefaultDurationDays,
	}
}

// FormFromValues starts from the defaults and keeps every value that is
// individually valid.
func FormFromValues(values url.Values) Form {
	f := DefaultForm()

	if id, err := strconv.ParseInt(strings.TrimSpace(values.Get("destinationId")), 10, 64); err == nil && id > 0 {
		f.DestinationID = id
	}
	if a, ok := travelapi.ParseAgeGroup(values.Get("ageGroup")); ok {
		f.AgeGroup = a
	}
	if b, err := strconv.ParseFloat(strings.TrimSpace(values.Get("budget")), 64); err == nil && b >= 1 && b <= MaxBudget {
		f.Budget = b
	}
	if m, ok := travelapi.ParseTransportMode(values.Get("transportMode")); ok {
		f.TransportMode = m
	}
	if d, err := strconv.Atoi(strings.TrimSpace(values.Get("durationDays"))); err == nil && d >= 1 && d <= MaxDurationDays {
		f.DurationDays = d
	}
	return f
}

// BudgetValue renders the budget for an input field without trailing zeros.
func (f Form) BudgetValue() string {
	return strconv.FormatFloat(f.Budget, 'f', -1, 64)
}

func (f Form) Values() url.Values {
	q := url.Values{}
	q.Set("destinationId", strconv.FormatInt(f.DestinationID, 10))
	q.Set("ageGroup", string(f.AgeGroup))
	q.Set("budget", f.BudgetValue())
	q.Set("transportMode", string(f.TransportMode))
	q.Set("durationDays", strconv.Itoa(f.DurationDays))
	return q
}

// URL points back at the planner with every value filled in.
func (f Form) URL() string {
	return "/plan?" + f.Values().Encode()
}

func (f Form) Request() travelapi.ItineraryRequest {
	return travelapi.ItineraryRequest{
		DestinationID: f.DestinationID,
		AgeGroup:      f.AgeGroup,
		Budget:        f.Budget,
		TransportMode: f.TransportMode,
		DurationDays:  f.DurationDays,
	}
}

var fieldMessages = map[string]string{
	"DestinationID": "Please select a destination",
	"AgeGroup":      "Please choose an age group",
	"Budget":        "Budget must be between $1 and $10,000,000",
	"TransportMode": "Please choose a transport mode",
	"DurationDays":  "Duration must be between 1 and 14 days",
}

// ValidationErrors turns a binding error into one message per bad field.
func ValidationErrors(err error) []*web.ClientValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []*web.ClientValidationError{{Field: "form", Message: "Please check the values you entered"}}
	}

	out := make([]*web.ClientValidationError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		out = append(out, &web.ClientValidationError{Field: fe.Field(), Message: msg})
	}
	return out
}
