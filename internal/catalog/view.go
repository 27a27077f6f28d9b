package catalog

import (
	"travelbuddy/internal/web"
	"travelbuddy/pkg/travelapi"
)

type State string

const (
	StateLoaded State = "loaded"
	StateEmpty  State = "empty"
	StateFailed State = "failed"
)

type ListView struct {
	web.Page
	Filter       Filter
	State        State
	Destinations []travelapi.Destination
}
