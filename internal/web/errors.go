package web

import "fmt"

// ClientValidationError is raised for bad input caught before any call to
// the travel service.
type ClientValidationError struct {
	Field   string
	Message string
}

func (e *ClientValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
